package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/aalvaropc/mallctl/internal/domain"
)

const (
	ConfigFile = "mallctl.yaml"

	// EnvPrefix marks environment overrides. Nested keys are separated by a
	// double underscore: MALLCTL_POLICY__AREA_PER_GUARD -> mallctl.policy.area_per_guard.
	EnvPrefix = "MALLCTL_"
)

// LoadConfig loads mallctl.yaml from the workspace root, overlays MALLCTL_*
// environment variables and applies defaults for anything left unset.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	if _, err := os.Stat(path); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKey,
	}), nil); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadenv",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := k.UnmarshalWithConf("mallctl", &y, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &y,
			TagName:          "yaml",
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Paths.DataFile != "" {
		cfg.Paths.DataFile = y.Paths.DataFile
	}
	if y.Paths.CandidatesFile != "" {
		cfg.Paths.CandidatesFile = y.Paths.CandidatesFile
	}
	if y.Paths.ReportsDir != "" {
		cfg.Paths.ReportsDir = y.Paths.ReportsDir
	}
	if y.Policy.AreaPerGuard != nil {
		cfg.Policy.AreaPerGuard = *y.Policy.AreaPerGuard
	}
	if y.Policy.RaiseThresholdHours != nil {
		cfg.Policy.RaiseThresholdHours = *y.Policy.RaiseThresholdHours
	}
	if y.Policy.AdjustmentRate != nil {
		cfg.Policy.AdjustmentRate = *y.Policy.AdjustmentRate
	}
	if y.Output.Format != "" {
		cfg.Output.Format = y.Output.Format
	}

	if err := validateConfig(cfg); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return cfg, nil
}

func envKey(k, v string) (string, any) {
	k = strings.TrimPrefix(k, EnvPrefix)
	if k == "" {
		return "", nil
	}
	parts := strings.Split(strings.ToLower(k), "__")
	return "mallctl." + strings.Join(parts, "."), v
}

func validateConfig(cfg domain.Config) error {
	var errs []error
	if cfg.Policy.AreaPerGuard == 0 {
		errs = append(errs, errors.New("policy.area_per_guard must be greater than zero"))
	}
	if cfg.Policy.RaiseThresholdHours <= 0 {
		errs = append(errs, errors.New("policy.raise_threshold_hours must be greater than zero"))
	}
	if cfg.Policy.AdjustmentRate <= 0 {
		errs = append(errs, errors.New("policy.adjustment_rate must be greater than zero"))
	}
	switch cfg.Output.Format {
	case "pretty", "json", "yaml":
	default:
		errs = append(errs, errors.New("output.format must be one of pretty, json, yaml"))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{domain.ErrInvalidConfig}, errs...)...)
	}
	return nil
}

type yamlConfig struct {
	Paths struct {
		DataFile       string `yaml:"data_file"`
		CandidatesFile string `yaml:"candidates_file"`
		ReportsDir     string `yaml:"reports_dir"`
	} `yaml:"paths"`

	Policy struct {
		AreaPerGuard        *uint64  `yaml:"area_per_guard"`
		RaiseThresholdHours *int     `yaml:"raise_threshold_hours"`
		AdjustmentRate      *float64 `yaml:"adjustment_rate"`
	} `yaml:"policy"`

	Output struct {
		Format string `yaml:"format"`
	} `yaml:"output"`
}
