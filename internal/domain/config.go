package domain

// Config represents the mallctl configuration loaded from mallctl.yaml.
type Config struct {
	Paths  PathsConfig
	Policy PolicyConfig
	Output OutputConfig
}

type PathsConfig struct {
	DataFile       string
	CandidatesFile string
	ReportsDir     string
}

// PolicyConfig parameterizes the security and payroll policies.
type PolicyConfig struct {
	// AreaPerGuard is the floor area one guard covers.
	AreaPerGuard uint64
	// RaiseThresholdHours is the minimum daily shift (inclusive) that earns a raise.
	RaiseThresholdHours int
	// AdjustmentRate is the fraction of salary added or removed.
	AdjustmentRate float64
}

type OutputConfig struct {
	Format string
}

const (
	DefaultAreaPerGuard        uint64  = 200
	DefaultRaiseThresholdHours int     = 10
	DefaultAdjustmentRate      float64 = 0.10
)

// DefaultConfig provides sane defaults if mallctl.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			DataFile:       "data/mall.yaml",
			CandidatesFile: "data/candidates.yaml",
			ReportsDir:     "reports",
		},
		Policy: DefaultPolicyConfig(),
		Output: OutputConfig{Format: "pretty"},
	}
}

func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		AreaPerGuard:        DefaultAreaPerGuard,
		RaiseThresholdHours: DefaultRaiseThresholdHours,
		AdjustmentRate:      DefaultAdjustmentRate,
	}
}

// WithDefaults fills zero fields with the default policy values. Zero means
// unset here; LoadConfig rejects explicit zeros before they reach a policy.
func (p PolicyConfig) WithDefaults() PolicyConfig {
	if p.AreaPerGuard == 0 {
		p.AreaPerGuard = DefaultAreaPerGuard
	}
	if p.RaiseThresholdHours == 0 {
		p.RaiseThresholdHours = DefaultRaiseThresholdHours
	}
	if p.AdjustmentRate == 0 {
		p.AdjustmentRate = DefaultAdjustmentRate
	}
	return p
}
