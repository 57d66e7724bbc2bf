package yamlmall

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/mallctl/internal/domain"
	"github.com/aalvaropc/mallctl/internal/ports"
)

// Loader reads mall and candidate YAML files into the domain model.
// It checks structure only; business values are passed through untouched.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var (
	_ ports.MallLoader      = (*Loader)(nil)
	_ ports.CandidateLoader = (*Loader)(nil)
)

func (l *Loader) LoadMall(path string) (domain.Mall, error) {
	var ym yamlMall
	if err := readYAML("yamlmall.load", path, &ym); err != nil {
		return domain.Mall{}, err
	}
	if err := validateStruct(path, ym); err != nil {
		return domain.Mall{}, err
	}
	return mapMall(ym), nil
}

func (l *Loader) LoadCandidates(path string) ([]domain.GuardCandidate, error) {
	var yc yamlCandidates
	if err := readYAML("yamlmall.load_candidates", path, &yc); err != nil {
		return nil, err
	}
	if err := validateStruct(path, yc); err != nil {
		return nil, err
	}
	return mapCandidates(yc), nil
}

func readYAML(op, path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	if err := yaml.Unmarshal(b, out); err != nil {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidData,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
