package ports

import "github.com/aalvaropc/mallctl/internal/domain"

// MallLoader builds a mall hierarchy from a source (e.g., a YAML file).
type MallLoader interface {
	LoadMall(path string) (domain.Mall, error)
}

// CandidateLoader loads an ordered list of guard candidates.
type CandidateLoader interface {
	LoadCandidates(path string) ([]domain.GuardCandidate, error)
}
