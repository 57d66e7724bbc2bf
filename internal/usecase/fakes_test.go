package usecase

import (
	"github.com/aalvaropc/mallctl/internal/domain"
)

// --- fakes shared by the use case tests ---

type fakeMallLoader struct {
	mall domain.Mall
	err  error

	calls []string
}

func (f *fakeMallLoader) LoadMall(path string) (domain.Mall, error) {
	f.calls = append(f.calls, path)
	if f.err != nil {
		return domain.Mall{}, f.err
	}
	return f.mall.Clone(), nil
}

type fakeCandidateLoader struct {
	candidates []domain.GuardCandidate
	err        error

	calls int
}

func (f *fakeCandidateLoader) LoadCandidates(_ string) ([]domain.GuardCandidate, error) {
	f.calls++
	return f.candidates, f.err
}

type fakeReportStore struct {
	saved bool
	last  domain.PolicyReport
	err   error
}

func (s *fakeReportStore) SaveReport(r domain.PolicyReport) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = r
	return "report-123", nil
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return nil
}
