package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/mallctl/internal/domain"
	"github.com/aalvaropc/mallctl/internal/ports"
	"github.com/aalvaropc/mallctl/internal/usecase/policy"
)

// ApplyRequest selects which policies run and where their inputs live.
type ApplyRequest struct {
	DataPath       string
	CandidatesPath string

	Security bool
	Payroll  bool
}

type ApplyPolicies struct {
	malls      ports.MallLoader
	candidates ports.CandidateLoader
	store      ports.ReportStore

	rules domain.PolicyConfig
	log   *slog.Logger
	now   func() time.Time
	newID func() string
}

type ApplyOption func(*ApplyPolicies)

func WithRules(cfg domain.PolicyConfig) ApplyOption {
	return func(uc *ApplyPolicies) { uc.rules = cfg.WithDefaults() }
}

func WithLogger(l *slog.Logger) ApplyOption {
	return func(uc *ApplyPolicies) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock overrides time.Now (useful for tests).
func WithClock(now func() time.Time) ApplyOption {
	return func(uc *ApplyPolicies) { uc.now = now }
}

// WithIDGenerator overrides report ID generation (useful for tests).
func WithIDGenerator(gen func() string) ApplyOption {
	return func(uc *ApplyPolicies) { uc.newID = gen }
}

// NewApplyPolicies wires the policy use case. store may be nil, in which case
// reports are returned but never persisted.
func NewApplyPolicies(ml ports.MallLoader, cl ports.CandidateLoader, store ports.ReportStore, opts ...ApplyOption) *ApplyPolicies {
	uc := &ApplyPolicies{
		malls:      ml,
		candidates: cl,
		store:      store,
		rules:      domain.DefaultPolicyConfig(),
		log:        slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads the mall, runs the selected policies (security first, then
// payroll) and saves the resulting report. The returned string is the store
// ID, empty when nothing was saved.
//
// Inputs are all loaded before any policy runs, so a failing load never
// leaves a half-applied report behind.
func (uc *ApplyPolicies) Execute(ctx context.Context, req ApplyRequest) (domain.PolicyReport, string, error) {
	m, err := uc.malls.LoadMall(req.DataPath)
	if err != nil {
		return domain.PolicyReport{}, "", err
	}

	var candidates []domain.GuardCandidate
	if req.Security {
		candidates, err = uc.candidates.LoadCandidates(req.CandidatesPath)
		if err != nil {
			return domain.PolicyReport{}, "", err
		}
	}

	if err := ctx.Err(); err != nil {
		return domain.PolicyReport{}, "", err
	}

	report := domain.PolicyReport{
		ID:        uc.newID(),
		MallName:  m.Name,
		DataPath:  req.DataPath,
		StartedAt: uc.now(),
	}

	if req.Security {
		out := policy.CheckForSecurities(&m, candidates, uc.rules)
		for _, h := range out.Hires {
			uc.log.Info("policy.security.hired",
				"mall", m.Name,
				"guard", h.Name,
				"replaced", h.Replaced,
			)
		}
		uc.log.Info("policy.security.done",
			"mall", m.Name,
			"total_area", out.TotalArea,
			"target", out.Target,
			"guards_before", out.GuardsBefore,
			"guards_after", out.GuardsAfter,
		)
		report.Security = &out
	}

	if req.Payroll {
		report.Payroll = policy.CutOrRaise(&m, uc.rules)
		for _, c := range report.Payroll {
			uc.log.Debug("policy.payroll.adjusted",
				"store", c.Store,
				"employee", c.Employee,
				"worked_hours", c.WorkedHours,
				"before", c.Before,
				"after", c.After,
			)
		}
		uc.log.Info("policy.payroll.done", "mall", m.Name, "employees", len(report.Payroll))
	}

	report.Mall = m
	report.EndedAt = uc.now()

	if uc.store == nil {
		return report, "", nil
	}

	id, err := uc.store.SaveReport(report)
	if err != nil {
		uc.log.Error("report.save.failed", "mall", m.Name, "err", err)
		return report, "", err
	}
	uc.log.Info("report.saved", "mall", m.Name, "id", id)
	return report, id, nil
}
