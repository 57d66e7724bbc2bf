package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aalvaropc/mallctl/internal/domain"
	"github.com/aalvaropc/mallctl/internal/domain/domaintest"
	"github.com/aalvaropc/mallctl/internal/usecase/policy"
	"github.com/aalvaropc/mallctl/internal/usecase/query"
)

func TestClampString(t *testing.T) {
	assert.Equal(t, "", clampString("abc", 0))
	assert.Equal(t, "abc", clampString("abc", 3))
	assert.Equal(t, "ab…", clampString("abc", 2))
	assert.Equal(t, "Si…", clampString("Sienna-Rose Penn", 2))
}

func TestRenderQueries_EmptyMall(t *testing.T) {
	r := query.Run(domain.NewMall("Empty", nil, nil))

	assert.Equal(t, "The mall has no stores.", renderBiggestStore(r))
	assert.Equal(t, "The mall has no employees.", renderHighestPaid(r))
	assert.Contains(t, renderHeadcount(r), "Empty employs 0 people")
}

func TestRenderHighestPaid_ListsTies(t *testing.T) {
	m := domain.NewMall("ties", nil, map[string]domain.Floor{
		"F": domain.NewFloor(map[string]domain.Store{
			"S": domain.NewStore(map[string]domain.Employee{
				"Ann": {Salary: 10, WorkingHours: domain.WorkingHours{Start: 9, End: 17}},
				"Bob": {Salary: 10},
			}, 1),
		}, 1),
	})

	out := renderHighestPaid(query.Run(m))
	assert.Contains(t, out, "Top salary: 10.00")
	assert.Contains(t, out, "Ann (F / S, 8h/day)")
	assert.Contains(t, out, "Bob (F / S, 0h/day)")
}

func TestRenderSecurity(t *testing.T) {
	assert.Empty(t, renderSecurity(nil))

	m := domaintest.LaVieFunchal()
	out := policy.CheckForSecurities(&m, domaintest.Candidates()[:1], domain.DefaultPolicyConfig())

	s := renderSecurity(&out)
	assert.Contains(t, s, "Total area:  1300 m²")
	assert.Contains(t, s, "+ Peter Solomons, 45 y/o, 20 years experience")
	assert.Contains(t, s, "Target not met: 3 guard(s) on staff.")

	none := renderSecurity(&domain.SecurityOutcome{Target: 2, GuardsBefore: 2, GuardsAfter: 2})
	assert.Contains(t, none, "No hires needed.")
}

func TestRenderPayroll_Limit(t *testing.T) {
	var changes []domain.SalaryChange
	for i := 0; i < 5; i++ {
		changes = append(changes, domain.SalaryChange{
			Employee: fmt.Sprintf("E%d", i), WorkedHours: 12, Before: 100, After: 110, Raised: true,
		})
	}

	out := renderPayroll(changes, 3)
	assert.Contains(t, out, "5 raised, 0 cut")
	assert.Equal(t, 3, strings.Count(out, "  + "))
	assert.Contains(t, out, "… 2 more")

	assert.Equal(t, "No employees to adjust.\n", renderPayroll(nil, 3))
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{
			"mall missing",
			&domain.OpError{Op: "yamlmall.load", Kind: domain.KindNotFound},
			"Mall data not found",
		},
		{
			"candidates missing",
			&domain.OpError{Op: "yamlmall.load_candidates", Kind: domain.KindNotFound},
			"Candidate list not found",
		},
		{
			"workspace missing",
			&domain.OpError{Op: "workspacefinder.loadconfig", Kind: domain.KindNotFound},
			"Workspace not found",
		},
		{
			"invalid field",
			&domain.OpError{
				Op:   "yamlmall.validate",
				Kind: domain.KindInvalidData,
				Err:  fmt.Errorf("field name: value is required: %w", domain.ErrInvalidData),
			},
			"Invalid mall data: name: value is required",
		},
		{
			"bad yaml",
			&domain.OpError{
				Op:   "yamlmall.load",
				Kind: domain.KindInvalidData,
				Path: "/ws/data/mall.yaml",
				Err:  errors.New("yaml: line 7: did not find expected key"),
			},
			"Invalid mall data at mall.yaml line 7",
		},
		{
			"bad config",
			&domain.OpError{Op: "workspacefinder.loadconfig", Kind: domain.KindInvalidConfig, Path: "/ws/mallctl.yaml"},
			"Invalid config at mallctl.yaml",
		},
		{"plain", errors.New("boom"), "Unexpected error (see logs)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, userMessage(tc.err))
		})
	}
}
