package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/mallctl/internal/domain"
)

// payrollPreviewRows caps how many salary changes the result card lists.
const payrollPreviewRows = 12

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderBiggestStore(r domain.QueryReport) string {
	if r.BiggestStore == nil {
		return "The mall has no stores."
	}
	s := r.BiggestStore
	return fmt.Sprintf("%s on %s\n\n  area:      %d m²\n  employees: %d\n",
		s.Name, s.Floor, s.Store.SquareMeters, len(s.Store.Employees))
}

func renderHighestPaid(r domain.QueryReport) string {
	if len(r.HighestPaid) == 0 {
		return "The mall has no employees."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Top salary: %.2f\n\n", r.HighestPaid[0].Employee.Salary)
	for _, e := range r.HighestPaid {
		fmt.Fprintf(&b, "  - %s (%s / %s, %dh/day)\n",
			e.Name, e.Floor, e.Store, e.Employee.WorkedHours())
	}
	return b.String()
}

func renderHeadcount(r domain.QueryReport) string {
	return fmt.Sprintf("%s employs %d people (guards included).\n", r.MallName, r.Headcount)
}

func renderSecurity(out *domain.SecurityOutcome) string {
	if out == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total area:  %d m²\n", out.TotalArea)
	fmt.Fprintf(&b, "Target:      %d guard(s)\n", out.Target)
	fmt.Fprintf(&b, "Guards:      %d -> %d\n\n", out.GuardsBefore, out.GuardsAfter)

	if len(out.Hires) == 0 {
		b.WriteString("No hires needed.\n")
		return b.String()
	}
	b.WriteString("Hires:\n")
	for _, h := range out.Hires {
		note := ""
		if h.Replaced {
			note = " (replaced existing guard)"
		}
		fmt.Fprintf(&b, "  + %s, %d y/o, %d years experience%s\n",
			h.Name, h.Guard.Age, h.Guard.YearsExperience, note)
	}
	if out.GuardsAfter != out.Target {
		fmt.Fprintf(&b, "\nTarget not met: %d guard(s) on staff.\n", out.GuardsAfter)
	}
	return b.String()
}

func renderPayroll(changes []domain.SalaryChange, limit int) string {
	if len(changes) == 0 {
		return "No employees to adjust.\n"
	}

	raised := 0
	for _, c := range changes {
		if c.Raised {
			raised++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d raised, %d cut\n\n", raised, len(changes)-raised)

	shown := changes
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, c := range shown {
		sign := "-"
		if c.Raised {
			sign = "+"
		}
		fmt.Fprintf(&b, "  %s %-24s %2dh  %9.2f -> %9.2f\n",
			sign, clampString(c.Employee, 24), c.WorkedHours, c.Before, c.After)
	}
	if rest := len(changes) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "  … %d more\n", rest)
	}
	return b.String()
}

func renderPolicyReport(r domain.PolicyReport, id string) string {
	var b strings.Builder
	if r.Security != nil {
		b.WriteString("Security\n")
		b.WriteString(renderSecurity(r.Security))
		b.WriteString("\n")
	}
	if r.Payroll != nil {
		b.WriteString("Payroll\n")
		b.WriteString(renderPayroll(r.Payroll, payrollPreviewRows))
		b.WriteString("\n")
	}
	if id != "" {
		fmt.Fprintf(&b, "Report saved: %s\n", id)
	}
	return b.String()
}
