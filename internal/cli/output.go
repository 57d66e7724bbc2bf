package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/mallctl/internal/domain"
	"github.com/aalvaropc/mallctl/internal/usecase/inspect"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	raiseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cutStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// encode writes v as json or yaml. pretty output is handled by the callers.
func encode(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|yaml)", format)
	}
}

const (
	sectionBiggestStore = "biggest-store"
	sectionHighestPaid  = "highest-paid"
	sectionHeadcount    = "headcount"
)

func querySection(r domain.QueryReport, section string) (any, error) {
	switch section {
	case "":
		return r, nil
	case sectionBiggestStore:
		return r.BiggestStore, nil
	case sectionHighestPaid:
		return r.HighestPaid, nil
	case sectionHeadcount:
		return r.Headcount, nil
	default:
		return nil, fmt.Errorf("unknown query %q (expected %s|%s|%s)",
			section, sectionBiggestStore, sectionHighestPaid, sectionHeadcount)
	}
}

func printQueryReport(w io.Writer, r domain.QueryReport, section, format string) error {
	v, err := querySection(r, section)
	if err != nil {
		return err
	}
	if format != "pretty" && format != "" {
		return encode(w, v, format)
	}

	fmt.Fprintf(w, "%s %s\n\n", labelStyle.Render("Mall:"), r.MallName)
	if section == "" || section == sectionBiggestStore {
		fmt.Fprintf(w, "%s  %s\n", labelStyle.Render("Biggest store:"), describeStore(r.BiggestStore))
	}
	if section == "" || section == sectionHighestPaid {
		fmt.Fprintf(w, "%s\n", labelStyle.Render("Highest paid:"))
		if len(r.HighestPaid) == 0 {
			fmt.Fprintf(w, "  %s\n", faintStyle.Render("(no employees)"))
		}
		for _, e := range r.HighestPaid {
			fmt.Fprintf(w, "  - %s (%s / %s) %.2f\n", e.Name, e.Floor, e.Store, e.Employee.Salary)
		}
	}
	if section == "" || section == sectionHeadcount {
		fmt.Fprintf(w, "%s  %d\n", labelStyle.Render("Headcount:"), r.Headcount)
	}
	return nil
}

func describeStore(s *domain.StoreRef) string {
	if s == nil {
		return faintStyle.Render("(no stores)")
	}
	return fmt.Sprintf("%s (%s), %d m², %d employee(s)",
		s.Name, s.Floor, s.Store.SquareMeters, len(s.Store.Employees))
}

func printPolicyReport(w io.Writer, r domain.PolicyReport, id, format string) error {
	if format != "pretty" && format != "" {
		return encode(w, map[string]any{"saved_id": id, "report": r}, format)
	}

	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Mall:"), r.MallName)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Report:"), r.ID)
	if id != "" {
		fmt.Fprintf(w, "%s  %s\n", labelStyle.Render("Saved:"), id)
	}
	fmt.Fprintln(w)

	if s := r.Security; s != nil {
		fmt.Fprintln(w, labelStyle.Render("Security"))
		fmt.Fprintf(w, "  total area %d m², target %d, guards %d -> %d\n",
			s.TotalArea, s.Target, s.GuardsBefore, s.GuardsAfter)
		if len(s.Hires) == 0 {
			fmt.Fprintf(w, "  %s\n", faintStyle.Render("no hires"))
		}
		for _, h := range s.Hires {
			line := fmt.Sprintf("  + %s (age %d, %dy experience)", h.Name, h.Guard.Age, h.Guard.YearsExperience)
			if h.Replaced {
				line += faintStyle.Render(" replaced existing guard")
			}
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}

	if r.Payroll != nil {
		fmt.Fprintln(w, labelStyle.Render("Payroll"))
		fmt.Fprintln(w, payrollTable(r.Payroll))
	}
	return nil
}

func payrollTable(changes []domain.SalaryChange) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FLOOR", "STORE", "EMPLOYEE", "HOURS", "BEFORE", "AFTER", "")

	for _, c := range changes {
		verdict := cutStyle.Render("cut")
		if c.Raised {
			verdict = raiseStyle.Render("raise")
		}
		t.Row(
			c.Floor,
			c.Store,
			c.Employee,
			strconv.Itoa(c.WorkedHours),
			strconv.FormatFloat(c.Before, 'f', 2, 64),
			strconv.FormatFloat(c.After, 'f', 2, 64),
			verdict,
		)
	}
	return t.Render()
}

func printValue(w io.Writer, v any, format string) error {
	if format != "pretty" && format != "" {
		return encode(w, v, format)
	}
	_, err := fmt.Fprintln(w, inspect.Format(v))
	return err
}
