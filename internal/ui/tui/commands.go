package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/mallctl/internal/app/workspace"
	"github.com/aalvaropc/mallctl/internal/ports"
	"github.com/aalvaropc/mallctl/internal/usecase"
)

const actionTimeout = 30 * time.Second

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{err: errors.New("workspace locator is nil")}
		}

		root, err := deps.WorkspaceLocator.FindRoot(wd)
		if err != nil {
			return workspaceRefreshedMsg{err: err}
		}
		return workspaceRefreshedMsg{found: true, root: root}
	}
}

func cmdInitWorkspace(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("workspace initializer is nil")}
		}
		err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdRunQueries(root string, a action, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		s, err := workspace.Open(root)
		if err != nil {
			return queryDoneMsg{action: a, err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		report, _, err := usecase.NewRunQueries(s.Loader).Execute(ctx, s.Path(s.Config.Paths.DataFile))
		if err != nil {
			log.Error("tui.query.failed", "action", a.String(), "err", err)
			return queryDoneMsg{action: a, err: err}
		}
		log.Info("tui.query.done", "action", a.String(), "mall", report.MallName)
		return queryDoneMsg{action: a, report: report}
	}
}

// cmdApplyPolicies runs the policies for a. Previews work on the loaded copy
// and never write a report.
func cmdApplyPolicies(root string, a action, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		s, err := workspace.Open(root)
		if err != nil {
			return policyDoneMsg{action: a, err: err}
		}

		req := usecase.ApplyRequest{
			DataPath:       s.Path(s.Config.Paths.DataFile),
			CandidatesPath: s.Path(s.Config.Paths.CandidatesFile),
		}
		switch a {
		case actionSecurityPreview:
			req.Security = true
		case actionPayrollPreview:
			req.Payroll = true
		default:
			req.Security, req.Payroll = true, true
		}

		var store ports.ReportStore
		if a == actionApply {
			store = s.Store
		}

		uc := usecase.NewApplyPolicies(s.Loader, s.Loader, store,
			usecase.WithRules(s.Config.Policy),
			usecase.WithLogger(log),
		)

		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		report, id, err := uc.Execute(ctx, req)
		return policyDoneMsg{action: a, report: report, id: id, err: err}
	}
}
