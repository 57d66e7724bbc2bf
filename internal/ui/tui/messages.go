package tui

import "github.com/aalvaropc/mallctl/internal/domain"

type workspaceRefreshedMsg struct {
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type queryDoneMsg struct {
	action action
	report domain.QueryReport
	err    error
}

type policyDoneMsg struct {
	action action
	report domain.PolicyReport
	id     string
	err    error
}
