package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/mallctl/internal/app/workspace"
	"github.com/aalvaropc/mallctl/internal/domain"
	"github.com/aalvaropc/mallctl/internal/infra/workspacefinder"
	"github.com/aalvaropc/mallctl/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	malls      ports.MallLoader
	candidates ports.CandidateLoader
	store      ports.ReportStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	s, err := workspace.Open(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:       s.Root,
		cfg:        s.Config,
		malls:      s.Loader,
		candidates: s.Loader,
		store:      s.Store,
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `mallctl init`): %w", wd, err)
	}
	return root, nil
}

// resolveFile returns arg (or fallback when arg is empty) anchored at the
// workspace root unless it is already absolute.
func resolveFile(ws *workspaceCtx, arg, fallback string) string {
	p := strings.TrimSpace(arg)
	if p == "" {
		p = fallback
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(ws.root, p)
	}
	return filepath.Clean(p)
}

func (ws *workspaceCtx) dataPath(arg string) string {
	return resolveFile(ws, arg, ws.cfg.Paths.DataFile)
}

func (ws *workspaceCtx) candidatesPath(arg string) string {
	return resolveFile(ws, arg, ws.cfg.Paths.CandidatesFile)
}

func (ws *workspaceCtx) format(flag string) string {
	if f := strings.TrimSpace(flag); f != "" {
		return f
	}
	return ws.cfg.Output.Format
}
