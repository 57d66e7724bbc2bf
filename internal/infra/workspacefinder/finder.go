package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/mallctl/internal/domain"
	"github.com/aalvaropc/mallctl/internal/ports"
)

// RootEnv pins the workspace root regardless of the starting directory.
const RootEnv = "MALLCTL_WORKSPACE"

// Finder locates a mallctl workspace root by searching for mallctl.yaml upward.
type Finder struct {
	ConfigFile string
	lookupEnv  func(string) (string, bool)
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile, lookupEnv: os.LookupEnv}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if pinned, ok := f.pinnedRoot(); ok {
		if !f.hasConfig(pinned) {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: filepath.Join(pinned, f.ConfigFile),
				Err:  domain.ErrNotFound,
			}
		}
		return pinned, nil
	}

	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("start directory is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file path (e.g. a mall data file) starts the search at its directory.
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for cur := filepath.Clean(abs); ; {
		if f.hasConfig(cur) {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

func (f *Finder) pinnedRoot() (string, bool) {
	if f.lookupEnv == nil {
		return "", false
	}
	v, ok := f.lookupEnv(RootEnv)
	if !ok || v == "" {
		return "", false
	}
	abs, err := filepath.Abs(v)
	if err != nil {
		return "", false
	}
	return abs, true
}

func (f *Finder) hasConfig(dir string) bool {
	name := f.ConfigFile
	if name == "" {
		name = ConfigFile
	}
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
