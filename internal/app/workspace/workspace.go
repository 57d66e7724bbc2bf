// Package workspace opens a mallctl workspace: .env, mallctl.yaml and the
// adapters every command needs.
package workspace

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/aalvaropc/mallctl/internal/domain"
	"github.com/aalvaropc/mallctl/internal/infra/reportstore"
	"github.com/aalvaropc/mallctl/internal/infra/workspacefinder"
	"github.com/aalvaropc/mallctl/internal/infra/yamlmall"
)

// Session is an opened workspace.
type Session struct {
	Root   string
	Config domain.Config

	Loader *yamlmall.Loader
	Store  *reportstore.JSONStore
}

// Open loads <root>/.env and mallctl.yaml and wires the loaders and the
// report store.
func Open(root string) (*Session, error) {
	if err := LoadDotEnv(root); err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &Session{
		Root:   root,
		Config: cfg,
		Loader: yamlmall.NewLoader(),
		Store:  reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true)),
	}, nil
}

// LoadDotEnv reads <root>/.env into the process environment. Variables that
// are already set keep their value; a missing file is not an error.
func LoadDotEnv(root string) error {
	path := filepath.Join(root, ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &domain.OpError{
			Op:   "workspace.dotenv",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// Path anchors p at the workspace root unless it is already absolute.
func (s *Session) Path(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(s.Root, p)
}
