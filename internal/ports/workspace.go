package ports

import "github.com/aalvaropc/mallctl/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
