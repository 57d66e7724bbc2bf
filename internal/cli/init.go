package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/mallctl/internal/infra/fsworkspace"
	"github.com/aalvaropc/mallctl/internal/infra/logger"
	"github.com/aalvaropc/mallctl/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a workspace with mallctl.yaml and a sample mall",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}
			logger.Component("cli").Info("workspace.initialized", "root", root, "force", force)

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", root)
			fmt.Fprintln(cmd.OutOrStdout(), "Try: mallctl query")
			return nil
		},
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	c.Flags().StringVar(&path, "path", wd, "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return c
}
