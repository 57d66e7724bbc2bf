package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/mallctl/internal/infra/fsworkspace"
	"github.com/aalvaropc/mallctl/internal/infra/logger"
	"github.com/aalvaropc/mallctl/internal/infra/workspacefinder"
	"github.com/aalvaropc/mallctl/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "mallctl",
		Short:        "mallctl: staffing and payroll for a shopping mall",
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, _ []string) {
			explicit := ""
			for _, name := range []string{"workspace", "path"} {
				if f := c.Flags().Lookup(name); f != nil && f.Value.String() != "" {
					explicit = f.Value.String()
					break
				}
			}
			root := logRoot(explicit)
			if root == "" {
				return
			}
			cleanup, _ = logger.Setup(logger.Config{
				Root:  root,
				Debug: debug,
			})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.Component("tui"),
				Debug:                debug,
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .mallctl/logs/mallctl.log")

	cmd.AddCommand(
		initCmd(),
		queryCmd(),
		policyCmd(),
		inspectCmd(),
		versionCmd(),
	)
	return cmd
}

// logRoot picks the directory whose .mallctl/logs receives the log file:
// the explicit one, else the detected workspace. Empty means no file logging.
func logRoot(explicit string) string {
	if explicit != "" {
		if abs, err := filepath.Abs(explicit); err == nil {
			return abs
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return ""
	}
	return root
}
