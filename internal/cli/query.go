package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/mallctl/internal/infra/logger"
	"github.com/aalvaropc/mallctl/internal/usecase"
)

func queryCmd() *cobra.Command {
	var workspace string
	var data string
	var format string

	c := &cobra.Command{
		Use:       "query [biggest-store|highest-paid|headcount]",
		Short:     "Report the biggest store, the highest paid employees and the headcount",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{sectionBiggestStore, sectionHighestPaid, sectionHeadcount},
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			section := ""
			if len(args) == 1 {
				section = args[0]
			}

			dataPath := ws.dataPath(data)
			report, _, err := usecase.NewRunQueries(ws.malls).Execute(cmd.Context(), dataPath)
			if err != nil {
				return err
			}
			logger.Component("cli").Info("query.done",
				"mall", report.MallName,
				"data", dataPath,
				"section", section,
				"headcount", report.Headcount,
			)

			return printQueryReport(cmd.OutOrStdout(), report, section, ws.format(format))
		},
	}

	addWorkspaceFlags(c, &workspace, &data, &format)
	return c
}

func addWorkspaceFlags(c *cobra.Command, workspace, data, format *string) {
	c.Flags().StringVarP(workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(data, "data", "", "Mall data file (defaults to paths.data_file)")
	c.Flags().StringVar(format, "format", "", "Output format: pretty|json|yaml (defaults to output.format)")
}
