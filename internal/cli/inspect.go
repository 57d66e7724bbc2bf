package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/mallctl/internal/usecase/inspect"
)

func inspectCmd() *cobra.Command {
	var workspace string
	var data string
	var format string

	c := &cobra.Command{
		Use:     "inspect <jsonpath>",
		Short:   "Print the part of the mall selected by a JSONPath expression",
		Example: `  mallctl inspect '$.floors["Ground Floor"].stores.Footzo.square_meters'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			m, err := ws.malls.LoadMall(ws.dataPath(data))
			if err != nil {
				return err
			}

			v, err := inspect.Eval(m, args[0])
			if err != nil {
				return err
			}
			return printValue(cmd.OutOrStdout(), v, ws.format(format))
		},
	}

	addWorkspaceFlags(c, &workspace, &data, &format)
	return c
}
