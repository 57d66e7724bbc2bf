package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/mallctl/internal/infra/logger"
	"github.com/aalvaropc/mallctl/internal/usecase"
)

func policyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "policy",
		Short: "Apply the security staffing and payroll policies",
	}

	c.AddCommand(
		policyRunCmd("security", "Hire guard candidates until the mall meets its guard target", true, false),
		policyRunCmd("payroll", "Raise long shifts and cut short ones", false, true),
		policyRunCmd("apply", "Run security staffing, then payroll", true, true),
	)
	return c
}

func policyRunCmd(use, short string, security, payroll bool) *cobra.Command {
	var workspace string
	var data string
	var format string
	var candidates string
	var noSave bool

	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			opts := []usecase.ApplyOption{
				usecase.WithRules(ws.cfg.Policy),
				usecase.WithLogger(logger.Component("policy")),
			}

			var uc *usecase.ApplyPolicies
			if noSave {
				uc = usecase.NewApplyPolicies(ws.malls, ws.candidates, nil, opts...)
			} else {
				uc = usecase.NewApplyPolicies(ws.malls, ws.candidates, ws.store, opts...)
			}

			report, id, err := uc.Execute(cmd.Context(), usecase.ApplyRequest{
				DataPath:       ws.dataPath(data),
				CandidatesPath: ws.candidatesPath(candidates),
				Security:       security,
				Payroll:        payroll,
			})
			if err != nil {
				// A failed save still produced a report worth showing.
				if report.ID != "" {
					_ = printPolicyReport(cmd.OutOrStdout(), report, id, ws.format(format))
				}
				return err
			}

			return printPolicyReport(cmd.OutOrStdout(), report, id, ws.format(format))
		},
	}

	addWorkspaceFlags(c, &workspace, &data, &format)
	if security {
		c.Flags().StringVar(&candidates, "candidates", "", "Guard candidates file (defaults to paths.candidates_file)")
	}
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the policy report under reports/")
	return c
}
