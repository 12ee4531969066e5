package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "riskgate",
		Short: "Evaluate network-onboarding intake forms",
		Long:  "Riskgate submits a customer's network-onboarding intake form to a risk-evaluation service and renders the decision, risk score and findings.",

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newEvaluateCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
