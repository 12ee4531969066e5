package cli

import (
	"github.com/riskgate/riskgate/internal/adapters/inbound/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local rule-based evaluator",
		Long:  "Start an HTTP server hosting the deterministic rules engine, so intake forms can be evaluated without the hosted AI service.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return httpapi.NewRouter().Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8000", "Listen address")

	return cmd
}
