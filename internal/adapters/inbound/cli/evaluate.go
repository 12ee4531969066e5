package cli

import (
	"encoding/json"
	"fmt"

	"github.com/riskgate/riskgate/internal/adapters/outbound/config"
	"github.com/riskgate/riskgate/internal/adapters/outbound/evalclient"
	"github.com/riskgate/riskgate/internal/adapters/outbound/formfile"
	"github.com/riskgate/riskgate/internal/adapters/outbound/tui"
	"github.com/riskgate/riskgate/internal/application"
	"github.com/riskgate/riskgate/internal/domain"
	"github.com/spf13/cobra"
)

func newEvaluateCmd() *cobra.Command {
	var (
		formPath   string
		baseURL    string
		evalPath   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Submit an intake form for risk evaluation",
		Long:  "Normalize an intake form, submit it to the configured risk-evaluation service and render the returned decision.",
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := formfile.Load(formPath)
			if err != nil {
				return err
			}

			settings, err := config.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if baseURL != "" {
				settings.BaseURL = baseURL
			}
			if evalPath != "" {
				settings.EvaluatePath = evalPath
			}

			client := evalclient.New(settings.BaseURL, evalclient.WithPath(settings.EvaluatePath))
			svc := application.NewSubmissionService(client, application.WithSingleFlight())

			state, err := svc.Submit(cmd.Context(), form)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderStateJSON(cmd, state)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderState(state))
			if state.Phase == domain.PhaseFailed {
				return fmt.Errorf("evaluation failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formPath, "form", "intake.yaml", "Path to the intake form (YAML)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Evaluation service base URL (overrides config)")
	cmd.Flags().StringVar(&evalPath, "path", "", "Evaluation endpoint suffix, e.g. /evaluate/rules (overrides config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")

	return cmd
}

func renderStateJSON(cmd *cobra.Command, state domain.SubmissionState) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	if state.Phase == domain.PhaseFailed {
		if err := enc.Encode(map[string]string{"error": state.Err}); err != nil {
			return err
		}
		return fmt.Errorf("evaluation failed")
	}
	return enc.Encode(state.Result)
}
