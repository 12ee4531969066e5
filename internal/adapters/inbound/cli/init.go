package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const intakeFileName = "intake.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a sample intake.yaml form",
		Long:  "Create an intake.yaml with every intake question filled with example values, ready to edit and submit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, intakeFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", intakeFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(sampleIntake), 0644); err != nil {
				return fmt.Errorf("writing intake form: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", intakeFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing intake.yaml")

	return cmd
}

const sampleIntake = `# Riskgate intake form
# Fill in your network details, then run: riskgate evaluate

company_name: Demo Bank
industry: Finance
contact_email: security@demobank.example

# Regions: NA, EMEA, APAC, LATAM
regions:
  - NA
  - EMEA

# Traffic level: low, medium, high
traffic_level: high

# Cloud providers: AWS, Azure, GCP, On-prem
cloud_providers:
  - AWS

# Comma-separated list of business-critical applications
critical_apps: Online banking portal, Payments API

has_waf: true
has_mfa_for_admins: true

logging_strategy: Centralized SIEM with 90-day retention

# Compliance frameworks: PCI-DSS, ISO27001, SOC2, HIPAA, GDPR
compliance:
  - PCI-DSS
  - ISO27001
`
