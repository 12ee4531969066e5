package formfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/riskgate/riskgate/internal/adapters/outbound/formfile"
	"github.com/riskgate/riskgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FullForm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "intake.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
company_name: Demo Bank
industry: Finance
contact_email: security@demobank.example
regions:
  - NA
  - EMEA
traffic_level: high
cloud_providers:
  - AWS
critical_apps: Online banking portal, Payments API
has_waf: true
has_mfa_for_admins: true
logging_strategy: Centralized SIEM
compliance:
  - PCI-DSS
`), 0644))

	form, err := formfile.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Demo Bank", form.CompanyName)
	assert.Equal(t, []string{"NA", "EMEA"}, form.Regions)
	assert.Equal(t, domain.TrafficHigh, form.TrafficLevel)
	assert.Equal(t, "Online banking portal, Payments API", form.CriticalApps)
	assert.True(t, form.HasWAF)
	assert.True(t, form.HasMFAForAdmins)
}

func TestLoad_PartialFormLeavesZeroValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "intake.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`company_name: Demo Bank`), 0644))

	form, err := formfile.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Demo Bank", form.CompanyName)
	assert.Empty(t, form.Industry, "defaulting belongs to the normalizer, not the loader")
	assert.Empty(t, form.Regions)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := formfile.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading intake form")
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "intake.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`{{{nope`), 0644))

	_, err := formfile.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing intake.yaml")
}
