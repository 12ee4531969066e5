package domain

// FormState is the raw intake form exactly as the user filled it in. Fields
// may be blank or messy; Normalize turns a snapshot of this into a
// well-formed EvaluationRequest.
type FormState struct {
	CompanyName     string   `yaml:"company_name" json:"company_name"`
	Industry        string   `yaml:"industry" json:"industry"`
	ContactEmail    string   `yaml:"contact_email" json:"contact_email"`
	Regions         []string `yaml:"regions" json:"regions"`
	TrafficLevel    string   `yaml:"traffic_level" json:"traffic_level"`
	CloudProviders  []string `yaml:"cloud_providers" json:"cloud_providers"`
	CriticalApps    string   `yaml:"critical_apps" json:"critical_apps"`
	HasWAF          bool     `yaml:"has_waf" json:"has_waf"`
	HasMFAForAdmins bool     `yaml:"has_mfa_for_admins" json:"has_mfa_for_admins"`
	LoggingStrategy string   `yaml:"logging_strategy" json:"logging_strategy"`
	Compliance      []string `yaml:"compliance" json:"compliance"`
}

// Traffic levels accepted by the evaluation service.
const (
	TrafficLow    = "low"
	TrafficMedium = "medium"
	TrafficHigh   = "high"
)

// Static option sets offered by the intake form. The evaluation service does
// not enforce these; the form simply never offers anything else.
var (
	RegionOptions       = []string{"NA", "EMEA", "APAC", "LATAM"}
	TrafficLevelOptions = []string{TrafficLow, TrafficMedium, TrafficHigh}
	CloudOptions        = []string{"AWS", "Azure", "GCP", "On-prem"}
	ComplianceOptions   = []string{"PCI-DSS", "ISO27001", "SOC2", "HIPAA", "GDPR"}
)
