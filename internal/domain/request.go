package domain

import "strings"

// Defaults substituted for blank required fields. Substitution is a
// normalization rule, not a validation failure.
const (
	DefaultCompanyName  = "Unknown"
	DefaultIndustry     = "Unknown"
	DefaultContactEmail = "security@example.com"
)

// EvaluationRequest is the canonical payload submitted to the evaluation
// service. Immutable once built; always derived from a FormState snapshot
// via Normalize.
type EvaluationRequest struct {
	CompanyName     string   `json:"company_name"`
	Industry        string   `json:"industry"`
	ContactEmail    string   `json:"contact_email"`
	Regions         []string `json:"regions"`
	TrafficLevel    string   `json:"traffic_level"`
	CloudProviders  []string `json:"cloud_providers"`
	CriticalApps    []string `json:"critical_apps"`
	HasWAF          bool     `json:"has_waf"`
	HasMFAForAdmins bool     `json:"has_mfa_for_admins"`
	LoggingStrategy string   `json:"logging_strategy"`
	Compliance      []string `json:"compliance"`
}

// Normalize maps a raw form snapshot into a canonical EvaluationRequest.
// It is total: every field has a defined default, so it never fails and
// never touches the network or filesystem. The input is not mutated.
func Normalize(form FormState) EvaluationRequest {
	return EvaluationRequest{
		CompanyName:     defaultIfBlank(form.CompanyName, DefaultCompanyName),
		Industry:        defaultIfBlank(form.Industry, DefaultIndustry),
		ContactEmail:    defaultIfBlank(form.ContactEmail, DefaultContactEmail),
		Regions:         dedupe(form.Regions),
		TrafficLevel:    defaultIfBlank(form.TrafficLevel, TrafficLow),
		CloudProviders:  dedupe(form.CloudProviders),
		CriticalApps:    splitApps(form.CriticalApps),
		HasWAF:          form.HasWAF,
		HasMFAForAdmins: form.HasMFAForAdmins,
		LoggingStrategy: strings.TrimSpace(form.LoggingStrategy),
		Compliance:      dedupe(form.Compliance),
	}
}

func defaultIfBlank(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}

// splitApps turns the free-text critical-applications field into a list:
// comma-split, trimmed, empty entries dropped. "App A, , App B," yields
// ["App A", "App B"].
func splitApps(text string) []string {
	apps := []string{}
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			apps = append(apps, part)
		}
	}
	return apps
}

// dedupe drops repeated entries while preserving first-seen order. Selection
// order carries no meaning, but a stable output keeps Normalize idempotent.
func dedupe(values []string) []string {
	out := []string{}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
