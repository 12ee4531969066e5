// Package rules holds the deterministic fallback evaluator used when no
// hosted risk-scoring service is reachable. It mirrors the scoring policy of
// the hosted service's rule engine so local answers stay comparable.
package rules

import (
	"fmt"
	"strings"

	"github.com/riskgate/riskgate/internal/domain"
)

// Evaluate scores a normalized request. Higher scores mean higher risk.
func Evaluate(req domain.EvaluationRequest) domain.EvaluationResult {
	score := 0
	issues := []string{}

	if strings.EqualFold(req.TrafficLevel, domain.TrafficHigh) {
		score += 20
	}

	if hasRegion(req.Regions, "APAC") {
		score += 10
	}

	if !req.HasWAF {
		score += 30
		issues = append(issues, "No WAF in front of critical applications.")
	}

	if !req.HasMFAForAdmins {
		score += 25
		issues = append(issues, "MFA is not enabled for admin accounts.")
	}

	if !strings.Contains(strings.ToLower(req.LoggingStrategy), "centralized") {
		score += 15
		issues = append(issues, "Logging does not appear to be clearly centralized.")
	}

	if !hasMajorCompliance(req.Compliance) {
		score += 20
		issues = append(issues, "No major compliance frameworks (PCI/ISO) are listed.")
	}

	var decision string
	switch {
	case score < 30:
		decision = domain.DecisionApprove
	case score < 60:
		decision = domain.DecisionNeedsReview
	default:
		decision = domain.DecisionReject
	}

	return domain.EvaluationResult{
		Decision:  decision,
		RiskScore: score,
		Issues:    issues,
		Summary:   fmt.Sprintf("Rule-based evaluation score %d with %d issue(s).", score, len(issues)),
	}
}

func hasRegion(regions []string, name string) bool {
	for _, r := range regions {
		if strings.EqualFold(r, name) {
			return true
		}
	}
	return false
}

func hasMajorCompliance(frameworks []string) bool {
	for _, c := range frameworks {
		upper := strings.ToUpper(c)
		if strings.Contains(upper, "PCI") || strings.Contains(upper, "ISO") {
			return true
		}
	}
	return false
}
