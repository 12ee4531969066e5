package domain

// Decisions the evaluation service is known to emit. The wire contract is
// not enforced: older deployments say "needs_review" where newer ones say
// "review", and nothing stops the service from inventing a new value.
const (
	DecisionApprove     = "approve"
	DecisionReject      = "reject"
	DecisionReview      = "review"
	DecisionNeedsReview = "needs_review"
)

// EvaluationResult is the service's verdict, accepted from the wire as-is.
// RiskScore is expected to be 0-100 but is not clamped or validated here.
type EvaluationResult struct {
	Decision  string   `json:"decision"`
	RiskScore int      `json:"risk_score"`
	Issues    []string `json:"issues"`
	Summary   string   `json:"summary"`
}

// Verdict classifies a decision string for rendering. Unrecognized or absent
// decisions map to VerdictPending so an unexpected payload degrades to the
// neutral style instead of failing.
type Verdict int

const (
	VerdictPending Verdict = iota
	VerdictApprove
	VerdictReview
	VerdictReject
)

func VerdictFor(decision string) Verdict {
	switch decision {
	case DecisionApprove:
		return VerdictApprove
	case DecisionReview, DecisionNeedsReview:
		return VerdictReview
	case DecisionReject:
		return VerdictReject
	default:
		return VerdictPending
	}
}
