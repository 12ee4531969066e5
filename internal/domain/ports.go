package domain

import "context"

// EvaluationClient performs one evaluation exchange with the remote
// risk-scoring service. Implementations return an error for transport
// failures, non-2xx responses and undecodable bodies; they never retry.
type EvaluationClient interface {
	Evaluate(ctx context.Context, req EvaluationRequest) (*EvaluationResult, error)
}
