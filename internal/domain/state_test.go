package domain_test

import (
	"testing"

	"github.com/riskgate/riskgate/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSubmissionStateConstructors(t *testing.T) {
	result := &domain.EvaluationResult{Decision: domain.DecisionApprove, RiskScore: 12}

	idle := domain.Idle()
	assert.Equal(t, domain.PhaseIdle, idle.Phase)
	assert.Nil(t, idle.Result)
	assert.Empty(t, idle.Err)

	pending := domain.Pending()
	assert.Equal(t, domain.PhasePending, pending.Phase)
	assert.Nil(t, pending.Result)
	assert.Empty(t, pending.Err)

	succeeded := domain.Succeeded(result)
	assert.Equal(t, domain.PhaseSucceeded, succeeded.Phase)
	assert.Same(t, result, succeeded.Result)
	assert.Empty(t, succeeded.Err)

	failed := domain.Failed("network error")
	assert.Equal(t, domain.PhaseFailed, failed.Phase)
	assert.Nil(t, failed.Result)
	assert.Equal(t, "network error", failed.Err)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", domain.PhaseIdle.String())
	assert.Equal(t, "pending", domain.PhasePending.String())
	assert.Equal(t, "succeeded", domain.PhaseSucceeded.String())
	assert.Equal(t, "failed", domain.PhaseFailed.String())
	assert.Equal(t, "unknown", domain.Phase(42).String())
}
