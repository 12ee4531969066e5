package application_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskgate/riskgate/internal/application"
	"github.com/riskgate/riskgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient answers every call with a fixed outcome and records the
// requests it saw.
type stubClient struct {
	result *domain.EvaluationResult
	err    error

	mu       sync.Mutex
	requests []domain.EvaluationRequest
}

func (c *stubClient) Evaluate(_ context.Context, req domain.EvaluationRequest) (*domain.EvaluationResult, error) {
	c.mu.Lock()
	c.requests = append(c.requests, req)
	c.mu.Unlock()
	return c.result, c.err
}

func (c *stubClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}

// gate parks one Evaluate call until the test releases it.
type gate struct {
	release chan struct{}
	result  *domain.EvaluationResult
	err     error
}

// gateClient hands each Evaluate call the next gate and blocks until that
// gate is released, letting tests control settle order.
type gateClient struct {
	gates chan *gate
}

func (c *gateClient) Evaluate(_ context.Context, _ domain.EvaluationRequest) (*domain.EvaluationResult, error) {
	g := <-c.gates
	<-g.release
	return g.result, g.err
}

func TestSubmissionService_StartsIdle(t *testing.T) {
	svc := application.NewSubmissionService(&stubClient{})
	assert.Equal(t, domain.Idle(), svc.State())
}

func TestSubmit_Success(t *testing.T) {
	result := &domain.EvaluationResult{
		Decision:  domain.DecisionApprove,
		RiskScore: 12,
		Issues:    []string{},
		Summary:   "Low risk",
	}
	client := &stubClient{result: result}
	svc := application.NewSubmissionService(client)

	state, err := svc.Submit(context.Background(), domain.FormState{
		CompanyName:  "Demo Bank",
		Regions:      []string{"NA"},
		TrafficLevel: domain.TrafficHigh,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PhaseSucceeded, state.Phase)
	assert.Same(t, result, state.Result)
	assert.Equal(t, state, svc.State())
	assert.Equal(t, 1, client.callCount(), "exactly one network call per submit")
}

func TestSubmit_NormalizesBeforeCalling(t *testing.T) {
	client := &stubClient{result: &domain.EvaluationResult{}}
	svc := application.NewSubmissionService(client)

	_, err := svc.Submit(context.Background(), domain.FormState{CriticalApps: "App A, , App B,"})
	require.NoError(t, err)

	require.Len(t, client.requests, 1)
	sent := client.requests[0]
	assert.Equal(t, domain.DefaultCompanyName, sent.CompanyName)
	assert.Equal(t, []string{"App A", "App B"}, sent.CriticalApps)
}

func TestSubmit_ClientErrorBecomesFailed(t *testing.T) {
	client := &stubClient{err: errors.New("evaluation service returned HTTP 500: internal error")}
	svc := application.NewSubmissionService(client)

	state, err := svc.Submit(context.Background(), domain.FormState{})
	require.NoError(t, err, "client failures settle the state, they do not propagate")

	assert.Equal(t, domain.PhaseFailed, state.Phase)
	assert.Contains(t, state.Err, "500")
	assert.Nil(t, state.Result)
}

func TestSubmit_ResubmitAfterFailureStartsFresh(t *testing.T) {
	client := &stubClient{err: errors.New("network error: evaluation service unreachable")}
	svc := application.NewSubmissionService(client)

	state, err := svc.Submit(context.Background(), domain.FormState{})
	require.NoError(t, err)
	require.Equal(t, domain.PhaseFailed, state.Phase)

	client.err = nil
	client.result = &domain.EvaluationResult{Decision: domain.DecisionApprove}

	state, err = svc.Submit(context.Background(), domain.FormState{})
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseSucceeded, state.Phase)
	assert.Empty(t, state.Err, "prior error is discarded, not merged")
}

func TestSubmit_PendingWhileInFlight(t *testing.T) {
	g := &gate{release: make(chan struct{}), result: &domain.EvaluationResult{}}
	client := &gateClient{gates: make(chan *gate, 1)}
	client.gates <- g

	svc := application.NewSubmissionService(client)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = svc.Submit(context.Background(), domain.FormState{})
	}()

	require.Eventually(t, func() bool {
		return svc.State().Phase == domain.PhasePending
	}, time.Second, time.Millisecond)

	close(g.release)
	<-done
	assert.Equal(t, domain.PhaseSucceeded, svc.State().Phase)
}

func TestSubmit_SingleFlightRefusesReentry(t *testing.T) {
	g := &gate{release: make(chan struct{}), result: &domain.EvaluationResult{}}
	client := &gateClient{gates: make(chan *gate, 1)}
	client.gates <- g

	svc := application.NewSubmissionService(client, application.WithSingleFlight())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = svc.Submit(context.Background(), domain.FormState{})
	}()

	require.Eventually(t, func() bool {
		return svc.State().Phase == domain.PhasePending
	}, time.Second, time.Millisecond)

	_, err := svc.Submit(context.Background(), domain.FormState{})
	assert.ErrorIs(t, err, application.ErrSubmissionInFlight)

	close(g.release)
	<-done
}

// Two overlapping submits race; the last-settling response determines the
// final state. Settle order is controlled via gates.
func TestSubmit_OverlappingSubmitsLastSettleWins(t *testing.T) {
	first := &gate{release: make(chan struct{}), result: &domain.EvaluationResult{Decision: domain.DecisionReject, RiskScore: 90}}
	second := &gate{release: make(chan struct{}), result: &domain.EvaluationResult{Decision: domain.DecisionApprove, RiskScore: 10}}

	client := &gateClient{gates: make(chan *gate, 2)}
	client.gates <- first
	client.gates <- second

	svc := application.NewSubmissionService(client)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Submit(context.Background(), domain.FormState{})
		}()
	}

	require.Eventually(t, func() bool {
		return svc.State().Phase == domain.PhasePending
	}, time.Second, time.Millisecond)

	// First settles: state becomes its verdict. Phase is never torn — it is
	// either still Pending or fully Succeeded.
	close(first.release)
	require.Eventually(t, func() bool {
		st := svc.State()
		return st.Phase == domain.PhaseSucceeded && st.Result == first.result
	}, time.Second, time.Millisecond)

	// Second settles last and wins.
	close(second.release)
	require.Eventually(t, func() bool {
		st := svc.State()
		return st.Phase == domain.PhaseSucceeded && st.Result == second.result
	}, time.Second, time.Millisecond)

	wg.Wait()
	assert.Same(t, second.result, svc.State().Result)
}
