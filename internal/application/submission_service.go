package application

import (
	"context"
	"errors"
	"sync"

	"github.com/riskgate/riskgate/internal/domain"
)

// ErrSubmissionInFlight is returned by Submit when single-flight mode is on
// and a previous attempt has not settled yet.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// SubmissionService drives one evaluation attempt end-to-end and exposes the
// current SubmissionState for rendering.
//
// The state is replaced wholesale under a mutex, so a reader never observes
// a torn value. Overlapping submits race: whichever call settles last
// determines the final state. Callers that want to rule the race out opt in
// to WithSingleFlight.
type SubmissionService struct {
	client domain.EvaluationClient

	mu           sync.Mutex
	state        domain.SubmissionState
	singleFlight bool
}

// Option configures a SubmissionService at creation time.
type Option func(*SubmissionService)

// WithSingleFlight refuses new submits while one is pending instead of
// letting them race.
func WithSingleFlight() Option {
	return func(s *SubmissionService) { s.singleFlight = true }
}

func NewSubmissionService(client domain.EvaluationClient, opts ...Option) *SubmissionService {
	s := &SubmissionService{client: client, state: domain.Idle()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns a snapshot of the current submission state.
func (s *SubmissionService) State() domain.SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit runs one attempt: transition to Pending (discarding any prior
// outcome), normalize the form, make exactly one client call and settle to
// Succeeded or Failed. The settled state is returned.
//
// Every client failure is converted to Failed; nothing propagates past this
// method. The only error Submit itself returns is ErrSubmissionInFlight.
func (s *SubmissionService) Submit(ctx context.Context, form domain.FormState) (domain.SubmissionState, error) {
	s.mu.Lock()
	if s.singleFlight && s.state.Phase == domain.PhasePending {
		s.mu.Unlock()
		return domain.SubmissionState{}, ErrSubmissionInFlight
	}
	s.state = domain.Pending()
	s.mu.Unlock()

	req := domain.Normalize(form)

	var settled domain.SubmissionState
	result, err := s.client.Evaluate(ctx, req)
	if err != nil {
		settled = domain.Failed(err.Error())
	} else {
		settled = domain.Succeeded(result)
	}

	s.mu.Lock()
	s.state = settled
	s.mu.Unlock()

	return settled, nil
}
