package domain

// Phase enumerates the submission lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePending
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePending:
		return "pending"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SubmissionState is a tagged union over the lifecycle phases: exactly one
// variant holds at any time. Result is meaningful only for PhaseSucceeded,
// Err only for PhaseFailed. Holders replace the whole value on every
// transition; it is never partially mutated.
type SubmissionState struct {
	Phase  Phase
	Result *EvaluationResult
	Err    string
}

func Idle() SubmissionState { return SubmissionState{Phase: PhaseIdle} }

func Pending() SubmissionState { return SubmissionState{Phase: PhasePending} }

func Succeeded(result *EvaluationResult) SubmissionState {
	return SubmissionState{Phase: PhaseSucceeded, Result: result}
}

func Failed(message string) SubmissionState {
	return SubmissionState{Phase: PhaseFailed, Err: message}
}
