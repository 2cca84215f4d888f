package poller

// Verdict is the classification of one snapshot.
type Verdict int

const (
	Pending Verdict = iota
	Success
	Failure
)

func (v Verdict) String() string {
	switch v {
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "pending"
	}
}

// Classification is what a Classifier returns for a snapshot. Value is only
// meaningful on Success and Reason only on Failure.
type Classification[V any] struct {
	Verdict Verdict
	Value   V
	Reason  string
}

func PendingOf[V any]() Classification[V] {
	return Classification[V]{Verdict: Pending}
}

func SuccessOf[V any](v V) Classification[V] {
	return Classification[V]{Verdict: Success, Value: v}
}

func FailureOf[V any](reason string) Classification[V] {
	return Classification[V]{Verdict: Failure, Reason: reason}
}

// OutcomeKind is the terminal state a poll ended in.
type OutcomeKind int

const (
	Resolved OutcomeKind = iota + 1
	Failed
	TimedOut
)

func (k OutcomeKind) String() string {
	switch k {
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	case TimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

type Outcome[V any] struct {
	Kind     OutcomeKind
	Value    V
	Reason   string
	Attempts int
}
