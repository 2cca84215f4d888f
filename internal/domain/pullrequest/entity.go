package pullrequest

type State string

const StateOpen State = "open"

// Mergeability is computed asynchronously by the remote, so Unknown is a
// normal transient answer.
type Mergeability int

const (
	MergeabilityUnknown Mergeability = iota
	Mergeable
	Conflicting
)

func (m Mergeability) String() string {
	switch m {
	case Mergeable:
		return "mergeable"
	case Conflicting:
		return "conflicting"
	default:
		return "unknown"
	}
}

type Entity struct {
	Number      int
	Title       string
	State       State
	Source      string
	Destination string
	HeadSHA     string
	URL         string
	Mergeable   Mergeability
}
