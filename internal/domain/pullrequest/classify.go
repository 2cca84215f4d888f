package pullrequest

import (
	"fmt"
	"strings"

	"yoho/internal/poller"
)

// ClassifyMergeability is the classifier for the mergeability wait.
func ClassifyMergeability(pr *Entity) poller.Classification[*Entity] {
	switch pr.Mergeable {
	case Mergeable:
		return poller.SuccessOf(pr)
	case Conflicting:
		return poller.FailureOf[*Entity](fmt.Sprintf("pull request %s is not mergeable", pr.URL))
	default:
		return poller.PendingOf[*Entity]()
	}
}

// ClassifyChecks returns the classifier for the CI wait on the pull request
// at url.
func ClassifyChecks(url string) poller.Classifier[*StatusCheckSet, *StatusCheckSet] {
	return func(set *StatusCheckSet) poller.Classification[*StatusCheckSet] {
		switch set.State() {
		case CheckPending:
			return poller.PendingOf[*StatusCheckSet]()
		case CheckFailure:
			return poller.FailureOf[*StatusCheckSet](
				fmt.Sprintf("checks failed for %s: %s", url, strings.Join(set.Failed(), ", ")),
			)
		default:
			return poller.SuccessOf(set)
		}
	}
}
