package scheduler

import "github.com/sitewatch-dev/sitewatch/internal/types"

// Edge classifies the movement between two monitor statuses. Incidents
// are opened and resolved only on conclusive flips.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeWentDown
	EdgeRecovered
)

// ConcludeStatus maps the final probe outcome of a check cycle to the
// monitor's next status.
func ConcludeStatus(success bool) string {
	if success {
		return types.StatusUp
	}

	return types.StatusDown
}

// TransitionEdge reports whether moving from previous to next opens an
// incident, resolves one, or neither. A monitor going down from any
// non-down state (including pending) opens an incident; only a recovery
// from down resolves one.
func TransitionEdge(previous, next string) Edge {
	if next == types.StatusDown && previous != types.StatusDown {
		return EdgeWentDown
	}

	if next == types.StatusUp && previous == types.StatusDown {
		return EdgeRecovered
	}

	return EdgeNone
}

// ShouldAdvanceStatus reports whether a concluded check may move the
// monitor's status and incident state. A stopped monitor keeps its
// paused status even when checked out of band, at either scope: monitor
// stop flips the monitoring flag, site stop leaves the flag and pauses
// the status.
func ShouldAdvanceStatus(monitoring bool, status string) bool {
	return monitoring && status != types.StatusPaused
}

// totalAttempts converts the configured retry count into the number of
// probe attempts a check cycle makes before concluding down.
func totalAttempts(retryAttempts int) int {
	if retryAttempts < 0 {
		retryAttempts = 0
	}

	return retryAttempts + 1
}
