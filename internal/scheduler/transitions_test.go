package scheduler

import (
	"testing"

	"github.com/sitewatch-dev/sitewatch/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestConcludeStatus(t *testing.T) {
	assert.Equal(t, types.StatusUp, ConcludeStatus(true))
	assert.Equal(t, types.StatusDown, ConcludeStatus(false))
}

func TestTransitionEdge(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		next     string
		want     Edge
	}{
		{"up to down opens an incident", types.StatusUp, types.StatusDown, EdgeWentDown},
		{"pending to down opens an incident", types.StatusPending, types.StatusDown, EdgeWentDown},
		{"paused to down opens an incident", types.StatusPaused, types.StatusDown, EdgeWentDown},
		{"down stays down", types.StatusDown, types.StatusDown, EdgeNone},
		{"down to up resolves", types.StatusDown, types.StatusUp, EdgeRecovered},
		{"up stays up", types.StatusUp, types.StatusUp, EdgeNone},
		{"pending to up is quiet", types.StatusPending, types.StatusUp, EdgeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TransitionEdge(tt.previous, tt.next))
		})
	}
}

func TestShouldAdvanceStatus(t *testing.T) {
	assert.True(t, ShouldAdvanceStatus(true, types.StatusPending))
	assert.True(t, ShouldAdvanceStatus(true, types.StatusUp))
	assert.True(t, ShouldAdvanceStatus(true, types.StatusDown))

	// Paused via site-wide stop: flag still on, status paused.
	assert.False(t, ShouldAdvanceStatus(true, types.StatusPaused))

	// Stopped at monitor scope: flag off.
	assert.False(t, ShouldAdvanceStatus(false, types.StatusPaused))
	assert.False(t, ShouldAdvanceStatus(false, types.StatusPending))
}

func TestTotalAttempts(t *testing.T) {
	assert.Equal(t, 1, totalAttempts(0))
	assert.Equal(t, 4, totalAttempts(3))
	assert.Equal(t, 1, totalAttempts(-2))
}
