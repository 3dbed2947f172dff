package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebounceCollapsesBurst(t *testing.T) {
	var mu sync.Mutex
	var calls []string

	debounced := Debounce(func(arg string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, arg)
	}, 20*time.Millisecond)

	debounced("first")
	debounced("second")
	debounced("third")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, calls, 1)
	assert.Equal(t, "third", calls[0])
}

func TestDebounceFiresAgainAfterQuiet(t *testing.T) {
	var mu sync.Mutex
	var calls []int

	debounced := Debounce(func(arg int) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, arg)
	}, 10*time.Millisecond)

	debounced(1)
	time.Sleep(50 * time.Millisecond)

	debounced(2)
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2}, calls)
}

func TestDebounceWindowEdgeFiresOncePerBurst(t *testing.T) {
	var mu sync.Mutex
	var calls []int

	debounced := Debounce(func(arg int) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, arg)
	}, time.Millisecond)

	// Calls paced right around the window edge race the timer firing
	// against its replacement. Each value may be delivered at most once.
	for i := 0; i < 200; i++ {
		debounced(i)
		time.Sleep(time.Millisecond)
	}

	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()

	require.NotEmpty(t, calls)
	assert.Equal(t, 199, calls[len(calls)-1])

	for i := 1; i < len(calls); i++ {
		assert.Greater(t, calls[i], calls[i-1], "value delivered twice")
	}
}

func TestDebounceNoCallNoFire(t *testing.T) {
	fired := false

	Debounce(func(struct{}) { fired = true }, 5*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	assert.False(t, fired)
}
