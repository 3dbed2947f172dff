package utils

import (
	"sync"
	"time"
)

// Debounce wraps fn so that a burst of calls within the wait window
// collapses into a single trailing invocation carrying the most recent
// call's arguments. The scheduler uses this to coalesce websocket
// refresh broadcasts when many monitors report at once.
//
// A generation counter guards the window edge: a timer that already
// fired when a new call arrives sees a newer generation and yields to
// the replacement timer, so each burst still runs fn exactly once.
func Debounce[T any](fn func(T), wait time.Duration) func(T) {
	var mu sync.Mutex
	var timer *time.Timer
	var lastArg T
	var gen uint64

	return func(arg T) {
		mu.Lock()
		defer mu.Unlock()

		lastArg = arg
		gen++
		scheduled := gen

		if timer != nil {
			timer.Stop()
		}

		timer = time.AfterFunc(wait, func() {
			mu.Lock()

			if gen != scheduled {
				mu.Unlock()
				return
			}

			arg := lastArg
			mu.Unlock()

			fn(arg)
		})
	}
}
