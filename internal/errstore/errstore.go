// Package errstore centralizes the process-wide last error, per-subsystem
// named errors, and named operation loading flags. Handlers expose a
// snapshot of it so clients can observe failures passively; the services
// that record errors still return them to their callers.
package errstore

import "sync"

type Store struct {
	mu               sync.RWMutex
	lastError        string
	hasError         bool
	loading          bool
	storeErrors      map[string]string
	operationLoading map[string]bool
}

func New() *Store {
	return &Store{
		storeErrors:      make(map[string]string),
		operationLoading: make(map[string]bool),
	}
}

// SetError records the global last error. Only the global slot is touched.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastError = msg
	s.hasError = true
}

// ClearError clears only the global error slot.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastError = ""
	s.hasError = false
}

// LastError returns the global error and whether one is set.
func (s *Store) LastError() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastError, s.hasError
}

// SetStoreError records an error for a named subsystem, leaving every
// other slot untouched.
func (s *Store) SetStoreError(name, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.storeErrors[name] = msg
}

// GetStoreError returns the error for a named subsystem, if any.
func (s *Store) GetStoreError(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.storeErrors[name]
	return msg, ok
}

// ClearStoreError clears only the named subsystem's slot.
func (s *Store) ClearStoreError(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.storeErrors, name)
}

// ClearAllErrors resets the global error and every named error. Loading
// flags are deliberately left alone.
func (s *Store) ClearAllErrors() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastError = ""
	s.hasError = false
	s.storeErrors = make(map[string]string)
}

// SetLoading sets the global loading flag.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = loading
}

// IsLoading reports the global loading flag.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// SetOperationLoading flags a named operation as in flight. Each name is
// independent of every other.
func (s *Store) SetOperationLoading(name string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if loading {
		s.operationLoading[name] = true
		return
	}

	delete(s.operationLoading, name)
}

// GetOperationLoading reports whether a named operation is in flight.
func (s *Store) GetOperationLoading(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.operationLoading[name]
}

// Snapshot is a point-in-time copy of the store, shaped for the API.
type Snapshot struct {
	LastError        string            `json:"last_error,omitempty"`
	Loading          bool              `json:"loading"`
	StoreErrors      map[string]string `json:"store_errors"`
	OperationLoading map[string]bool   `json:"operation_loading"`
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		LastError:        s.lastError,
		Loading:          s.loading,
		StoreErrors:      make(map[string]string, len(s.storeErrors)),
		OperationLoading: make(map[string]bool, len(s.operationLoading)),
	}

	for k, v := range s.storeErrors {
		snap.StoreErrors[k] = v
	}

	for k, v := range s.operationLoading {
		snap.OperationLoading[k] = v
	}

	return snap
}

// Default is the process-wide store used by the scheduler, the webhook
// notifier, and the system handlers.
var Default = New()
