package errstore

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalError(t *testing.T) {
	s := New()

	_, ok := s.LastError()
	assert.False(t, ok)

	s.SetError("boom")
	msg, ok := s.LastError()
	require.True(t, ok)
	assert.Equal(t, "boom", msg)

	s.ClearError()
	msg, ok = s.LastError()
	assert.False(t, ok)
	assert.Empty(t, msg)
}

func TestStoreErrorsAreIndependent(t *testing.T) {
	s := New()

	s.SetStoreError("sites", "db down")
	s.SetStoreError("notifications", "webhook 500")

	s.ClearStoreError("sites")

	_, ok := s.GetStoreError("sites")
	assert.False(t, ok)

	msg, ok := s.GetStoreError("notifications")
	require.True(t, ok)
	assert.Equal(t, "webhook 500", msg)
}

func TestClearAllErrorsLeavesLoadingAlone(t *testing.T) {
	s := New()

	s.SetError("boom")
	s.SetStoreError("sites", "db down")
	s.SetLoading(true)
	s.SetOperationLoading("check-now:abc", true)

	s.ClearAllErrors()

	_, ok := s.LastError()
	assert.False(t, ok)
	_, ok = s.GetStoreError("sites")
	assert.False(t, ok)

	assert.True(t, s.IsLoading())
	assert.True(t, s.GetOperationLoading("check-now:abc"))
}

func TestOperationLoading(t *testing.T) {
	s := New()

	assert.False(t, s.GetOperationLoading("check-now:abc"))

	s.SetOperationLoading("check-now:abc", true)
	s.SetOperationLoading("check-now:def", true)
	assert.True(t, s.GetOperationLoading("check-now:abc"))

	s.SetOperationLoading("check-now:abc", false)
	assert.False(t, s.GetOperationLoading("check-now:abc"))
	assert.True(t, s.GetOperationLoading("check-now:def"))
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New()

	s.SetError("boom")
	s.SetStoreError("sites", "db down")
	s.SetOperationLoading("check-now:abc", true)

	snap := s.Snapshot()

	assert.Equal(t, "boom", snap.LastError)
	assert.Equal(t, map[string]string{"sites": "db down"}, snap.StoreErrors)
	assert.Equal(t, map[string]bool{"check-now:abc": true}, snap.OperationLoading)

	// The snapshot must not alias the live maps.
	snap.StoreErrors["sites"] = "mangled"
	msg, _ := s.GetStoreError("sites")
	assert.Equal(t, "db down", msg)
}

func TestConcurrentAccess(t *testing.T) {
	s := New()

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			s.SetStoreError("sites", "db down")
			s.SetOperationLoading("op", true)
		}()

		go func() {
			defer wg.Done()
			s.Snapshot()
			s.ClearAllErrors()
		}()
	}

	wg.Wait()
}
