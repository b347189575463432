package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/livy-client-kit/internal/testutil"
	"github.com/cecil-the-coder/livy-client-kit/pkg/types"
)

// TestRegistryOrder tests that Snapshot preserves registration order
func TestRegistryOrder(t *testing.T) {
	r := New()
	f1 := &testutil.RecordingFactory{FactoryName: "first"}
	f2 := &testutil.RecordingFactory{FactoryName: "second"}
	f3 := &testutil.RecordingFactory{FactoryName: "third"}
	r.Register(f1)
	r.Register(f2)
	r.Register(f3)

	snap := r.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "first", snap[0].Name())
	assert.Equal(t, "second", snap[1].Name())
	assert.Equal(t, "third", snap[2].Name())
}

// TestRegistryEmptySnapshot tests that an empty registry is valid
func TestRegistryEmptySnapshot(t *testing.T) {
	r := New()
	assert.Empty(t, r.Snapshot())
	assert.True(t, r.Frozen())
	assert.Equal(t, 0, r.Len())
}

// TestRegistrySnapshotIsCopy tests that callers cannot perturb each other
func TestRegistrySnapshotIsCopy(t *testing.T) {
	r := New()
	r.Register(&testutil.RecordingFactory{FactoryName: "only"})

	first := r.Snapshot()
	first[0] = nil

	second := r.Snapshot()
	require.Len(t, second, 1)
	assert.Equal(t, "only", second[0].Name())
}

// TestRegistryRegisterAfterFreezePanics tests the populate-once contract
func TestRegistryRegisterAfterFreezePanics(t *testing.T) {
	r := New()
	r.Register(&testutil.RecordingFactory{FactoryName: "early"})
	_ = r.Snapshot()

	assert.Panics(t, func() {
		r.Register(&testutil.RecordingFactory{FactoryName: "late"})
	})
}

// TestRegistryRegisterNilPanics tests nil factory rejection
func TestRegistryRegisterNilPanics(t *testing.T) {
	r := New()
	assert.Panics(t, func() { r.Register(nil) })
}

// TestRegistryFrozen tests the freeze state transition
func TestRegistryFrozen(t *testing.T) {
	r := New()
	assert.False(t, r.Frozen())
	_ = r.Snapshot()
	assert.True(t, r.Frozen())
}

// TestRegistryConcurrentSnapshot tests that concurrent first-time callers
// all observe the same frozen list
func TestRegistryConcurrentSnapshot(t *testing.T) {
	r := New()
	r.Register(&testutil.RecordingFactory{FactoryName: "a"})
	r.Register(&testutil.RecordingFactory{FactoryName: "b"})

	var wg sync.WaitGroup
	snaps := make([][]types.ClientFactory, 16)
	for i := range snaps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snaps[i] = r.Snapshot()
		}(i)
	}
	wg.Wait()

	for _, snap := range snaps {
		require.Len(t, snap, 2)
		assert.Equal(t, "a", snap[0].Name())
		assert.Equal(t, "b", snap[1].Name())
	}
}

// TestDefaultRegistry tests the package-level registration path
func TestDefaultRegistry(t *testing.T) {
	// The default registry is process-wide state shared with other tests,
	// so only observe it without freezing or mutating it here.
	require.NotNil(t, Default())
	assert.Same(t, Default(), defaultRegistry)
}
