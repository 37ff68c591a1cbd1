package presence

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Transitions(t *testing.T) {
	r := NewRegistry()

	t.Run("first connection comes online", func(t *testing.T) {
		assert.False(t, r.Online("alice"))
		assert.True(t, r.Register("alice", "conn-1"))
		assert.True(t, r.Online("alice"))
	})

	t.Run("second device is silent", func(t *testing.T) {
		assert.False(t, r.Register("alice", "conn-2"))
	})

	t.Run("dropping one of two stays online", func(t *testing.T) {
		assert.False(t, r.Unregister("alice", "conn-1"))
		assert.True(t, r.Online("alice"))
	})

	t.Run("last connection goes offline", func(t *testing.T) {
		assert.True(t, r.Unregister("alice", "conn-2"))
		assert.False(t, r.Online("alice"))
	})

	t.Run("unknown connection is a no-op", func(t *testing.T) {
		assert.False(t, r.Unregister("alice", "conn-404"))
		assert.False(t, r.Unregister("nobody", "conn-1"))
	})
}

func TestRegistry_Connections(t *testing.T) {
	r := NewRegistry()
	r.Register("alice", "conn-1")
	r.Register("alice", "conn-2")

	assert.ElementsMatch(t, []string{"conn-1", "conn-2"}, r.Connections("alice"))
	assert.Empty(t, r.Connections("bob"))
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conn := fmt.Sprintf("conn-%d", i)
			r.Register("alice", conn)
			r.Unregister("alice", conn)
		}(i)
	}
	wg.Wait()

	assert.False(t, r.Online("alice"))
}
