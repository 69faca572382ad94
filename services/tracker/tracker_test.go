package tracker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerService(t *testing.T) {
	t.Run("starts running by default", func(t *testing.T) {
		service := NewTrackerService()
		assert.True(t, service.IsRunning())
	})

	t.Run("toggle flips the state and returns it", func(t *testing.T) {
		service := NewTrackerService()

		assert.False(t, service.Toggle())
		assert.False(t, service.IsRunning())

		assert.True(t, service.Toggle())
		assert.True(t, service.IsRunning())
	})

	t.Run("an even number of concurrent toggles lands back on running", func(t *testing.T) {
		service := NewTrackerService()

		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				service.Toggle()
			}()
		}
		wg.Wait()

		assert.True(t, service.IsRunning())
	})
}
