package tracker

import (
	"log"
	"sync"
)

// TrackerService holds the process-wide tracking toggle. The flag is
// volatile: a restart always comes back up running.
type TrackerService struct {
	mu      sync.Mutex
	running bool
}

func NewTrackerService() *TrackerService {
	return &TrackerService{running: true}
}

// IsRunning reports whether event tracking is currently enabled.
func (t *TrackerService) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Toggle flips the tracking flag and returns the new state.
func (t *TrackerService) Toggle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = !t.running

	state := "paused"
	if t.running {
		state = "running"
	}
	log.Printf("📋 Tracker set to %s", state)
	return t.running
}
