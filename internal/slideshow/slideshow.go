// Package slideshow manages the automatic cycling of the loupe view.
package slideshow

import (
	"sync"
	"time"
)

const defaultInterval = 2 * time.Second

// Manager tracks the play/pause state of the slideshow. The actual photo
// advancing happens in the photos workflow; this only answers "should we?".
type Manager struct {
	mu                 sync.Mutex
	isPaused           bool
	wasPlayingBeforeOp bool // Tracks if slideshow was playing before a temp pause
	interval           time.Duration
}

// NewManager creates a Manager. Interval is the time between transitions.
func NewManager(interval time.Duration) *Manager {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Manager{
		isPaused: true, // Start paused; the user opts in.
		interval: interval,
	}
}

// TogglePlayPause toggles the play/pause state.
func (m *Manager) TogglePlayPause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isPaused = !m.isPaused
	m.wasPlayingBeforeOp = false // User toggle overrides any operation-specific state
}

// Pause forces the slideshow to pause. If forOperation is true, it remembers
// whether the slideshow was playing so ResumeAfterOperation can restore it.
func (m *Manager) Pause(forOperation bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if forOperation {
		m.wasPlayingBeforeOp = !m.isPaused
	}
	m.isPaused = true
}

// ResumeAfterOperation resumes only if the slideshow was playing before
// Pause(true) was called.
func (m *Manager) ResumeAfterOperation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.wasPlayingBeforeOp {
		m.isPaused = false
	}
	m.wasPlayingBeforeOp = false
}

// IsPaused returns true if the slideshow is currently paused.
func (m *Manager) IsPaused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isPaused
}

// Interval returns the configured slideshow interval.
func (m *Manager) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}
