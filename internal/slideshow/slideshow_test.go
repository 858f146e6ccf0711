package slideshow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewManagerDefaults(t *testing.T) {
	m := NewManager(0)
	assert.True(t, m.IsPaused(), "slideshow starts paused")
	assert.Equal(t, defaultInterval, m.Interval())

	m = NewManager(5 * time.Second)
	assert.Equal(t, 5*time.Second, m.Interval())
}

func TestTogglePlayPause(t *testing.T) {
	m := NewManager(time.Second)
	m.TogglePlayPause()
	assert.False(t, m.IsPaused())
	m.TogglePlayPause()
	assert.True(t, m.IsPaused())
}

func TestOperationPauseRestoresPlayingState(t *testing.T) {
	m := NewManager(time.Second)
	m.TogglePlayPause() // playing

	m.Pause(true)
	assert.True(t, m.IsPaused())
	m.ResumeAfterOperation()
	assert.False(t, m.IsPaused(), "was playing before the operation")

	m.TogglePlayPause() // paused
	m.Pause(true)
	m.ResumeAfterOperation()
	assert.True(t, m.IsPaused(), "was already paused before the operation")
}

func TestPlainPauseDoesNotResume(t *testing.T) {
	m := NewManager(time.Second)
	m.TogglePlayPause() // playing
	m.Pause(false)
	m.ResumeAfterOperation()
	assert.True(t, m.IsPaused())
}
