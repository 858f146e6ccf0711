package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// DefaultMaxLogMessages bounds the status bar history.
const DefaultMaxLogMessages = 100

// LogManager keeps a bounded history of status messages and lets the user
// scroll back through them from the status bar.
type LogManager struct {
	label    *widget.Label
	messages []string
	current  int
	max      int
}

// NewLogManager creates a log manager with the given history bound.
func NewLogManager(maxMessages int) *LogManager {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxLogMessages
	}
	label := widget.NewLabel("Ready")
	label.Truncation = fyne.TextTruncateEllipsis
	return &LogManager{
		label:   label,
		current: -1,
		max:     maxMessages,
	}
}

// Label returns the widget rendering the current message.
func (lm *LogManager) Label() *widget.Label { return lm.label }

// AddMessage appends a timestamped message and jumps the view to it.
// Must be called on the UI thread.
func (lm *LogManager) AddMessage(message string) {
	stamped := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), message)
	lm.messages = append(lm.messages, stamped)
	if len(lm.messages) > lm.max {
		lm.messages = lm.messages[len(lm.messages)-lm.max:]
	}
	lm.current = len(lm.messages) - 1
	lm.label.SetText(stamped)
}

// NavigateUp shows the previous (older) message.
func (lm *LogManager) NavigateUp() {
	if lm.current > 0 {
		lm.current--
		lm.label.SetText(lm.messages[lm.current])
	}
}

// NavigateDown shows the next (newer) message.
func (lm *LogManager) NavigateDown() {
	if lm.current >= 0 && lm.current < len(lm.messages)-1 {
		lm.current++
		lm.label.SetText(lm.messages[lm.current])
	}
}

// Count returns the number of retained messages.
func (lm *LogManager) Count() int { return len(lm.messages) }
