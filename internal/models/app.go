package models

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// DisplayState is the single visible state of the result region. It is
// derived from the result fields on every render, never stored.
type DisplayState int

const (
	StateIdle DisplayState = iota
	StateLoading
	StateError
	StateSuccess
)

// AppModel represents the UI state - only local UI concerns.
// Report, ErrMsg and Loading mirror the latest core snapshot.
type AppModel struct {
	Input   textinput.Model // Company name field
	Spinner spinner.Model   // Shown while a request is outstanding

	Report  string // Markdown report from the last successful request
	ErrMsg  string // Error from the last failed request
	Status  string // Status bar text
	Loading bool   // Request outstanding; blocks input and resubmission

	StartedAt    time.Time     // When the outstanding request began
	Elapsed      time.Duration // Updated by the UI tick while loading
	MeanDuration time.Duration // Weighted mean of completed request durations

	Width  int // Terminal width
	Height int // Terminal height

	ServiceReady bool // Whether a backend endpoint is configured
}

// Display derives the result region state. Loading and error are checked
// before success; Report and ErrMsg are never both non-empty.
func (m AppModel) Display() DisplayState {
	switch {
	case m.Loading:
		return StateLoading
	case m.ErrMsg != "":
		return StateError
	case m.Report != "":
		return StateSuccess
	default:
		return StateIdle
	}
}

// CanSubmit reports whether pressing enter would start a request:
// non-blank input and no request outstanding.
func (m AppModel) CanSubmit() bool {
	return !m.Loading && strings.TrimSpace(m.Input.Value()) != ""
}
