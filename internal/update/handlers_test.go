package update

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillon/companyscope/internal/eventbus"
	"github.com/quillon/companyscope/internal/models"
)

func newTestModel(value string) *models.AppModel {
	ti := textinput.New()
	ti.SetValue(value)
	ti.Focus()

	return &models.AppModel{
		Input:   ti,
		Spinner: spinner.New(),
	}
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

// drainSubmit returns the submit event sitting on the bus, if any.
func drainSubmit(eb *eventbus.EventBus) (eventbus.SubmitResearchEvent, bool) {
	select {
	case event := <-eb.UIToCore():
		s, ok := event.(eventbus.SubmitResearchEvent)
		return s, ok
	default:
		return eventbus.SubmitResearchEvent{}, false
	}
}

func TestEnter_SubmitsTrimmedQuery(t *testing.T) {
	eb := eventbus.NewEventBus()
	m := newTestModel("  Acme Corp  ")

	HandleKeyMsg(m, enterKey(), eb, true)

	event, ok := drainSubmit(eb)
	require.True(t, ok, "a submit event should be on the bus")
	assert.Equal(t, "Acme Corp", event.CompanyName)
}

func TestEnter_BlankInputIsNoOp(t *testing.T) {
	eb := eventbus.NewEventBus()

	for _, value := range []string{"", "   ", "\t"} {
		m := newTestModel(value)

		HandleKeyMsg(m, enterKey(), eb, true)

		_, ok := drainSubmit(eb)
		assert.False(t, ok, "blank input %q must not submit", value)
		assert.False(t, m.Loading)
		assert.Empty(t, m.Report)
		assert.Empty(t, m.ErrMsg)
	}
}

func TestEnter_RejectedWhileLoading(t *testing.T) {
	eb := eventbus.NewEventBus()
	m := newTestModel("Acme Corp")
	m.Loading = true

	HandleKeyMsg(m, enterKey(), eb, true)

	_, ok := drainSubmit(eb)
	assert.False(t, ok, "no submit while a request is outstanding")
}

func TestEnter_ServiceNotReady(t *testing.T) {
	eb := eventbus.NewEventBus()
	m := newTestModel("Acme Corp")

	HandleKeyMsg(m, enterKey(), eb, false)

	_, ok := drainSubmit(eb)
	assert.False(t, ok)
	assert.Contains(t, m.Status, "No backend endpoint configured")
}

func TestTyping_IgnoredWhileLoading(t *testing.T) {
	eb := eventbus.NewEventBus()
	m := newTestModel("Acme")
	m.Loading = true

	HandleKeyMsg(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, eb, true)

	assert.Equal(t, "Acme", m.Input.Value(), "input is inert while loading")
}

func TestTyping_AppendsWhenIdle(t *testing.T) {
	eb := eventbus.NewEventBus()
	m := newTestModel("Acme")

	HandleKeyMsg(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")}, eb, true)

	assert.Equal(t, "Acme!", m.Input.Value())
}

func TestCoreEvent_LoadingSnapshot(t *testing.T) {
	m := newTestModel("Acme Corp")

	cmd := HandleCoreEvent(m, CoreEventMsg{Event: eventbus.StateUpdateEvent{
		IsLoading: true,
		StartedAt: time.Now(),
	}})

	assert.True(t, m.Loading)
	assert.Empty(t, m.Report)
	assert.Empty(t, m.ErrMsg)
	assert.NotNil(t, cmd, "entering loading restarts the spinner")
}

func TestCoreEvent_SuccessSnapshot(t *testing.T) {
	m := newTestModel("Acme Corp")
	m.Loading = true

	HandleCoreEvent(m, CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Report: "# Hello",
	}})

	assert.False(t, m.Loading)
	assert.Equal(t, "# Hello", m.Report)
	assert.Empty(t, m.ErrMsg)
	assert.Equal(t, models.StateSuccess, m.Display())
}

func TestCoreEvent_ErrorSnapshot(t *testing.T) {
	m := newTestModel("Acme Corp")
	m.Loading = true
	m.Report = "# Stale"

	HandleCoreEvent(m, CoreEventMsg{Event: eventbus.StateUpdateEvent{
		ErrMsg: "Backend overloaded",
	}})

	assert.False(t, m.Loading)
	assert.Equal(t, "Backend overloaded", m.ErrMsg)
	assert.Empty(t, m.Report)
	assert.Equal(t, models.StateError, m.Display())
}

func TestCoreEvent_BackendStatus(t *testing.T) {
	m := newTestModel("")

	HandleCoreEvent(m, CoreEventMsg{Event: eventbus.BackendStatusEvent{Reachable: true, Detail: "API is running"}})
	assert.Equal(t, "Backend online", m.Status)

	HandleCoreEvent(m, CoreEventMsg{Event: eventbus.BackendStatusEvent{Reachable: false, Detail: "connection refused"}})
	assert.Contains(t, m.Status, "connection refused")
}

func TestTick_UpdatesElapsedWhileLoading(t *testing.T) {
	m := newTestModel("Acme Corp")
	m.Loading = true
	m.StartedAt = time.Now().Add(-3 * time.Second)

	cmd := HandleTickMsg(m)

	assert.NotNil(t, cmd, "tick reschedules itself")
	assert.GreaterOrEqual(t, m.Elapsed, 3*time.Second)
}
