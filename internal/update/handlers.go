package update

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillon/companyscope/internal/eventbus"
	"github.com/quillon/companyscope/internal/models"
)

// HandleKeyMsg handles keyboard input. While a request is outstanding the
// input field and submission are inert; only quitting works.
func HandleKeyMsg(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus, serviceReady bool) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return tea.Quit
	case "enter":
		return handleSubmitKey(appModel, eb, serviceReady)
	}

	if appModel.Loading {
		return nil
	}

	var cmd tea.Cmd
	appModel.Input, cmd = appModel.Input.Update(keyMsg)
	return cmd
}

// handleSubmitKey emits a submit event when the input is non-blank and no
// request is outstanding. Anything else is a no-op, mirroring a disabled
// submit button.
func handleSubmitKey(appModel *models.AppModel, eb *eventbus.EventBus, serviceReady bool) tea.Cmd {
	if !appModel.CanSubmit() {
		return nil
	}

	companyName := strings.TrimSpace(appModel.Input.Value())

	if !serviceReady {
		appModel.Status = "No backend endpoint configured - run: companyscope profile edit"
		return nil
	}

	if err := eb.SendToCore(eventbus.SubmitResearchEvent{CompanyName: companyName}); err != nil {
		appModel.Status = "Error submitting request: " + err.Error()
		return nil
	}

	return nil
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent mirrors core state snapshots into the UI model.
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		wasLoading := appModel.Loading

		appModel.Report = event.Report
		appModel.ErrMsg = event.ErrMsg
		appModel.Loading = event.IsLoading
		appModel.StartedAt = event.StartedAt
		appModel.MeanDuration = event.MeanDuration

		switch {
		case event.IsLoading:
			appModel.Elapsed = 0
			appModel.Status = "Researching " + appModel.Input.Value()
		case event.ErrMsg != "":
			appModel.Status = "Request failed"
		case event.Report != "":
			appModel.Status = "Report ready"
		default:
			appModel.Status = "Ready"
		}

		// Restart the spinner when a request begins.
		if event.IsLoading && !wasLoading {
			return appModel.Spinner.Tick
		}
	case eventbus.BackendStatusEvent:
		if event.Reachable {
			appModel.Status = "Backend online"
		} else {
			appModel.Status = "Backend unreachable: " + event.Detail
		}
	}

	return nil
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
	appModel.Input.Width = sizeMsg.Width - 8
}

// HandleTickMsg refreshes the elapsed-time readout while loading.
func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	if appModel.Loading && !appModel.StartedAt.IsZero() {
		appModel.Elapsed = time.Since(appModel.StartedAt)
		appModel.Status = fmt.Sprintf("Researching %s (%ds)", appModel.Input.Value(), int(appModel.Elapsed.Seconds()))
	}
	return TickCmd()
}
