package update

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillon/companyscope/internal/eventbus"
	"github.com/quillon/companyscope/internal/models"
)

// HandleUpdate routes Bubble Tea messages to the appropriate handler.
// Messages not claimed by a handler fall through to the text input so
// cursor blinking and paste keep working.
func HandleUpdate(appModel *models.AppModel, msg tea.Msg, eb *eventbus.EventBus, serviceReady bool) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(appModel, msg, eb, serviceReady)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil
	case TickMsg:
		return HandleTickMsg(appModel)
	case spinner.TickMsg:
		var cmd tea.Cmd
		appModel.Spinner, cmd = appModel.Spinner.Update(msg)
		return cmd
	case CoreEventMsg:
		return HandleCoreEvent(appModel, msg)
	}

	var cmd tea.Cmd
	appModel.Input, cmd = appModel.Input.Update(msg)
	return cmd
}
