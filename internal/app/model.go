package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillon/companyscope/internal/core"
	"github.com/quillon/companyscope/internal/dispatcher"
	"github.com/quillon/companyscope/internal/models"
	"github.com/quillon/companyscope/internal/update"
	"github.com/quillon/companyscope/ui/components"
	"github.com/quillon/companyscope/ui/styles"
)

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	ready      bool
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		update.TickCmd(),
		m.dispatcher.ListenForUIEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}

	cmd := update.HandleUpdate(&m.appModel, msg, m.dispatcher.GetEventBus(), m.ready)
	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle().Render("-- COMPANYSCOPE --"))
	b.WriteString("\n\n")
	b.WriteString(components.RenderResult(m.appModel))
	b.WriteString("\n\n")
	b.WriteString(components.RenderInput(m.appModel))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.appModel))

	return b.String()
}

func createInitialAppModel(service *core.ResearchService) models.AppModel {
	ti := textinput.New()
	ti.Placeholder = "Company name"
	ti.Prompt = "> "
	ti.CharLimit = 120
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	status := "Ready"
	if !service.IsReady() {
		status = "No backend endpoint configured"
	}

	return models.AppModel{
		Input:        ti,
		Spinner:      sp,
		Status:       status,
		ServiceReady: service.IsReady(),
	}
}
