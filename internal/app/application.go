package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillon/companyscope/internal/config"
	"github.com/quillon/companyscope/internal/core"
	"github.com/quillon/companyscope/internal/dispatcher"
	"github.com/quillon/companyscope/internal/eventbus"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.ResearchService
	model      *AppModel
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)

	// Always created, even with an unconfigured endpoint; submissions then
	// fail locally with a clear message.
	service := core.NewResearchService(cfg, eb)

	model := &AppModel{
		appModel:   createInitialAppModel(service),
		dispatcher: disp,
		ready:      service.IsReady(),
	}

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model)
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
}
