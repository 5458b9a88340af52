package core

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/quillon/companyscope/internal/backend"
	"github.com/quillon/companyscope/internal/config"
	"github.com/quillon/companyscope/internal/eventbus"
)

const healthProbeTimeout = 5 * time.Second

// ResearchService owns the request lifecycle: it validates submissions,
// enforces the single-outstanding-request guard, performs the backend call
// and pushes state snapshots to the UI over the event bus.
type ResearchService struct {
	client   *backend.Client
	config   *config.Config
	state    *ResearchState
	eventBus *eventbus.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewResearchService creates a ResearchService regardless of config
// validity, so there is always a service to manage state. Without a valid
// endpoint every submission fails locally.
func NewResearchService(cfg *config.Config, eb *eventbus.EventBus) *ResearchService {
	var client *backend.Client
	if cfg.IsValid() {
		client = backend.NewClient(cfg.GetEndpoint(), cfg.GetAuthToken(), cfg.GetTimeout())
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &ResearchService{
		client:   client, // nil when no endpoint is configured
		config:   cfg,
		state:    NewResearchState(),
		eventBus: eb,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start runs the core logic in background goroutines.
func (rs *ResearchService) Start() {
	rs.pushStateToUI()
	go rs.eventLoop()
	go rs.probeBackend()
}

func (rs *ResearchService) Stop() {
	rs.cancel()
}

func (rs *ResearchService) IsReady() bool {
	return rs.config.IsValid()
}

func (rs *ResearchService) eventLoop() {
	for {
		select {
		case <-rs.ctx.Done():
			return
		case event, ok := <-rs.eventBus.UIToCore():
			if !ok {
				return
			}
			rs.handleUIEvent(event)
		}
	}
}

func (rs *ResearchService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SubmitResearchEvent:
		rs.handleSubmit(e.CompanyName)
	}
}

// handleSubmit starts a research request. Blank input and overlapping
// submissions are no-ops: state is left untouched and no call goes out.
func (rs *ResearchService) handleSubmit(companyName string) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return
	}

	if !rs.state.BeginRequest() {
		return
	}
	rs.pushStateToUI()

	if rs.client == nil {
		rs.state.FinishWithError(errors.New("no backend endpoint configured"), 0)
		rs.pushStateToUI()
		return
	}

	// The request runs off the event loop so the guard, not the loop,
	// serializes submissions.
	go rs.runResearch(companyName)
}

// runResearch performs the one network call and completes the request in
// every path, so the loading flag always returns to false exactly once.
func (rs *ResearchService) runResearch(companyName string) {
	start := time.Now()
	report, err := rs.client.Research(rs.ctx, companyName)
	took := time.Since(start)

	if err != nil {
		rs.state.FinishWithError(err, took)
	} else {
		rs.state.FinishWithReport(report, took)
	}
	rs.pushStateToUI()
}

// probeBackend checks the health endpoint once at startup.
func (rs *ResearchService) probeBackend() {
	if rs.client == nil {
		rs.sendToUI(eventbus.BackendStatusEvent{Reachable: false, Detail: "no backend endpoint configured"})
		return
	}

	ctx, cancel := context.WithTimeout(rs.ctx, healthProbeTimeout)
	defer cancel()

	status, err := rs.client.Health(ctx)
	if err != nil {
		rs.sendToUI(eventbus.BackendStatusEvent{Reachable: false, Detail: err.Error()})
		return
	}
	rs.sendToUI(eventbus.BackendStatusEvent{Reachable: true, Detail: status})
}

func (rs *ResearchService) pushStateToUI() {
	snap := rs.state.Snapshot()

	errMsg := ""
	if snap.Err != nil {
		errMsg = snap.Err.Error()
	}

	rs.sendToUI(eventbus.StateUpdateEvent{
		Report:       snap.Report,
		ErrMsg:       errMsg,
		IsLoading:    snap.IsLoading,
		StartedAt:    snap.StartedAt,
		MeanDuration: snap.MeanDuration,
	})
}

func (rs *ResearchService) sendToUI(event eventbus.CoreEvent) {
	if err := rs.eventBus.SendToUI(event); err != nil {
		log.Printf("failed to send event to UI: %v", err)
	}
}
