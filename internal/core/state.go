package core

import (
	"sync"
	"time"
)

// Snapshot is a consistent view of the request state for the UI.
type Snapshot struct {
	Report       string
	Err          error
	IsLoading    bool
	StartedAt    time.Time
	MeanDuration time.Duration
}

// ResearchState holds the canonical request state: the report and error of
// the last completed submission, the loading flag guarding the single
// outstanding request, and running duration statistics.
//
// Invariants: report and error are never both set; isLoading is true only
// between BeginRequest and one of the Finish calls.
type ResearchState struct {
	mu        sync.RWMutex
	report    string
	lastError error
	isLoading bool
	startedAt time.Time

	// Weighted mean over completed requests, success or failure alike.
	requestCount int
	meanDuration time.Duration
}

func NewResearchState() *ResearchState {
	return &ResearchState{}
}

// BeginRequest marks a request as outstanding and clears the previous
// report and error. It returns false, changing nothing, if a request is
// already in flight - this is the concurrency guard.
func (rs *ResearchState) BeginRequest() bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if rs.isLoading {
		return false
	}

	rs.isLoading = true
	rs.startedAt = time.Now()
	rs.report = ""
	rs.lastError = nil
	return true
}

// FinishWithReport completes the outstanding request successfully.
func (rs *ResearchState) FinishWithReport(report string, took time.Duration) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.isLoading = false
	rs.report = report
	rs.lastError = nil
	rs.recordDuration(took)
}

// FinishWithError completes the outstanding request with a failure.
func (rs *ResearchState) FinishWithError(err error, took time.Duration) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.isLoading = false
	rs.report = ""
	rs.lastError = err
	rs.recordDuration(took)
}

// recordDuration folds a completed request into the weighted mean.
// Callers must hold mu.
func (rs *ResearchState) recordDuration(took time.Duration) {
	total := rs.meanDuration*time.Duration(rs.requestCount) + took
	rs.requestCount++
	rs.meanDuration = total / time.Duration(rs.requestCount)
}

func (rs *ResearchState) IsLoading() bool {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.isLoading
}

func (rs *ResearchState) RequestCount() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.requestCount
}

func (rs *ResearchState) Snapshot() Snapshot {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	return Snapshot{
		Report:       rs.report,
		Err:          rs.lastError,
		IsLoading:    rs.isLoading,
		StartedAt:    rs.startedAt,
		MeanDuration: rs.meanDuration,
	}
}
