package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginRequest_RejectsOverlap(t *testing.T) {
	state := NewResearchState()

	require.True(t, state.BeginRequest())
	assert.False(t, state.BeginRequest(), "second begin while loading must be rejected")

	state.FinishWithReport("# Report", time.Second)
	assert.True(t, state.BeginRequest(), "a new request is allowed once the first completed")
}

func TestBeginRequest_ClearsPreviousOutcome(t *testing.T) {
	state := NewResearchState()

	require.True(t, state.BeginRequest())
	state.FinishWithReport("# Old report", time.Second)

	require.True(t, state.BeginRequest())
	snap := state.Snapshot()
	assert.Empty(t, snap.Report)
	assert.NoError(t, snap.Err)
	assert.True(t, snap.IsLoading)
}

func TestReportAndErrorNeverBothSet(t *testing.T) {
	state := NewResearchState()

	require.True(t, state.BeginRequest())
	state.FinishWithReport("# Report", time.Second)

	require.True(t, state.BeginRequest())
	state.FinishWithError(errors.New("Backend overloaded"), time.Second)

	snap := state.Snapshot()
	assert.Empty(t, snap.Report, "a failed submission must not keep the old report")
	require.Error(t, snap.Err)
	assert.Equal(t, "Backend overloaded", snap.Err.Error())
	assert.False(t, snap.IsLoading)

	require.True(t, state.BeginRequest())
	state.FinishWithReport("# New report", time.Second)

	snap = state.Snapshot()
	assert.Equal(t, "# New report", snap.Report)
	assert.NoError(t, snap.Err, "a successful submission must clear the old error")
}

func TestLoadingClearedOnEveryOutcome(t *testing.T) {
	state := NewResearchState()

	require.True(t, state.BeginRequest())
	assert.True(t, state.IsLoading())
	state.FinishWithReport("ok", time.Second)
	assert.False(t, state.IsLoading())

	require.True(t, state.BeginRequest())
	state.FinishWithError(errors.New("boom"), time.Second)
	assert.False(t, state.IsLoading())
}

func TestMeanDuration(t *testing.T) {
	state := NewResearchState()

	require.True(t, state.BeginRequest())
	state.FinishWithReport("a", 2*time.Second)

	require.True(t, state.BeginRequest())
	state.FinishWithError(errors.New("boom"), 4*time.Second)

	snap := state.Snapshot()
	assert.Equal(t, 3*time.Second, snap.MeanDuration, "failures count toward the mean too")
	assert.Equal(t, 2, state.RequestCount())
}
