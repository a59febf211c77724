package alerting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/transfer-auction/internal/domain/alert"
	"github.com/riskibarqy/transfer-auction/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/transfer-auction/internal/platform/logging"
)

func TestAsyncRecorderRecords(t *testing.T) {
	store := memory.NewAlertRepository()
	recorder, err := NewAsyncRecorder(store, 2, logging.NewNop())
	require.NoError(t, err)
	defer recorder.Release()

	err = recorder.Record(context.Background(), alert.Alert{
		TeamID:   1,
		TeamName: "Alpha FC",
		Module:   alert.ModuleAuctionBid,
		Message:  "bid team mismatch",
		Payload:  map[string]any{"player_id": int64(7)},
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(store.Recorded()) == 1
	}, time.Second, 10*time.Millisecond)

	recorded := store.Recorded()[0]
	assert.Equal(t, "Alpha FC", recorded.TeamName)
	assert.Equal(t, alert.ModuleAuctionBid, recorded.Module)
}

func TestAsyncRecorderFallsBackWhenPoolFull(t *testing.T) {
	store := memory.NewAlertRepository()
	recorder, err := NewAsyncRecorder(store, 1, logging.NewNop())
	require.NoError(t, err)
	defer recorder.Release()

	// Occupy the single worker so the next submit is rejected.
	release := make(chan struct{})
	submitted := make(chan struct{})
	err = recorder.pool.Submit(func() {
		close(submitted)
		<-release
	})
	require.NoError(t, err)
	<-submitted
	defer close(release)

	err = recorder.Record(context.Background(), alert.Alert{
		TeamName: "Beta United",
		Module:   alert.ModuleAuctionBid,
		Message:  "bid team mismatch",
	})
	require.NoError(t, err)
	assert.Len(t, store.Recorded(), 1)
}
