package archive

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/stackswatch7000-backend/internal/model"
)

type stubInserter struct {
	mu   sync.Mutex
	rows []model.BalanceLog
	err  error
}

func (s *stubInserter) InsertBalanceLogs(_ context.Context, logs []model.BalanceLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, logs...)
	return nil
}

func (s *stubInserter) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

type stubMetrics struct {
	mu        sync.Mutex
	observed  int
	errored   int
	flushRows int
}

func (s *stubMetrics) Observe(_ string, err error, _ time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observed++
	if err != nil {
		s.errored++
	}
}

func (s *stubMetrics) ObserveFlushSize(rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushRows += rows
}

func testLog(accountID int64) model.BalanceLog {
	return model.BalanceLog{
		AccountID:         accountID,
		CalculatedBalance: decimal.RequireFromString("40"),
		ActualBalance:     decimal.RequireFromString("40.0005"),
		Discrepancy:       decimal.RequireFromString("0.0005"),
		CheckedAt:         time.Now().UTC(),
	}
}

func TestArchiveFlushesQueuedLogsOnStop(t *testing.T) {
	inserter := &stubInserter{}
	metrics := &stubMetrics{}

	a, err := New(zap.NewNop(), inserter, metrics, Config{FlushSize: 100, FlushInterval: time.Hour})
	require.NoError(t, err)

	ctx := context.Background()
	a.Start(ctx)
	for i := int64(1); i <= 5; i++ {
		require.NoError(t, a.Add(ctx, testLog(i)))
	}
	a.Stop()

	assert.Equal(t, 5, inserter.count())
	assert.Equal(t, 1, metrics.observed)
	assert.Equal(t, 5, metrics.flushRows)
}

func TestArchiveFlushesOnSize(t *testing.T) {
	inserter := &stubInserter{}
	metrics := &stubMetrics{}

	a, err := New(zap.NewNop(), inserter, metrics, Config{FlushSize: 2, FlushInterval: time.Hour, RequestsPerSecond: 1000})
	require.NoError(t, err)

	ctx := context.Background()
	a.Start(ctx)
	defer a.Stop()

	require.NoError(t, a.Add(ctx, testLog(1)))
	require.NoError(t, a.Add(ctx, testLog(2)))

	assert.Eventually(t, func() bool {
		return inserter.count() == 2
	}, time.Second, 10*time.Millisecond)
}

func TestArchiveFailedFlushIsObservedNotFatal(t *testing.T) {
	inserter := &stubInserter{err: errors.New("clickhouse down")}
	metrics := &stubMetrics{}

	a, err := New(zap.NewNop(), inserter, metrics, Config{FlushSize: 1, FlushInterval: time.Hour, RequestsPerSecond: 1000})
	require.NoError(t, err)

	ctx := context.Background()
	a.Start(ctx)
	require.NoError(t, a.Add(ctx, testLog(1)))
	a.Stop()

	assert.Equal(t, 0, inserter.count())
	metrics.mu.Lock()
	defer metrics.mu.Unlock()
	assert.GreaterOrEqual(t, metrics.errored, 1)
	assert.Zero(t, metrics.flushRows)
}

func TestArchiveValidatesDependencies(t *testing.T) {
	metrics := &stubMetrics{}

	_, err := New(nil, &stubInserter{}, metrics, Config{})
	assert.Error(t, err)

	_, err = New(zap.NewNop(), nil, metrics, Config{})
	assert.Error(t, err)

	_, err = New(zap.NewNop(), &stubInserter{}, nil, Config{})
	assert.Error(t, err)
}
