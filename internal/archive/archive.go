package archive

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/stackswatch7000-backend/internal/model"
	"github.com/goodnatureofminers/stackswatch7000-backend/pkg/batcher"
)

type (
	// Inserter writes batches of balance logs to the analytics store.
	Inserter interface {
		InsertBalanceLogs(ctx context.Context, logs []model.BalanceLog) error
	}

	// Metrics records outcomes of archive flushes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveFlushSize(rows int)
	}
)

// Config tunes archive buffering.
type Config struct {
	FlushSize         int
	FlushInterval     time.Duration
	RequestsPerSecond int
}

// Archive buffers balance logs and flushes them to the analytics store
// in the background. Writes are best effort: a failed flush is logged
// and dropped, it never affects the system of record.
type Archive struct {
	batch  *batcher.Batcher[model.BalanceLog]
	logger *zap.Logger
}

// New constructs an Archive on top of an Inserter.
func New(logger *zap.Logger, inserter Inserter, metrics Metrics, cfg Config) (*Archive, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if inserter == nil {
		return nil, errors.New("inserter is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}

	flush := func(ctx context.Context, logs []model.BalanceLog) error {
		started := time.Now()
		err := inserter.InsertBalanceLogs(ctx, logs)
		metrics.Observe("insert_balance_logs", err, started)
		if err == nil {
			metrics.ObserveFlushSize(len(logs))
		}
		return err
	}

	b, err := batcher.New(logger, batcher.Config{
		FlushSize:         cfg.FlushSize,
		FlushInterval:     cfg.FlushInterval,
		RequestsPerSecond: cfg.RequestsPerSecond,
	}, flush)
	if err != nil {
		return nil, err
	}

	return &Archive{batch: b, logger: logger}, nil
}

// Start begins the background flushing loop.
func (a *Archive) Start(ctx context.Context) {
	a.batch.Start(ctx)
}

// Stop flushes anything still buffered and shuts the loop down.
func (a *Archive) Stop() {
	a.batch.Stop()
}

// Add queues a balance log for archiving.
func (a *Archive) Add(ctx context.Context, log model.BalanceLog) error {
	return a.batch.Add(ctx, log)
}
