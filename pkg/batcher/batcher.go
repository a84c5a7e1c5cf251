// Package batcher provides a generic buffered batch writer with rate limiting.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultFlushSize         = 100
	defaultFlushInterval     = 5 * time.Second
	defaultRequestsPerSecond = 10
)

// FlushFunc writes one accumulated batch to its destination.
type FlushFunc[T any] func(ctx context.Context, items []T) error

// Config tunes buffering behaviour. Zero values fall back to defaults.
type Config struct {
	// FlushSize is the buffer size that triggers an immediate flush.
	FlushSize int
	// FlushInterval flushes whatever accumulated, full buffer or not.
	FlushInterval time.Duration
	// RequestsPerSecond caps how often flushes hit the destination.
	RequestsPerSecond int
}

func (c *Config) applyDefaults() {
	if c.FlushSize <= 0 {
		c.FlushSize = defaultFlushSize
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = defaultFlushInterval
	}
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = defaultRequestsPerSecond
	}
}

// Batcher buffers items and flushes them by size or by interval,
// whichever comes first. Items still queued at Stop are flushed
// before the background loop exits.
type Batcher[T any] struct {
	flush         FlushFunc[T]
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg   sync.WaitGroup
	stop chan struct{}
}

// New constructs a Batcher. The flush callback is required.
func New[T any](logger *zap.Logger, cfg Config, flush FlushFunc[T]) (*Batcher[T], error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if flush == nil {
		return nil, errors.New("flush callback is required")
	}
	cfg.applyDefaults()

	return &Batcher[T]{
		logger:        logger,
		flush:         flush,
		itemsCh:       make(chan T, cfg.FlushSize*2),
		flushSize:     cfg.FlushSize,
		flushInterval: cfg.FlushInterval,
		rl:            ratelimit.New(cfg.RequestsPerSecond),
		stop:          make(chan struct{}),
	}, nil
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop shuts the loop down and waits for the final flush.
func (b *Batcher[T]) Stop() {
	close(b.stop)
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	doFlush := func() {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.flushSize {
					doFlush()
				}
			default:
				doFlush()
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				doFlush()
			}

		case <-ticker.C:
			doFlush()
		}
	}
}
