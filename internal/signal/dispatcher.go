// Package signal delivers quiz indicator signals to the physical LED board.
// Every sink is fire-and-forget: Notify never blocks, failures are logged and dropped.
package signal

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"organelle-quiz/internal/domain"
)

const (
	defaultQueueSize = 32
	defaultTimeout   = 2 * time.Second
)

type deliverFunc func(ctx context.Context, signal domain.Signal) error

// dispatcher hands signals to a single delivery goroutine so the board sees them in order.
// When the queue is full the oldest pending signal is dropped.
type dispatcher struct {
	deliver deliverFunc
	timeout time.Duration
	logger  *zap.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan domain.Signal
	done   chan struct{}
}

func newDispatcher(deliver deliverFunc, timeout time.Duration, logger *zap.Logger) *dispatcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &dispatcher{
		deliver: deliver,
		timeout: timeout,
		logger:  logger,
		queue:   make(chan domain.Signal, defaultQueueSize),
		done:    make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *dispatcher) Notify(signal domain.Signal) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}
	select {
	case d.queue <- signal:
		return
	default:
	}
	// The newest signal reflects the board's intended state (a reset must not be
	// lost behind stale feedback), so the oldest queued one gives way.
	select {
	case stale := <-d.queue:
		d.logger.Warn("signal queue full, dropping oldest", zap.String("signal", string(stale)))
	default:
	}
	select {
	case d.queue <- signal:
	default:
		d.logger.Warn("signal queue full, dropping", zap.String("signal", string(signal)))
	}
}

func (d *dispatcher) run() {
	defer close(d.done)
	for signal := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.deliver(ctx, signal); err != nil {
			d.logger.Debug("signal delivery failed", zap.String("signal", string(signal)), zap.Error(err))
		}
		cancel()
	}
}

// Close stops accepting signals and waits for queued ones to be attempted.
func (d *dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()
	<-d.done
}
