// Package notification decouples notification hand-off from state changes.
// Producers enqueue without blocking; a small worker pool writes to the sink.
// Delivery failures are logged and never reach the producer.
package notification

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

type sink interface {
	Insert(ctx context.Context, n domain.Notification) (bool, error)
}

// deliveryTimeout bounds a single sink write.
const deliveryTimeout = 5 * time.Second

// Config sizes the dispatcher.
type Config struct {
	QueueSize int
	Workers   int
}

// Dispatcher is a bounded in-process queue in front of the notification sink.
type Dispatcher struct {
	sink    sink
	queue   chan domain.Notification
	workers int
	log     *slog.Logger

	mu      sync.RWMutex
	closed  bool
	started bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher. Non-positive sizes fall back to one.
func NewDispatcher(log *slog.Logger, sink sink, cfg Config) *Dispatcher {
	return &Dispatcher{
		sink:    sink,
		queue:   make(chan domain.Notification, max(cfg.QueueSize, 1)),
		workers: max(cfg.Workers, 1),
		log:     log.With("service", "notification"),
	}
}

// Enqueue hands n to the workers and reports whether it was accepted.
// It never blocks: a full or stopped queue drops the notification.
func (d *Dispatcher) Enqueue(ctx context.Context, n domain.Notification) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.WarnContext(ctx, "notification dropped: dispatcher stopped",
			slog.String("event", n.Event.String()),
			slog.String("dedupe_key", n.DedupeKey),
		)
		return false
	}

	select {
	case d.queue <- n:
		return true
	default:
		d.log.WarnContext(ctx, "notification dropped: queue full",
			slog.String("event", n.Event.String()),
			slog.String("dedupe_key", n.DedupeKey),
			slog.Int("queue_size", cap(d.queue)),
		)
		return false
	}
}

// Start launches the workers. Deliveries outlive cancellation of ctx so that
// Stop can drain the queue; use Stop to shut down.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true

	base := context.WithoutCancel(ctx)
	for i := range d.workers {
		d.wg.Add(1)
		go d.run(base, i)
	}
	d.log.InfoContext(ctx, "notification dispatcher started", slog.Int("workers", d.workers))
}

// Stop closes the queue and waits until every accepted notification has been
// handed to the sink. Safe to call more than once.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		// Nobody will read the queue; deliver what was accepted inline.
		for n := range d.queue {
			d.deliver(context.Background(), n)
		}
		return
	}
	d.wg.Wait()
}

func (d *Dispatcher) run(ctx context.Context, worker int) {
	defer d.wg.Done()
	for n := range d.queue {
		d.deliver(ctx, n)
	}
	d.log.DebugContext(ctx, "notification worker stopped", slog.Int("worker", worker))
}

// deliver writes one notification. Panics in the sink are recovered so a
// single bad payload cannot kill a worker.
func (d *Dispatcher) deliver(ctx context.Context, n domain.Notification) {
	defer func() {
		if r := recover(); r != nil {
			d.log.ErrorContext(ctx, "panic delivering notification",
				slog.Any("panic", r),
				slog.String("event", n.Event.String()),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	inserted, err := d.sink.Insert(ctx, n)
	if err != nil {
		d.log.ErrorContext(ctx, "deliver notification",
			slog.String("event", n.Event.String()),
			slog.String("dedupe_key", n.DedupeKey),
			slog.String("error", err.Error()),
		)
		return
	}
	if !inserted {
		d.log.DebugContext(ctx, "notification already queued", slog.String("dedupe_key", n.DedupeKey))
	}
}
