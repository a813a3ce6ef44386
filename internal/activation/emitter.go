package activation

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Sink consumes generation events.
type Sink interface {
	Name() string
	Deliver(context.Context, *Event) error
	Close(context.Context) error
}

// Metrics is a point-in-time copy of the emitter counters.
type Metrics struct {
	Enqueued    uint64
	Dropped     uint64
	SinkSuccess map[string]uint64
	SinkFailure map[string]uint64
}

// Emitter buffers events and delivers them to sinks off the generation path.
type Emitter struct {
	queue           chan *Event
	sinks           []Sink
	logger          *zap.Logger
	shutdownTimeout time.Duration

	enqueued atomic.Uint64
	dropped  atomic.Uint64

	countsMu    sync.Mutex
	sinkSuccess map[string]uint64
	sinkFailure map[string]uint64

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// EmitterConfig controls worker and queue sizing.
type EmitterConfig struct {
	QueueSize       int
	Workers         int
	ShutdownTimeout time.Duration
	Logger          *zap.Logger
}

// NewEmitter starts background workers delivering to sinks.
func NewEmitter(cfg EmitterConfig, sinks []Sink) *Emitter {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 2 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	em := &Emitter{
		queue:           make(chan *Event, cfg.QueueSize),
		sinks:           sinks,
		logger:          cfg.Logger,
		shutdownTimeout: cfg.ShutdownTimeout,
		sinkSuccess:     make(map[string]uint64, len(sinks)),
		sinkFailure:     make(map[string]uint64, len(sinks)),
	}
	for i := 0; i < cfg.Workers; i++ {
		em.wg.Add(1)
		go em.worker()
	}
	return em
}

// Emit enqueues ev without blocking. Events are dropped when the queue is
// full or the emitter is closed.
func (e *Emitter) Emit(_ context.Context, ev *Event) {
	if e == nil || ev == nil {
		return
	}
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		e.dropped.Add(1)
		return
	}
	select {
	case e.queue <- ev:
		e.enqueued.Add(1)
	default:
		e.dropped.Add(1)
	}
}

// Close stops accepting events, waits up to the shutdown timeout for the
// queue to drain and closes every sink.
func (e *Emitter) Close(ctx context.Context) {
	if e == nil {
		return
	}
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.queue)
	e.mu.Unlock()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	waitCtx, cancel := context.WithTimeout(ctx, e.shutdownTimeout)
	defer cancel()

	select {
	case <-done:
	case <-waitCtx.Done():
		e.logger.Warn("activation: shutdown timed out before queue drained")
	}

	for _, s := range e.sinks {
		if err := s.Close(waitCtx); err != nil {
			e.logger.Warn("activation: sink close error", zap.String("sink", s.Name()), zap.Error(err))
		}
	}
}

// MetricsSnapshot copies the current counters.
func (e *Emitter) MetricsSnapshot() Metrics {
	if e == nil {
		return Metrics{}
	}
	e.countsMu.Lock()
	defer e.countsMu.Unlock()
	out := Metrics{
		Enqueued:    e.enqueued.Load(),
		Dropped:     e.dropped.Load(),
		SinkSuccess: make(map[string]uint64, len(e.sinkSuccess)),
		SinkFailure: make(map[string]uint64, len(e.sinkFailure)),
	}
	for k, v := range e.sinkSuccess {
		out.SinkSuccess[k] = v
	}
	for k, v := range e.sinkFailure {
		out.SinkFailure[k] = v
	}
	return out
}

func (e *Emitter) worker() {
	defer e.wg.Done()
	for ev := range e.queue {
		e.deliver(ev)
	}
}

func (e *Emitter) deliver(ev *Event) {
	for _, s := range e.sinks {
		err := s.Deliver(context.Background(), ev)
		e.countsMu.Lock()
		if err != nil {
			e.sinkFailure[s.Name()]++
		} else {
			e.sinkSuccess[s.Name()]++
		}
		e.countsMu.Unlock()
		if err != nil {
			e.logger.Warn("activation: sink delivery failed", zap.String("sink", s.Name()), zap.Error(err))
		}
	}
}
