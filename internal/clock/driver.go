// Package clock drives a board at a fixed tick period.
//
// The Driver is the single writer of its board. Ticks, resets and
// reprogramming are serialized under one mutex, and every mutation
// publishes a fresh Frame. Readers only ever see published frames.
package clock

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roverlab/internal/sim"
)

// Driver owns a board and ticks it while running.
type Driver struct {
	mu     sync.Mutex
	board  *sim.Board
	period time.Duration
	now    func() time.Time
	logger *log.Logger
	limit  uint64

	running atomic.Bool
	frame   atomic.Pointer[Frame]

	subsMu sync.RWMutex
	subs   map[*Subscription]struct{}

	done     chan struct{}
	doneOnce sync.Once
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock sets the time source passed to Tick. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) {
		d.now = now
	}
}

// WithLogger sets the logger. Defaults to a logger that discards output.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

// WithTickLimit makes Run return once the board reaches tick n.
// Zero means no limit.
func WithTickLimit(n uint64) Option {
	return func(d *Driver) {
		d.limit = n
	}
}

// New creates a stopped driver for board. The driver takes ownership of
// board; callers must not touch it afterwards.
func New(board *sim.Board, period time.Duration, opts ...Option) *Driver {
	if period <= 0 {
		period = time.Second
	}
	d := &Driver{
		board:  board,
		period: period,
		now:    time.Now,
		logger: log.New(io.Discard),
		subs:   make(map[*Subscription]struct{}),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.publish(d.now(), nil)
	return d
}

// Period returns the tick period.
func (d *Driver) Period() time.Duration {
	return d.period
}

// Current returns the latest published frame.
func (d *Driver) Current() *Frame {
	return d.frame.Load()
}

// Running reports whether timer firings tick the board.
func (d *Driver) Running() bool {
	return d.running.Load()
}

// SetRunning starts or pauses ticking. A tick already in progress always
// completes.
func (d *Driver) SetRunning(on bool) {
	if d.running.Swap(on) == on {
		return
	}
	d.logger.Debug("running changed", "running", on)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.publish(d.now(), nil)
}

// Run fires every period until ctx is cancelled, Stop is called, a tick
// fails, or the tick limit is reached. The first firing happens one period
// after Run is called. Firings while paused are skipped. A tick error pauses
// the driver and is returned. Reaching the limit pauses the driver and
// returns nil.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.period)
	defer ticker.Stop()

	d.logger.Debug("clock started", "period", d.period)
	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("clock stopped by context")
			return nil
		case <-d.done:
			d.logger.Debug("clock stopped")
			return nil
		case <-ticker.C:
			if !d.running.Load() {
				continue
			}
			res, err := d.Step()
			if err != nil {
				d.SetRunning(false)
				d.logger.Error("tick failed", "error", err)
				return err
			}
			if d.limit > 0 && res.Tick >= d.limit {
				d.SetRunning(false)
				d.logger.Debug("tick limit reached", "tick", res.Tick)
				return nil
			}
		}
	}
}

// Stop ends Run. Safe to call multiple times.
func (d *Driver) Stop() {
	d.doneOnce.Do(func() {
		close(d.done)
	})
}

// Step ticks the board once at the driver's current time, whether or not
// the driver is running.
func (d *Driver) Step() (sim.StepResult, error) {
	return d.StepAt(d.now())
}

// StepAt ticks the board once at now.
func (d *Driver) StepAt(now time.Time) (sim.StepResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	res, err := d.board.Tick(now)
	if err != nil {
		return res, err
	}
	d.logger.Debug("tick",
		"tick", res.Tick,
		"moved", len(res.Moved),
		"blocked", len(res.Blocked),
		"pickups", len(res.PickedUp),
	)
	for _, p := range res.PickedUp {
		d.logger.Info("pickup", "tick", res.Tick, "rover", p.Rover, "building", p.Building, "kind", p.Kind)
	}
	d.publish(now, &res)
	return res, nil
}

// Reset starts a new round keeping the selected rover's program.
func (d *Driver) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.board.ResetRound(); err != nil {
		return err
	}
	d.logger.Debug("round reset")
	d.publish(d.now(), nil)
	return nil
}

// Program replaces the selected rover's program.
func (d *Driver) Program(actions []sim.ActionType) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.board.Program(actions); err != nil {
		return err
	}
	d.logger.Debug("rover reprogrammed", "actions", len(actions))
	d.publish(d.now(), nil)
	return nil
}

// Subscribe returns a subscription receiving every frame published from
// now on. Slow readers lose the oldest frames, never the newest.
func (d *Driver) Subscribe(buffer int) *Subscription {
	s := newSubscription(buffer)
	d.subsMu.Lock()
	d.subs[s] = struct{}{}
	d.subsMu.Unlock()
	return s
}

// Unsubscribe ends s.
func (d *Driver) Unsubscribe(s *Subscription) {
	d.subsMu.Lock()
	delete(d.subs, s)
	d.subsMu.Unlock()
	s.close()
}

// publish must be called with d.mu held (or before the driver is shared).
func (d *Driver) publish(at time.Time, res *sim.StepResult) {
	f := newFrame(d.board, at, d.running.Load(), res)
	d.frame.Store(f)

	d.subsMu.RLock()
	defer d.subsMu.RUnlock()
	for s := range d.subs {
		s.send(f)
	}
}
