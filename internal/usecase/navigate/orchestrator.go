// Package navigate owns the current channel and serializes channel switches.
//
// A switch plays a short transition, moves the active indicator and readout,
// then runs the target's one-shot reveal if it has not played yet. Requests
// that arrive while a switch is in flight are dropped, not queued.
package navigate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pranay0703/pranay0703.github.io/internal/domain"
	"github.com/pranay0703/pranay0703.github.io/internal/ports"
)

const (
	DefaultTransition = 400 * time.Millisecond
	DefaultStatic     = 800 * time.Millisecond
)

// Revealer runs a channel's one-shot reveal to completion.
type Revealer interface {
	Reveal(ctx context.Context, c domain.Channel) error
}

// Outcome reports what a RequestChannel call did.
type Outcome int

const (
	Switched Outcome = iota
	DroppedBusy
	SameChannel
	Invalid
	// Interrupted means ctx ended the switch before it finished.
	Interrupted
)

func (o Outcome) String() string {
	switch o {
	case Switched:
		return "switched"
	case DroppedBusy:
		return "dropped_busy"
	case SameChannel:
		return "same_channel"
	case Invalid:
		return "invalid"
	case Interrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Orchestrator serializes channel switches and plays each reveal once.
type Orchestrator struct {
	surface ports.Surface
	reveals Revealer
	memory  *Memory
	sleeper ports.Sleeper
	log     *slog.Logger

	transition time.Duration
	static     time.Duration

	busy atomic.Bool

	mu      sync.RWMutex
	current domain.Channel
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.log = l
		}
	}
}

// WithTransition sets the nominal transition wait and the static effect length.
func WithTransition(wait, static time.Duration) Option {
	return func(o *Orchestrator) {
		o.transition = wait
		o.static = static
	}
}

// New wires an orchestrator. A nil memory gets a fresh one; a nil sleeper
// skips every wait, checking only for cancellation.
func New(s ports.Surface, r Revealer, m *Memory, sl ports.Sleeper, opts ...Option) *Orchestrator {
	if sl == nil {
		sl = noWait{}
	}
	o := &Orchestrator{
		surface:    s,
		reveals:    r,
		memory:     m,
		sleeper:    sl,
		log:        slog.New(slog.NewJSONHandler(io.Discard, nil)),
		transition: DefaultTransition,
		static:     DefaultStatic,
		current:    domain.DefaultChannel,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.memory == nil {
		o.memory = NewMemory(nil)
	}
	return o
}

// Boot paints the initial indicators for the default channel. It does not
// count as a visit, so the first real switch back to hero still plays its reveal.
func (o *Orchestrator) Boot(powerOn time.Duration) {
	c := o.Current()
	o.surface.SetActive(c)
	o.surface.SetChannelCode(c.Code())
	o.surface.PowerOn(powerOn)
}

func (o *Orchestrator) Current() domain.Channel {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.current
}

func (o *Orchestrator) Busy() bool { return o.busy.Load() }

func (o *Orchestrator) State() domain.NavigationState {
	return domain.NavigationState{Current: o.Current(), Busy: o.Busy()}
}

func (o *Orchestrator) Memory() *Memory { return o.memory }

// Reset forgets played reveals so the next visit plays them again.
func (o *Orchestrator) Reset() {
	o.memory.Reset()
	o.log.Info("nav.reset")
}

// RequestChannel switches to target unless a switch is already running or
// target is current. It blocks until the switch, including any reveal, is done.
func (o *Orchestrator) RequestChannel(ctx context.Context, target domain.Channel) (Outcome, error) {
	if !target.Valid() {
		o.log.Debug("nav.invalid", "target", string(target))
		return Invalid, nil
	}
	if o.Current() == target {
		return SameChannel, nil
	}
	if !o.busy.CompareAndSwap(false, true) {
		o.log.Debug("nav.dropped", "target", string(target))
		return DroppedBusy, nil
	}
	defer o.busy.Store(false)

	// A switch may have completed between the first check and the CAS.
	if o.Current() == target {
		return SameChannel, nil
	}

	o.surface.StartTransition(o.static)
	if err := o.sleeper.Sleep(ctx, o.transition); err != nil {
		return Interrupted, err
	}

	o.surface.SetActive(target)
	o.surface.ScrollIntoView(target)
	o.surface.SetChannelCode(target.Code())

	o.mu.Lock()
	from := o.current
	o.current = target
	o.mu.Unlock()

	o.log.Info("nav.switched", "from", string(from), "to", string(target))

	if err := o.dispatch(ctx, target); err != nil {
		if ctx.Err() != nil {
			return Interrupted, ctx.Err()
		}
		if domain.IsKind(err, domain.KindMissingTarget) {
			o.log.Debug("reveal.skipped", "channel", string(target), "err", err)
		} else {
			o.log.Error("reveal.failed", "channel", string(target), "err", err)
		}
	}
	return Switched, nil
}

func (o *Orchestrator) dispatch(ctx context.Context, c domain.Channel) (err error) {
	if o.memory.HasPlayed(c) {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			o.log.Error("panic.recovered",
				"where", "nav.reveal",
				"channel", string(c),
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			err = &domain.OpError{
				Op:   "navigate.reveal",
				Kind: domain.KindExecution,
				Path: string(c),
				Err:  fmt.Errorf("%w: panic: %v", domain.ErrExecution, r),
			}
		}
	}()

	if o.reveals == nil {
		o.memory.MarkPlayed(c)
		return nil
	}

	start := time.Now()
	if err := o.reveals.Reveal(ctx, c); err != nil {
		return err
	}
	o.memory.MarkPlayed(c)
	o.log.Debug("reveal.done", "channel", string(c), "took_ms", time.Since(start).Milliseconds())
	return nil
}

type noWait struct{}

func (noWait) Sleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }
