// Package countdown implements the device-side confirmation gate that decides
// when a panic alert is actually raised.
package countdown

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"raahi/config"
	"raahi/internal/domain/entity"

	"github.com/pkg/errors"
)

// State of the controller
type State string

const (
	StateIdle        State = "idle"
	StateWarning     State = "warning"
	StateDispatching State = "dispatching"
	StateDispatched  State = "dispatched"
)

const tickInterval = time.Second

// ErrLocationUnavailable is reported when no fix was acquired in time.
var ErrLocationUnavailable = errors.New("location unavailable")

// LocationProvider reads the device position.
type LocationProvider interface {
	CurrentLocation(ctx context.Context) (entity.Coordinate, error)
}

// AlertRequest is what the controller asks the alert store to persist.
type AlertRequest struct {
	Location  entity.Coordinate
	Degraded  bool
	Timestamp time.Time
}

// AlertReceipt confirms a stored alert.
type AlertReceipt struct {
	AlertID string
	Path    string
}

// AlertSender raises the alert with the backend.
type AlertSender interface {
	Send(ctx context.Context, req AlertRequest) (*AlertReceipt, error)
}

// EmergencyDialer places the voice call to the emergency number.
type EmergencyDialer interface {
	Dial(ctx context.Context, number string) error
}

// Listener observes the controller. Callbacks run outside the controller lock
// and must not block for long.
type Listener interface {
	OnStateChange(from, to State)
	OnTick(remaining int)
	OnLocationProbe(available bool)
	OnDispatch(result DispatchResult)
}

// DispatchResult records one dispatch. StoreErr and CallErr are independent:
// the call is placed even when the store write fails.
type DispatchResult struct {
	AlertID  string
	Path     string
	Location entity.Coordinate
	Degraded bool
	StoreErr error
	CallErr  error
}

// Stored reports whether the backend accepted the alert.
func (r DispatchResult) Stored() bool {
	return r.StoreErr == nil && r.AlertID != ""
}

// Options configures the controller. Zero values fall back to the panic defaults.
type Options struct {
	Countdown       time.Duration
	Cooldown        time.Duration
	LocationTimeout time.Duration
	EmergencyNumber string
}

// OptionsFromConfig maps the panic section of the service config.
func OptionsFromConfig(cfg *config.PanicConfig) Options {
	if cfg == nil {
		return Options{}
	}

	return Options{
		Countdown:       cfg.CountdownDuration,
		Cooldown:        cfg.DispatchCooldown,
		LocationTimeout: cfg.LocationTimeout,
		EmergencyNumber: cfg.EmergencyNumber,
	}
}

func (o Options) withDefaults() Options {
	if o.Countdown <= 0 {
		o.Countdown = 30 * time.Second
	}
	if o.Cooldown <= 0 {
		o.Cooldown = 2 * time.Minute
	}
	if o.LocationTimeout <= 0 {
		o.LocationTimeout = 10 * time.Second
	}
	if o.EmergencyNumber == "" {
		o.EmergencyNumber = "112"
	}

	return o
}

// Dependencies are the controller's collaborators. Listener and Logger are optional.
type Dependencies struct {
	Clock    Clock
	Location LocationProvider
	Sender   AlertSender
	Dialer   EmergencyDialer
	Listener Listener
	Logger   *slog.Logger
}

// Controller is the Idle -> Warning -> Dispatching -> Dispatched -> Idle state machine.
// Every mutation happens under mu and at most one timer is armed at a time.
type Controller struct {
	opts     Options
	clock    Clock
	location LocationProvider
	sender   AlertSender
	dialer   EmergencyDialer
	listener Listener
	logger   *slog.Logger

	mu        sync.Mutex
	state     State
	remaining int
	timer     Timer
	// generation invalidates timer callbacks that fired after being replaced
	generation uint64
	last       *DispatchResult
	inflight   sync.WaitGroup
}

// NewController builds an idle controller.
func NewController(opts Options, deps Dependencies) (*Controller, error) {
	if deps.Location == nil || deps.Sender == nil || deps.Dialer == nil {
		return nil, errors.New("countdown: location provider, sender and dialer are required")
	}
	if deps.Clock == nil {
		deps.Clock = NewRealClock()
	}
	if deps.Listener == nil {
		deps.Listener = nopListener{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}

	opts = opts.withDefaults()

	return &Controller{
		opts:      opts,
		clock:     deps.Clock,
		location:  deps.Location,
		sender:    deps.Sender,
		dialer:    deps.Dialer,
		listener:  deps.Listener,
		logger:    deps.Logger,
		state:     StateIdle,
		remaining: countdownSeconds(opts.Countdown),
	}, nil
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Remaining returns the whole seconds left in the countdown.
func (c *Controller) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.remaining
}

// LastResult returns the outcome of the most recent dispatch, if any.
func (c *Controller) LastResult() (DispatchResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last == nil {
		return DispatchResult{}, false
	}

	return *c.last, true
}

// Wait blocks until any running dispatch has finished.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Trigger starts the countdown. It is a no-op unless the controller is idle.
func (c *Controller) Trigger() bool {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()

		return false
	}

	c.remaining = countdownSeconds(c.opts.Countdown)
	c.setStateLocked(StateWarning)
	c.armLocked(tickInterval, c.tick)
	remaining := c.remaining
	c.mu.Unlock()

	c.logger.Info("Panic countdown started", slog.Int("seconds", remaining))
	c.listener.OnStateChange(StateIdle, StateWarning)
	c.listener.OnTick(remaining)
	go c.probeLocation()

	return true
}

// Cancel aborts a running countdown. It only has an effect while warning.
func (c *Controller) Cancel() bool {
	c.mu.Lock()
	if c.state != StateWarning {
		c.mu.Unlock()

		return false
	}

	c.stopTimerLocked()
	remaining := c.remaining
	c.remaining = countdownSeconds(c.opts.Countdown)
	c.setStateLocked(StateIdle)
	c.mu.Unlock()

	c.logger.Info("Panic countdown cancelled", slog.Int("remaining", remaining))
	c.listener.OnStateChange(StateWarning, StateIdle)

	return true
}

// ConfirmNow skips the rest of the countdown and dispatches immediately.
func (c *Controller) ConfirmNow() bool {
	c.mu.Lock()
	if c.state != StateWarning {
		c.mu.Unlock()

		return false
	}
	c.stopTimerLocked()
	c.beginDispatchLocked()
	c.mu.Unlock()

	c.listener.OnStateChange(StateWarning, StateDispatching)
	go c.dispatch()

	return true
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || c.state != StateWarning {
		c.mu.Unlock()

		return
	}

	c.remaining--
	remaining := c.remaining
	if remaining > 0 {
		c.armLocked(tickInterval, c.tick)
		c.mu.Unlock()
		c.listener.OnTick(remaining)

		return
	}

	c.timer = nil
	c.beginDispatchLocked()
	c.mu.Unlock()

	c.listener.OnTick(0)
	c.listener.OnStateChange(StateWarning, StateDispatching)
	go c.dispatch()
}

// beginDispatchLocked moves to Dispatching. From here the alert cannot be cancelled.
// The caller starts dispatch once the lock is released.
func (c *Controller) beginDispatchLocked() {
	c.setStateLocked(StateDispatching)
	c.inflight.Add(1)
}

func (c *Controller) dispatch() {
	defer c.inflight.Done()

	// The dispatch must finish even if the caller gave up on the countdown.
	ctx := context.Background()

	// The call depends on nothing else, so it starts before the location fix.
	callDone := make(chan error, 1)
	go func() {
		callDone <- c.placeCall(ctx)
	}()

	result := DispatchResult{}
	location, err := c.acquireLocation(ctx)
	if err != nil {
		c.logger.Warn("Dispatching with degraded location", slog.Any("error", err))
		result.Degraded = true
	} else {
		result.Location = location
	}

	receipt, sendErr := c.sender.Send(ctx, AlertRequest{
		Location:  result.Location,
		Degraded:  result.Degraded,
		Timestamp: c.clock.Now().UTC(),
	})
	switch {
	case sendErr != nil:
		result.StoreErr = sendErr
	case receipt == nil:
		result.StoreErr = errors.New("alert sender returned no receipt")
	default:
		result.AlertID = receipt.AlertID
		result.Path = receipt.Path
	}

	result.CallErr = <-callDone

	if result.StoreErr != nil {
		c.logger.Error("Panic alert was not stored", slog.Any("error", result.StoreErr))
	} else {
		c.logger.Info("Panic alert stored",
			slog.String("alert_id", result.AlertID),
			slog.String("path", result.Path),
		)
	}

	c.mu.Lock()
	c.last = &result
	c.setStateLocked(StateDispatched)
	c.armLocked(c.opts.Cooldown, c.cooldownElapsed)
	c.mu.Unlock()

	c.listener.OnDispatch(result)
	c.listener.OnStateChange(StateDispatching, StateDispatched)
}

func (c *Controller) placeCall(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("dialer panicked: %v", r)
		}
	}()

	if err := c.dialer.Dial(ctx, c.opts.EmergencyNumber); err != nil {
		c.logger.Error("Emergency call failed", slog.String("number", c.opts.EmergencyNumber), slog.Any("error", err))

		return errors.WithStack(err)
	}

	return nil
}

func (c *Controller) acquireLocation(ctx context.Context) (entity.Coordinate, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.LocationTimeout)
	defer cancel()

	type fix struct {
		coord entity.Coordinate
		err   error
	}
	ch := make(chan fix, 1)
	go func() {
		coord, err := c.location.CurrentLocation(ctx)
		ch <- fix{coord: coord, err: err}
	}()

	select {
	case <-ctx.Done():
		return entity.Coordinate{}, errors.Wrap(ErrLocationUnavailable, "timed out")
	case f := <-ch:
		if f.err != nil {
			return entity.Coordinate{}, errors.Wrap(ErrLocationUnavailable, f.err.Error())
		}
		if err := f.coord.Validate(); err != nil {
			return entity.Coordinate{}, errors.Wrap(ErrLocationUnavailable, err.Error())
		}
		if f.coord.IsZero() {
			return entity.Coordinate{}, errors.Wrap(ErrLocationUnavailable, "null island fix")
		}

		return f.coord, nil
	}
}

// probeLocation is advisory. It never blocks or changes the countdown.
func (c *Controller) probeLocation() {
	_, err := c.acquireLocation(context.Background())
	if c.State() != StateWarning {
		return
	}

	c.listener.OnLocationProbe(err == nil)
}

func (c *Controller) cooldownElapsed(gen uint64) {
	c.mu.Lock()
	if gen != c.generation || c.state != StateDispatched {
		c.mu.Unlock()

		return
	}
	c.timer = nil
	c.remaining = countdownSeconds(c.opts.Countdown)
	c.setStateLocked(StateIdle)
	c.mu.Unlock()

	c.listener.OnStateChange(StateDispatched, StateIdle)
}

// armLocked replaces the controller's timer.
func (c *Controller) armLocked(d time.Duration, f func(gen uint64)) {
	c.stopTimerLocked()
	gen := c.generation
	c.timer = c.clock.AfterFunc(d, func() { f(gen) })
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.generation++
}

func (c *Controller) setStateLocked(s State) {
	c.state = s
}

func countdownSeconds(d time.Duration) int {
	secs := int(d / time.Second)
	if secs < 1 {
		return 1
	}

	return secs
}

type nopListener struct{}

func (nopListener) OnStateChange(State, State) {}
func (nopListener) OnTick(int)                 {}
func (nopListener) OnLocationProbe(bool)       {}
func (nopListener) OnDispatch(DispatchResult)  {}
