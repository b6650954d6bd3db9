package wheel

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// InitialStepDeg is the per-tick advance when a spin starts.
	InitialStepDeg = 15
	// MinStepDeg is the smallest advance while spinning.
	MinStepDeg = 1

	MinTurns = 5
	MaxTurns = 8

	// RollbackChance is the probability a session draws rollback.
	RollbackChance = 0.33
	// RollbackDivisor turns the total spin into the rollback tick budget.
	RollbackDivisor = 60
	// RollbackDecay shrinks the step on every rollback tick.
	RollbackDecay = 1.08

	// TickInterval is the cadence the host should call OnTick at.
	TickInterval = 10 * time.Millisecond
)

// State is the spin controller state.
type State int

const (
	StateIdle State = iota
	StateSpinning
	StateRollingBack
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpinning:
		return "spinning"
	case StateRollingBack:
		return "rolling back"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// SpinParams are the randomized inputs of one spin.
type SpinParams struct {
	TotalSpinDeg    int
	RollbackEnabled bool
	// RollbackForward makes rollback ticks keep turning the way the spin
	// went instead of backing up.
	RollbackForward bool
}

// RandomParams draws 5 to 8 full turns plus a sub-turn offset, and the
// rollback coin flips.
func RandomParams(rng Source) SpinParams {
	turns := MinTurns + rng.IntN(MaxTurns-MinTurns+1)
	return SpinParams{
		TotalSpinDeg:    turns*FullCircleDeg + rng.IntN(FullCircleDeg),
		RollbackEnabled: rng.Float64() < RollbackChance,
		RollbackForward: rng.IntN(2) == 1,
	}
}

// MaxTicks bounds how many ticks a spin of totalDeg can take, the
// terminal tick included.
func MaxTicks(totalDeg int) int {
	return totalDeg + totalDeg/RollbackDivisor + 1
}

// Result describes a finished spin.
type Result struct {
	Index      int
	Label      string
	ColorName  string
	AngleDeg   float64
	Ticks      int
	RolledBack bool
}

// Observer receives the controller's side effects.
type Observer interface {
	// Redraw is called after every tick that moved the wheel.
	Redraw(angleDeg float64)
	// Finished is called once when a spin terminates.
	Finished(Result)
}

type session struct {
	params       SpinParams
	progress     int
	step         float64
	rollback     int
	rollbackStop int
	ticks        int
	rolledBack   bool
}

// Controller drives a spin one tick at a time. It is not safe for
// concurrent use: the host delivers ticks and queries from one goroutine.
type Controller struct {
	model    *Model
	rng      Source
	policy   RollbackPolicy
	observer Observer
	log      logrus.FieldLogger

	angle  float64
	state  State
	sess   *session
	winner *Result
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver registers the redraw and winner callbacks.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// WithPolicy selects the rollback policy.
func WithPolicy(p RollbackPolicy) Option {
	return func(c *Controller) { c.policy = p }
}

// WithLogger sets the logger used for spin lifecycle events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = l }
}

// WithAngle overrides the random starting angle.
func WithAngle(deg float64) Option {
	return func(c *Controller) { c.angle = normalizeDeg(deg) }
}

// NewController returns an idle controller over m with a random starting angle.
func NewController(m *Model, rng Source, opts ...Option) *Controller {
	c := &Controller{
		model: m,
		rng:   rng,
		angle: float64(rng.IntN(FullCircleDeg)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.observer == nil {
		c.observer = nopObserver{}
	}
	if c.log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		c.log = quiet
	}
	return c
}

// TriggerSpin starts a spin with freshly drawn parameters.
func (c *Controller) TriggerSpin() error {
	if c.state != StateIdle {
		return fmt.Errorf("spin: %w", ErrInvalidOperation)
	}
	return c.start(RandomParams(c.rng))
}

// TriggerSpinWith starts a spin with fixed parameters. The total must be
// at least one initial step so the spin lands exactly on it.
func (c *Controller) TriggerSpinWith(p SpinParams) error {
	if c.state != StateIdle {
		return fmt.Errorf("spin: %w", ErrInvalidOperation)
	}
	if p.TotalSpinDeg < InitialStepDeg {
		return fmt.Errorf("spin of %d degrees: %w", p.TotalSpinDeg, ErrInvalidInput)
	}
	return c.start(p)
}

func (c *Controller) start(p SpinParams) error {
	stop := p.TotalSpinDeg / RollbackDivisor
	c.sess = &session{
		params:       p,
		step:         InitialStepDeg,
		rollback:     c.policy.seed(p.RollbackEnabled, stop),
		rollbackStop: stop,
	}
	c.winner = nil
	c.state = StateSpinning

	c.log.WithFields(logrus.Fields{
		"total_deg":     p.TotalSpinDeg,
		"rollback":      p.RollbackEnabled,
		"forward":       p.RollbackForward,
		"rollback_stop": stop,
		"policy":        c.policy.String(),
		"start_angle":   c.angle,
	}).Debug("spin started")
	return nil
}

// OnTick advances the active spin by one step. It returns false once the
// spin has terminated, or when there is no spin to advance.
func (c *Controller) OnTick() bool {
	s := c.sess
	if s == nil {
		return false
	}
	s.ticks++
	total := s.params.TotalSpinDeg

	switch {
	case s.progress < total:
		c.state = StateSpinning
		step := int(s.step)
		c.angle = normalizeDeg(c.angle + float64(step))
		s.progress += step
		s.step = float64(max(InitialStepDeg*(total-s.progress)/total, MinStepDeg))
	case s.rollback < s.rollbackStop:
		c.state = StateRollingBack
		if s.params.RollbackForward {
			c.angle = normalizeDeg(c.angle + s.step)
		} else {
			c.angle = normalizeDeg(c.angle - s.step)
		}
		s.step /= RollbackDecay
		s.rollback++
		s.rolledBack = true
	default:
		c.finish()
		return false
	}

	c.observer.Redraw(c.angle)
	return true
}

func (c *Controller) finish() {
	s := c.sess
	idx := c.model.PointerSegment(c.angle)
	seg := c.model.Segment(idx)
	res := Result{
		Index:      idx,
		Label:      seg.Label,
		ColorName:  seg.ColorName,
		AngleDeg:   c.angle,
		Ticks:      s.ticks,
		RolledBack: s.rolledBack,
	}
	c.winner = &res
	c.sess = nil
	c.state = StateIdle

	c.log.WithFields(logrus.Fields{
		"index": idx,
		"label": seg.Label,
		"angle": c.angle,
		"ticks": s.ticks,
	}).Info("spin finished")
	c.observer.Finished(res)
}

// RunToCompletion delivers ticks until the active spin terminates.
func (c *Controller) RunToCompletion() (Result, error) {
	if c.sess == nil {
		return Result{}, fmt.Errorf("no active spin: %w", ErrInvalidOperation)
	}
	limit := MaxTicks(c.sess.params.TotalSpinDeg)
	for i := 0; i < limit; i++ {
		if !c.OnTick() {
			return *c.winner, nil
		}
	}
	return Result{}, fmt.Errorf("spin did not finish within %d ticks", limit)
}

// State returns the current controller state.
func (c *Controller) State() State { return c.state }

// Spinning reports whether a spin is active.
func (c *Controller) Spinning() bool { return c.sess != nil }

// CurrentAngle returns the wheel rotation in [0, 360).
func (c *Controller) CurrentAngle() float64 { return c.angle }

// Progress returns how far the primary phase has advanced and its target.
// Both are zero when idle.
func (c *Controller) Progress() (done, total int) {
	if c.sess == nil {
		return 0, 0
	}
	return c.sess.progress, c.sess.params.TotalSpinDeg
}

// StepDeg returns the step the next tick will apply, or zero when idle.
func (c *Controller) StepDeg() float64 {
	if c.sess == nil {
		return 0
	}
	return c.sess.step
}

// Segments returns the segments for rendering.
func (c *Controller) Segments() []Segment { return c.model.Segments() }

// SegmentCount returns the number of segments.
func (c *Controller) SegmentCount() int { return c.model.SegmentCount() }

// SpanOf returns segment i's start and width at the current rotation.
func (c *Controller) SpanOf(i int) (startDeg, widthDeg float64) {
	return c.model.SpanOf(i, c.angle)
}

// Model exposes the segment model for read-only rendering.
func (c *Controller) Model() *Model { return c.model }

// Winner returns the last finished spin, if there is one since the last
// load or spin start.
func (c *Controller) Winner() (Result, bool) {
	if c.winner == nil {
		return Result{}, false
	}
	return *c.winner, true
}

// WinnerLabel returns the winning label, or "" when no spin has completed.
func (c *Controller) WinnerLabel() string {
	if c.winner == nil {
		return ""
	}
	return c.winner.Label
}

// LoadDefault restores the built-in wheel.
func (c *Controller) LoadDefault() error {
	if c.sess != nil {
		return fmt.Errorf("load default: %w", ErrInvalidOperation)
	}
	c.model.LoadDefault()
	c.winner = nil
	return nil
}

// LoadFromLines replaces the segments with the given labels.
func (c *Controller) LoadFromLines(lines []string) error {
	if c.sess != nil {
		return fmt.Errorf("load labels: %w", ErrInvalidOperation)
	}
	if err := c.model.LoadFromLines(lines); err != nil {
		return err
	}
	c.winner = nil
	c.log.WithField("segments", c.model.SegmentCount()).Info("labels loaded")
	return nil
}

// LoadFile reads a label file and loads it.
func (c *Controller) LoadFile(path string) error {
	if c.sess != nil {
		return fmt.Errorf("load %s: %w", path, ErrInvalidOperation)
	}
	lines, err := LoadFile(path)
	if err != nil {
		return err
	}
	return c.LoadFromLines(lines)
}

// SetPalette swaps the palette of an idle wheel.
func (c *Controller) SetPalette(p Palette) error {
	if c.sess != nil {
		return fmt.Errorf("set palette: %w", ErrInvalidOperation)
	}
	return c.model.SetPalette(p)
}

// Observers fans callbacks out to several observers in order.
type Observers []Observer

func (obs Observers) Redraw(angleDeg float64) {
	for _, o := range obs {
		o.Redraw(angleDeg)
	}
}

func (obs Observers) Finished(r Result) {
	for _, o := range obs {
		o.Finished(r)
	}
}

type nopObserver struct{}

func (nopObserver) Redraw(float64)  {}
func (nopObserver) Finished(Result) {}
