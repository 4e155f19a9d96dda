package dice

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DefaultRollDuration = 3 * time.Second
	// ReferenceFrame is the tick length at which displacement and spin are unscaled
	ReferenceFrame = time.Second / 60
)

// Outcome is the result of a settled roll
type Outcome struct {
	Faces      [Count]int
	Sum        int
	Relaxation RelaxStats
}

// Option configures a Roller
type Option func(*Roller)

// WithRollDuration sets how long an episode runs before the dice settle.
func WithRollDuration(d time.Duration) Option {
	return func(r *Roller) {
		if d > 0 {
			r.duration = d
		}
	}
}

// WithOnSettle registers a callback invoked each time an episode completes.
// The roller is idle again when fn runs, so fn may start the next roll.
func WithOnSettle(fn func(Outcome)) Option {
	return func(r *Roller) { r.onSettle = fn }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *Roller) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithLayout overrides the starting grid positions.
func WithLayout(pos [Count]mgl64.Vec2) Option {
	return func(r *Roller) { r.layout = &pos }
}

// Roller owns the dice and runs roll episodes.
// It is not safe for concurrent use; the host drives it from its frame loop.
type Roller struct {
	arena    Arena
	bodies   [Count]Body
	rng      Source
	duration time.Duration
	layout   *[Count]mgl64.Vec2

	rolling bool
	closed  bool
	elapsed time.Duration
	rolls   int
	last    Outcome

	onSettle func(Outcome)
	logger   *slog.Logger
}

// NewRoller places the dice on a grid around the arena center, one die size apart.
// A nil rng is replaced by a time-seeded source.
func NewRoller(arena Arena, rng Source, opts ...Option) (*Roller, error) {
	if err := arena.Validate(); err != nil {
		return nil, fmt.Errorf("new roller: %w", err)
	}
	if rng == nil {
		rng = NewSource(0)
	}

	r := &Roller{
		arena:    arena,
		rng:      rng,
		duration: DefaultRollDuration,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}

	cx, cy := arena.Center()
	layout := GridLayout(mgl64.Vec2{cx, cy}, arena.Size)
	if r.layout != nil {
		layout = *r.layout
	}
	for i := range r.bodies {
		r.bodies[i] = newBody(layout[i], rng)
	}
	r.last = r.outcome(RelaxStats{Converged: true})
	return r, nil
}

// Trigger starts a roll. It reports false and changes nothing when a roll is
// already running or the roller is closed.
func (r *Roller) Trigger() bool {
	if r.rolling || r.closed {
		return false
	}
	for i := range r.bodies {
		r.bodies[i].seed(r.rng)
	}
	r.rolling = true
	r.elapsed = 0
	r.logger.Debug("roll started", "roll", r.rolls+1, "duration", r.duration)
	return true
}

// Step advances the running episode by delta. It reports whether the episode
// completed during this step. When idle it does nothing.
func (r *Roller) Step(delta time.Duration) bool {
	if !r.rolling || r.closed {
		return false
	}
	if delta < 0 {
		delta = 0
	}
	r.elapsed += delta

	f := newFrame(ms(r.elapsed), ms(r.duration), float64(delta)/float64(ReferenceFrame))
	for i := range r.bodies {
		integrate(&r.bodies[i], f, r.rng)
		contain(&r.bodies[i], r.arena, r.rng)
	}
	collideAll(r.bodies[:], r.arena.Size, r.rng)
	for i := range r.bodies {
		r.bodies[i].mirror()
	}

	if r.elapsed < r.duration {
		return false
	}
	r.settle()
	return true
}

// settle ends the episode: final relaxation, face classification and snapping.
func (r *Roller) settle() {
	stats := relax(r.bodies[:], r.arena.Size, r.rng)
	for i := range r.bodies {
		b := &r.bodies[i]
		b.Result = ClassifyFace(b.Orientation)
		b.Orientation, _ = FaceOrientation(b.Result)
		b.mirror()
	}

	r.rolling = false
	r.rolls++
	r.last = r.outcome(stats)

	if !stats.Converged {
		r.logger.Warn("dice still overlap after relaxation", "passes", stats.Iterations)
	}
	r.logger.Debug("roll settled", "roll", r.rolls, "faces", r.last.Faces, "sum", r.last.Sum)

	if r.onSettle != nil {
		r.onSettle(r.last)
	}
}

func (r *Roller) outcome(stats RelaxStats) Outcome {
	o := Outcome{Relaxation: stats}
	for i, b := range r.bodies {
		o.Faces[i] = b.Result
		o.Sum += b.Result
	}
	return o
}

// Attach sets the visual mirror for die i and pushes the current transform to it.
// A nil sink detaches.
func (r *Roller) Attach(i int, s Sink) error {
	if i < 0 || i >= Count {
		return fmt.Errorf("attach %d: %w", i, ErrNoSuchDie)
	}
	r.bodies[i].sink = s
	r.bodies[i].mirror()
	return nil
}

// Resize changes the arena. Dice are clamped into the new bounds.
func (r *Roller) Resize(a Arena) error {
	switch {
	case r.closed:
		return fmt.Errorf("resize: %w", ErrClosed)
	case r.rolling:
		return fmt.Errorf("resize: %w", ErrRollInProgress)
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	r.arena = a
	for i := range r.bodies {
		contain(&r.bodies[i], a, r.rng)
		r.bodies[i].mirror()
	}
	return nil
}

// Close tears the simulation down. Later calls to Step and Trigger are no-ops.
func (r *Roller) Close() {
	r.closed = true
	r.rolling = false
	for i := range r.bodies {
		r.bodies[i].sink = nil
	}
}

// Rolling reports whether an episode is in progress.
func (r *Roller) Rolling() bool { return r.rolling }

// Elapsed returns the time into the current or last episode.
func (r *Roller) Elapsed() time.Duration { return r.elapsed }

// Duration returns the episode length.
func (r *Roller) Duration() time.Duration { return r.duration }

// Rolls returns the number of completed episodes.
func (r *Roller) Rolls() int { return r.rolls }

// Arena returns the current arena.
func (r *Roller) Arena() Arena { return r.arena }

// Last returns the outcome of the most recent episode.
// Before the first roll every die shows 1.
func (r *Roller) Last() Outcome { return r.last }

// Results returns the face of each die.
func (r *Roller) Results() [Count]int { return r.last.Faces }

// Sum returns the total of all faces.
func (r *Roller) Sum() int { return r.last.Sum }

// Bodies returns a snapshot of the dice.
func (r *Roller) Bodies() [Count]Body {
	out := r.bodies
	for i := range out {
		out[i].sink = nil
	}
	return out
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
