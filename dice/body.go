// Package dice simulates a handful of dice tumbling inside a bounded arena.
//
// The simulation is headless and frame driven: a host calls Roller.Step once per
// rendered frame and reads results back when an episode settles.
package dice

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Count is the number of dice in a game.
const Count = 4

// Motion ranges drawn when a die is created or thrown
const (
	IdleDrift  = 0.25 // Max idle velocity per axis
	SpinXMin   = 0.2
	SpinXMax   = 0.5
	SpinYMin   = 0.3
	SpinYMax   = 0.6
	AmpMin     = 8
	AmpMax     = 18
	FreqMin    = 0.003
	FreqMax    = 0.008
	ThrowMin   = 0.35 // Throw speed range
	ThrowMax   = 0.75
	ThrowNoise = 0.1
)

// Orientation holds accumulated rotation angles in radians.
// Values are never normalized; comparisons go through AngularDistance.
type Orientation struct {
	X, Y float64
}

// Oscillation is the sinusoidal wander added to a die while it moves
type Oscillation struct {
	AmpX, AmpY float64
	Freq       float64 // radians per millisecond
	Phase      float64
}

// Body is the mutable state of a single die
type Body struct {
	Pos         mgl64.Vec2
	Vel         mgl64.Vec2
	Osc         Oscillation
	RotRate     Orientation
	Orientation Orientation
	Result      int

	sink Sink
}

// Sink receives the transform of a die after every frame.
// A renderer implements it; the simulation never depends on a concrete type.
type Sink interface {
	SetTransform(pos mgl64.Vec2, rot Orientation)
}

// mirror pushes the body's state to its sink, if any.
func (b *Body) mirror() {
	if b.sink == nil {
		return
	}
	b.sink.SetTransform(b.Pos, b.Orientation)
}

// GridLayout returns the starting positions of the dice: a 2x2 grid offset from
// center by spacing on both axes.
func GridLayout(center mgl64.Vec2, spacing float64) [Count]mgl64.Vec2 {
	return [Count]mgl64.Vec2{
		{center.X() - spacing, center.Y() - spacing},
		{center.X() - spacing, center.Y() + spacing},
		{center.X() + spacing, center.Y() - spacing},
		{center.X() + spacing, center.Y() + spacing},
	}
}

// newBody creates a die at rest on face 1 with randomized idle motion
func newBody(pos mgl64.Vec2, rng Source) Body {
	b := Body{
		Pos: pos,
		Vel: mgl64.Vec2{
			floatBetween(rng, -IdleDrift, IdleDrift),
			floatBetween(rng, -IdleDrift, IdleDrift),
		},
		RotRate:     newSpin(rng),
		Orientation: faceTable[0].rot,
		Result:      1,
	}
	b.Osc = newOscillation(rng)
	return b
}

func newSpin(rng Source) Orientation {
	return Orientation{
		X: floatBetween(rng, SpinXMin, SpinXMax),
		Y: floatBetween(rng, SpinYMin, SpinYMax),
	}
}

func newOscillation(rng Source) Oscillation {
	return Oscillation{
		AmpX:  float64(intBetween(rng, AmpMin, AmpMax)),
		AmpY:  float64(intBetween(rng, AmpMin, AmpMax)),
		Freq:  floatBetween(rng, FreqMin, FreqMax),
		Phase: floatBetween(rng, 0, 2*math.Pi),
	}
}

// seed gives the body a fresh throw: a random impulse, spin and wander.
func (b *Body) seed(rng Source) {
	angle := floatBetween(rng, 0, 2*math.Pi)
	speed := floatBetween(rng, ThrowMin, ThrowMax)
	b.Vel = mgl64.Vec2{
		math.Cos(angle)*speed + floatBetween(rng, -ThrowNoise, ThrowNoise),
		math.Sin(angle)*speed + floatBetween(rng, -ThrowNoise, ThrowNoise),
	}
	b.RotRate = newSpin(rng)
	b.Osc = newOscillation(rng)
}
