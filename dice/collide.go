package dice

import (
	"fmt"
	"math"
)

// Collision constants
const (
	BounceMin       = 0.7 // Wall restitution range
	BounceMax       = 1.0
	ExchangeDamping = 0.7 // Velocity kept when two dice trade velocity
	ExchangeNoise   = 0.1
	MaxRelaxPasses  = 10
	DefaultPadding  = 10.0
	DefaultReserved = 100.0
	DefaultDieSize  = 160.0
	DefaultArenaW   = 800.0
	DefaultArenaH   = 600.0
)

// Arena is the rectangle the dice are kept in.
// ReservedBottom is screen space kept free below the dice for the UI.
type Arena struct {
	Width, Height  float64
	Padding        float64
	ReservedBottom float64
	Size           float64 // Die edge length
}

// DefaultArena returns an 800x600 arena with 160px dice.
func DefaultArena() Arena {
	return Arena{
		Width:          DefaultArenaW,
		Height:         DefaultArenaH,
		Padding:        DefaultPadding,
		ReservedBottom: DefaultReserved,
		Size:           DefaultDieSize,
	}
}

// Bounds returns the range a die center may occupy on each axis
func (a Arena) Bounds() (left, right, top, bottom float64) {
	half := a.Size / 2
	return a.Padding + half, a.Width - a.Padding - half, a.Padding + half, a.Height - a.ReservedBottom - half
}

// Center returns the middle of the full arena rectangle
func (a Arena) Center() (float64, float64) {
	return a.Width / 2, a.Height / 2
}

// Validate reports whether a single die fits in the arena.
// An arena too small for four dice side by side is accepted.
func (a Arena) Validate() error {
	if a.Size <= 0 || a.Width <= 0 || a.Height <= 0 || a.Padding < 0 || a.ReservedBottom < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidArena, a)
	}
	left, right, top, bottom := a.Bounds()
	if left > right || top > bottom {
		return fmt.Errorf("%w: %gx%g with die size %g", ErrArenaTooSmall, a.Width, a.Height, a.Size)
	}
	return nil
}

// contain clamps b into the arena and bounces it back inward, losing some energy
func contain(b *Body, a Arena, rng Source) {
	left, right, top, bottom := a.Bounds()
	for axis, lim := range [2][2]float64{{left, right}, {top, bottom}} {
		switch {
		case b.Pos[axis] < lim[0]:
			b.Pos[axis] = lim[0]
			b.Vel[axis] = math.Abs(b.Vel[axis]) * floatBetween(rng, BounceMin, BounceMax)
		case b.Pos[axis] > lim[1]:
			b.Pos[axis] = lim[1]
			b.Vel[axis] = -math.Abs(b.Vel[axis]) * floatBetween(rng, BounceMin, BounceMax)
		}
	}
}

// collide separates two overlapping dice along the axis of least overlap and
// swaps their damped velocity on that axis. Reports whether they overlapped.
func collide(d1, d2 *Body, size float64, rng Source) bool {
	dx := math.Abs(d1.Pos.X() - d2.Pos.X())
	dy := math.Abs(d1.Pos.Y() - d2.Pos.Y())
	if dx >= size || dy >= size {
		return false
	}

	axis, overlap := 0, size-dx
	if overlapY := size - dy; overlapY <= overlap {
		axis, overlap = 1, overlapY
	}

	sign := 1.0
	if d1.Pos[axis] < d2.Pos[axis] {
		sign = -1
	}
	d1.Pos[axis] += sign * overlap / 2
	d2.Pos[axis] -= sign * overlap / 2

	v1 := d1.Vel[axis]
	d1.Vel[axis] = d2.Vel[axis]*ExchangeDamping + floatBetween(rng, -ExchangeNoise, ExchangeNoise)
	d2.Vel[axis] = v1*ExchangeDamping + floatBetween(rng, -ExchangeNoise, ExchangeNoise)
	return true
}

// collideAll runs one sweep over every pair and reports whether any overlapped
func collideAll(bodies []Body, size float64, rng Source) bool {
	hit := false
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			if collide(&bodies[i], &bodies[j], size, rng) {
				hit = true
			}
		}
	}
	return hit
}

// RelaxStats describes a final relaxation pass
type RelaxStats struct {
	Iterations int
	Converged  bool
}

// relax sweeps all pairs until a sweep finds no overlap or the pass cap is hit.
// Overlap left over when the cap is reached is accepted.
func relax(bodies []Body, size float64, rng Source) RelaxStats {
	for iter := 1; iter <= MaxRelaxPasses; iter++ {
		if !collideAll(bodies, size, rng) {
			return RelaxStats{Iterations: iter, Converged: true}
		}
	}
	return RelaxStats{Iterations: MaxRelaxPasses}
}
