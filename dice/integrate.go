package dice

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Integration constants
const (
	BaseDamping  = 0.995 // Velocity multiplier per tick at the start of a roll
	DampingRamp  = 0.4   // Extra damping reached by the end of a roll
	KickChance   = 0.08  // Per tick, per die
	KickAngle    = 0.3   // Max velocity rotation of a kick (radians)
	KickNoise    = 0.03
	TravelScale  = 22.0 // Displacement per unit velocity per reference frame
	SpinScale    = 1.1
	ResidualSpin = 0.06
)

// frame carries the timing of one tick of an episode
type frame struct {
	t       float64 // Fraction of the roll elapsed, [0,1]
	easeOut float64
	elapsed float64 // Milliseconds since the roll started
	scale   float64 // Tick length relative to the reference frame
}

func newFrame(elapsed, duration, scale float64) frame {
	t := 1.0
	if duration > 0 {
		t = math.Max(0, math.Min(elapsed/duration, 1))
	}
	return frame{
		t:       t,
		easeOut: easeOutCubic(t),
		elapsed: elapsed,
		scale:   scale,
	}
}

func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// integrate advances b by one tick.
// Damping and kicks are applied per tick; displacement and spin scale with tick length.
func integrate(b *Body, f frame, rng Source) {
	b.Vel = b.Vel.Mul(BaseDamping - DampingRamp*f.t)

	if rng.Float64() < KickChance {
		rot := mgl64.Rotate2D(floatBetween(rng, -KickAngle, KickAngle))
		b.Vel = rot.Mul2x1(b.Vel).Add(mgl64.Vec2{
			floatBetween(rng, -KickNoise, KickNoise),
			floatBetween(rng, -KickNoise, KickNoise),
		})
	}

	travel := (1 - f.easeOut) * TravelScale * f.scale
	b.Pos = b.Pos.Add(b.Vel.Mul(travel))

	// Wander fades out as the roll completes
	wave := b.Osc.Freq*f.elapsed + b.Osc.Phase
	fade := (1 - f.t) * f.scale
	b.Pos[0] += math.Sin(wave) * b.Osc.AmpX * fade * floatBetween(rng, 0.7, 1.3)
	b.Pos[1] += math.Cos(wave) * b.Osc.AmpY * fade * floatBetween(rng, 0.7, 1.3)

	spin := ((1-f.easeOut)*SpinScale + ResidualSpin) * f.scale
	b.Orientation.X += b.RotRate.X * spin
	b.Orientation.Y += b.RotRate.Y * spin
}
