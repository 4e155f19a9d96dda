package dice

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"pgregory.net/rapid"
)

// constSource always returns the same value
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestArenaBounds(t *testing.T) {
	a := DefaultArena()
	left, right, top, bottom := a.Bounds()
	if left != 90 || right != 710 || top != 90 || bottom != 420 {
		t.Errorf("expected bounds (90, 710, 90, 420), got (%v, %v, %v, %v)", left, right, top, bottom)
	}
}

func TestArenaValidate(t *testing.T) {
	tests := []struct {
		name  string
		arena Arena
		want  error
	}{
		{"default", DefaultArena(), nil},
		{"zero size", Arena{Width: 800, Height: 600, Size: 0}, ErrInvalidArena},
		{"negative padding", Arena{Width: 800, Height: 600, Size: 10, Padding: -1}, ErrInvalidArena},
		{"too narrow", Arena{Width: 100, Height: 600, Size: 160}, ErrArenaTooSmall},
		{"reserved eats height", Arena{Width: 800, Height: 300, Size: 160, ReservedBottom: 200}, ErrArenaTooSmall},
		{"exact fit", Arena{Width: 160, Height: 160, Size: 160}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.arena.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestContain(t *testing.T) {
	a := DefaultArena()
	tests := []struct {
		name    string
		pos     mgl64.Vec2
		vel     mgl64.Vec2
		wantPos mgl64.Vec2
		// expected sign of the velocity after the bounce, 0 if unchanged
		signX, signY float64
	}{
		{"inside", mgl64.Vec2{400, 300}, mgl64.Vec2{1, -1}, mgl64.Vec2{400, 300}, 0, 0},
		{"left wall", mgl64.Vec2{10, 300}, mgl64.Vec2{-2, 0.5}, mgl64.Vec2{90, 300}, 1, 0},
		{"right wall", mgl64.Vec2{900, 300}, mgl64.Vec2{2, 0.5}, mgl64.Vec2{710, 300}, -1, 0},
		{"top wall", mgl64.Vec2{400, -50}, mgl64.Vec2{0.5, -3}, mgl64.Vec2{400, 90}, 0, 1},
		{"bottom wall", mgl64.Vec2{400, 590}, mgl64.Vec2{0.5, 3}, mgl64.Vec2{400, 420}, 0, -1},
		{"corner", mgl64.Vec2{-10, 700}, mgl64.Vec2{-1, 1}, mgl64.Vec2{90, 420}, 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Body{Pos: tt.pos, Vel: tt.vel}
			contain(&b, a, constSource(0.5))

			if b.Pos != tt.wantPos {
				t.Errorf("expected position %v, got %v", tt.wantPos, b.Pos)
			}
			for axis, sign := range [2]float64{tt.signX, tt.signY} {
				if sign == 0 {
					if b.Vel[axis] != tt.vel[axis] {
						t.Errorf("axis %d: expected velocity %v untouched, got %v", axis, tt.vel[axis], b.Vel[axis])
					}
					continue
				}
				// constSource(0.5) gives a restitution of 0.85
				want := sign * math.Abs(tt.vel[axis]) * 0.85
				if math.Abs(b.Vel[axis]-want) > 1e-12 {
					t.Errorf("axis %d: expected velocity %v, got %v", axis, want, b.Vel[axis])
				}
			}
		})
	}
}

func TestContainKeepsDiceInBounds(t *testing.T) {
	a := DefaultArena()
	left, right, top, bottom := a.Bounds()
	rapid.Check(t, func(t *rapid.T) {
		b := Body{
			Pos: mgl64.Vec2{
				rapid.Float64Range(-5000, 5000).Draw(t, "x"),
				rapid.Float64Range(-5000, 5000).Draw(t, "y"),
			},
			Vel: mgl64.Vec2{
				rapid.Float64Range(-10, 10).Draw(t, "vx"),
				rapid.Float64Range(-10, 10).Draw(t, "vy"),
			},
		}
		speed := b.Vel.Len()
		contain(&b, a, rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed"))))

		if b.Pos.X() < left || b.Pos.X() > right || b.Pos.Y() < top || b.Pos.Y() > bottom {
			t.Fatalf("position %v outside [%v,%v]x[%v,%v]", b.Pos, left, right, top, bottom)
		}
		if b.Vel.Len() > speed+1e-9 {
			t.Fatalf("bounce gained energy: %v -> %v", speed, b.Vel.Len())
		}
	})
}

func TestCollideApart(t *testing.T) {
	d1 := Body{Pos: mgl64.Vec2{100, 100}, Vel: mgl64.Vec2{1, 1}}
	d2 := Body{Pos: mgl64.Vec2{260, 150}, Vel: mgl64.Vec2{-1, -1}}
	before1, before2 := d1, d2

	if collide(&d1, &d2, 160, constSource(0.5)) {
		t.Fatal("expected no collision for dice exactly one size apart")
	}
	if d1 != before1 || d2 != before2 {
		t.Error("expected bodies untouched")
	}
}

func TestCollideSmallerOverlapAxis(t *testing.T) {
	// 150 apart on x, 20 apart on y: overlap 10 on x, 140 on y
	d1 := Body{Pos: mgl64.Vec2{100, 100}, Vel: mgl64.Vec2{2, 5}}
	d2 := Body{Pos: mgl64.Vec2{250, 120}, Vel: mgl64.Vec2{-1, 7}}

	if !collide(&d1, &d2, 160, constSource(0.5)) {
		t.Fatal("expected collision")
	}
	if d1.Pos != (mgl64.Vec2{95, 100}) || d2.Pos != (mgl64.Vec2{255, 120}) {
		t.Errorf("expected separation along x, got %v and %v", d1.Pos, d2.Pos)
	}
	// constSource(0.5) draws zero noise
	if d1.Vel[0] != -0.7 || d2.Vel[0] != 1.4 {
		t.Errorf("expected exchanged x velocity (-0.7, 1.4), got (%v, %v)", d1.Vel[0], d2.Vel[0])
	}
	if d1.Vel[1] != 5 || d2.Vel[1] != 7 {
		t.Errorf("expected y velocity untouched, got (%v, %v)", d1.Vel[1], d2.Vel[1])
	}
}

func TestRelaxSeparatesIdenticalPositions(t *testing.T) {
	bodies := []Body{
		{Pos: mgl64.Vec2{400, 300}},
		{Pos: mgl64.Vec2{400, 300}},
	}
	stats := relax(bodies, 160, rand.New(rand.NewSource(1)))

	if !stats.Converged {
		t.Fatalf("expected convergence, got %+v", stats)
	}
	dx := math.Abs(bodies[0].Pos.X() - bodies[1].Pos.X())
	dy := math.Abs(bodies[0].Pos.Y() - bodies[1].Pos.Y())
	if dx < 160 && dy < 160 {
		t.Errorf("expected separation of at least 160 on one axis, got dx=%v dy=%v", dx, dy)
	}
	if stats.Iterations != 2 {
		t.Errorf("expected one resolving pass and one clean pass, got %d", stats.Iterations)
	}
}

func TestRelaxBoundedEffort(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bodies := make([]Body, Count)
		for i := range bodies {
			bodies[i].Pos = mgl64.Vec2{
				rapid.Float64Range(0, 400).Draw(t, "x"),
				rapid.Float64Range(0, 400).Draw(t, "y"),
			}
		}
		stats := relax(bodies, 160, rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed"))))

		if stats.Iterations < 1 || stats.Iterations > MaxRelaxPasses {
			t.Fatalf("iterations %d outside [1,%d]", stats.Iterations, MaxRelaxPasses)
		}
		if !stats.Converged {
			return
		}
		for i := range bodies {
			for j := i + 1; j < len(bodies); j++ {
				dx := math.Abs(bodies[i].Pos.X() - bodies[j].Pos.X())
				dy := math.Abs(bodies[i].Pos.Y() - bodies[j].Pos.Y())
				if dx < 160 && dy < 160 {
					t.Fatalf("dice %d and %d overlap after converged relaxation", i, j)
				}
			}
		}
	})
}

func TestRelaxStopsAtPassCap(t *testing.T) {
	// Each sweep only halves the overlap along the row, so it never clears
	bodies := []Body{
		{Pos: mgl64.Vec2{200, 300}},
		{Pos: mgl64.Vec2{300, 300}},
		{Pos: mgl64.Vec2{400, 300}},
		{Pos: mgl64.Vec2{500, 300}},
	}
	stats := relax(bodies, 160, constSource(0.5))

	if stats != (RelaxStats{Iterations: MaxRelaxPasses}) {
		t.Fatalf("expected the pass cap without convergence, got %+v", stats)
	}
	for i := 1; i < len(bodies); i++ {
		if bodies[i].Pos.X() <= bodies[i-1].Pos.X() {
			t.Errorf("expected the row order kept, die %d at %v before die %d at %v", i-1, bodies[i-1].Pos, i, bodies[i].Pos)
		}
	}
}
