package dice

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestAngularDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"equal", 1, 1, 0},
		{"quarter", math.Pi / 2, 0, math.Pi / 2},
		{"negative quarter", 0, math.Pi / 2, -math.Pi / 2},
		{"full turn", 2 * math.Pi, 0, 0},
		{"many turns", 40*math.Pi + 0.5, 0, 0.5},
		{"across seam", 3 * math.Pi / 2, 0, -math.Pi / 2},
		{"negative turns", -7*math.Pi - 0.25, -math.Pi, -0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngularDistance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngularDistance(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAngularDistanceRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(-1e4, 1e4).Draw(t, "a")
		b := rapid.Float64Range(-1e4, 1e4).Draw(t, "b")
		d := AngularDistance(a, b)
		if d < -math.Pi || d > math.Pi {
			t.Fatalf("distance %v outside [-π, π]", d)
		}
		// a-b and d differ by whole turns
		turns := (a - b - d) / (2 * math.Pi)
		if math.Abs(turns-math.Round(turns)) > 1e-6 {
			t.Fatalf("a-b=%v and d=%v are not a whole number of turns apart", a-b, d)
		}
	})
}

func TestClassifyCanonical(t *testing.T) {
	for face := 1; face <= 6; face++ {
		rot, ok := FaceOrientation(face)
		if !ok {
			t.Fatalf("no orientation for face %d", face)
		}
		if got := ClassifyFace(rot); got != face {
			t.Errorf("ClassifyFace(%+v) = %d, expected %d", rot, got, face)
		}
	}
}

func TestFaceOrientationOutOfRange(t *testing.T) {
	for _, face := range []int{-1, 0, 7} {
		if _, ok := FaceOrientation(face); ok {
			t.Errorf("expected no orientation for face %d", face)
		}
	}
}

func TestClassifyTiesGoToLowerFace(t *testing.T) {
	tests := []struct {
		name string
		rot  Orientation
		want int
	}{
		{"between 2 and 6", Orientation{math.Pi / 4, math.Pi / 4}, 2},
		{"between 1 and 5", Orientation{-math.Pi / 4, -math.Pi / 4}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyFace(tt.rot); got != tt.want {
				t.Errorf("expected face %d, got %d", tt.want, got)
			}
		})
	}
}

func TestClassifyDegenerateInput(t *testing.T) {
	got := ClassifyFace(Orientation{math.NaN(), math.Inf(1)})
	if got < 1 || got > 6 {
		t.Errorf("expected a face in 1..6, got %d", got)
	}
}

func TestClassifyWrappedOrientation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		face := rapid.IntRange(1, 6).Draw(t, "face")
		turnsX := rapid.IntRange(-50, 50).Draw(t, "turnsX")
		turnsY := rapid.IntRange(-50, 50).Draw(t, "turnsY")
		jx := rapid.Float64Range(-0.3, 0.3).Draw(t, "jx")
		jy := rapid.Float64Range(-0.3, 0.3).Draw(t, "jy")

		rot, _ := FaceOrientation(face)
		o := Orientation{
			X: rot.X + float64(turnsX)*2*math.Pi + jx,
			Y: rot.Y + float64(turnsY)*2*math.Pi + jy,
		}
		if got := ClassifyFace(o); got != face {
			t.Fatalf("ClassifyFace(%+v) = %d, expected %d", o, got, face)
		}
	})
}

func TestClassifyDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := Orientation{
			X: rapid.Float64Range(-1e3, 1e3).Draw(t, "x"),
			Y: rapid.Float64Range(-1e3, 1e3).Draw(t, "y"),
		}
		first := ClassifyFace(o)
		if first < 1 || first > 6 {
			t.Fatalf("face %d out of range", first)
		}
		for i := 0; i < 3; i++ {
			if got := ClassifyFace(o); got != first {
				t.Fatalf("call %d returned %d, first call returned %d", i, got, first)
			}
		}
	})
}
