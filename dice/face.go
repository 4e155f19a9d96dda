package dice

import "math"

type faceRotation struct {
	face int
	rot  Orientation
}

// faceTable lists the orientation at which each face points up, in face order.
var faceTable = [6]faceRotation{
	{1, Orientation{0, -math.Pi / 2}},
	{2, Orientation{math.Pi / 2, 0}},
	{3, Orientation{math.Pi, 0}},
	{4, Orientation{math.Pi, math.Pi}},
	{5, Orientation{-math.Pi / 2, 0}},
	{6, Orientation{0, math.Pi / 2}},
}

// AngularDistance returns the shortest signed difference a-b, in [-π, π).
func AngularDistance(a, b float64) float64 {
	d := math.Mod(a-b+math.Pi, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d - math.Pi
}

// ClassifyFace returns the face whose canonical orientation is nearest to o.
// Ties go to the lower face.
func ClassifyFace(o Orientation) int {
	best := faceTable[0].face
	minDist := math.Inf(1)
	for _, fr := range faceTable {
		dx := AngularDistance(o.X, fr.rot.X)
		dy := AngularDistance(o.Y, fr.rot.Y)
		if dist := dx*dx + dy*dy; dist < minDist {
			minDist = dist
			best = fr.face
		}
	}
	return best
}

// FaceOrientation returns the canonical orientation for face (1..6).
func FaceOrientation(face int) (Orientation, bool) {
	if face < 1 || face > len(faceTable) {
		return Orientation{}, false
	}
	return faceTable[face-1].rot, true
}
