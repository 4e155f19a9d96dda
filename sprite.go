package main

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/dice-roll-go/dice"
	"github.com/olivierh59500/dice-roll-go/internal/look"
)

var (
	pipColor     = color.RGBA{0x22, 0x22, 0x22, 0xff}
	edgeColor    = color.RGBA{0x55, 0x55, 0x55, 0xff}
	shadowColor  = color.RGBA{0x11, 0x11, 0x11, 0x80}
	shadowOffset = float32(6)
)

// sprite mirrors one die on screen. It implements dice.Sink.
type sprite struct {
	pos   mgl64.Vec2
	rot   dice.Orientation
	color color.RGBA
}

func (s *sprite) SetTransform(pos mgl64.Vec2, rot dice.Orientation) {
	s.pos = pos
	s.rot = rot
}

// draw paints the die centered on its position, showing the face nearest its orientation
func (s *sprite) draw(screen *ebiten.Image, size float64) {
	sx, sy := look.Squash(s.rot)
	w, h := float32(size*sx), float32(size*sy)
	x, y := float32(s.pos.X())-w/2, float32(s.pos.Y())-h/2

	vector.DrawFilledRect(screen, x+shadowOffset, y+shadowOffset, w, h, shadowColor, true)
	vector.DrawFilledRect(screen, x, y, w, h, s.color, true)
	vector.StrokeRect(screen, x, y, w, h, 2, edgeColor, true)

	r := float32(size) * 0.08
	for _, p := range look.Pips(dice.ClassifyFace(s.rot)) {
		cx := float32(s.pos.X()) + float32(p[0])*w*0.28
		cy := float32(s.pos.Y()) + float32(p[1])*h*0.28
		vector.DrawFilledCircle(screen, cx, cy, r, pipColor, true)
	}
}
