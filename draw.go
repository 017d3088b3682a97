package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/streetrunner/sim"
	"golang.org/x/image/colornames"
)

// Top-down view: world x maps to screen x, world -z maps to screen up, and
// the camera sits near the bottom of the screen.
const (
	pixelsPerUnit = 24.0
	cameraScreenY = baseHeight - 80
)

func toScreen(cameraZ, x, z float64) (float32, float32) {
	sx := baseWidth/2 + x*pixelsPerUnit
	sy := cameraScreenY + (z-cameraZ)*pixelsPerUnit
	return float32(sx), float32(sy)
}

func drawWorld(screen *ebiten.Image, s *sim.Session) {
	screen.Fill(colornames.Black)
	camZ := s.Course.CameraZ()
	b := s.Store.Bounds

	for i, r := range s.Store.Roads() {
		x0, y0 := toScreen(camZ, b.XMinPlayer, r.Z)
		x1, y1 := toScreen(camZ, b.XMaxPlayer, r.FarZ())
		fill := colornames.Darkslategray
		if i%2 == 1 {
			fill = colornames.Midnightblue
		}
		vector.FillRect(screen, x0, y1, x1-x0, y0-y1, fill, false)
		vector.StrokeLine(screen, x0, y1, x1, y1, 1, colornames.Dimgray, false)

		for _, p := range s.Spawner.Positions(r.ID) {
			lx, ly := toScreen(camZ, p.X, p.Z)
			vector.FillRect(screen, lx-3, ly-3, 6, 6, colornames.Lightgrey, false)
		}
	}

	if beam := s.Spawner.Beam(); beam != nil {
		l := beam.Light
		cx, cy := toScreen(camZ, l.Target.Position.X, l.Target.Position.Z)
		radius := float32(l.Position.Y * math.Tan(l.Angle) * pixelsPerUnit)
		vector.FillCircle(screen, cx, cy, radius, color.RGBA{R: 255, A: 64}, true)
		vector.StrokeCircle(screen, cx, cy, radius, 2, colornames.Crimson, true)
	}

	p := s.Store.Player
	px, py := toScreen(camZ, p.Position.X, p.Position.Z)
	vector.FillRect(screen, px-8, py-8, 16, 16, colornames.Gold, false)

	zx0, zy := toScreen(camZ, b.XMinPlayer, b.ZMin)
	zx1, _ := toScreen(camZ, b.XMaxPlayer, b.ZMin)
	vector.StrokeLine(screen, zx0, zy, zx1, zy, 2, colornames.Red, false)
}
