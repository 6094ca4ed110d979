package planenav

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Rendering constants
const (
	ViewportW float64 = 500
	ViewportH float64 = 500

	// pixels per world unit
	renderScale float64 = ViewportW / (2 * ArenaExtent)
)

var (
	arenaShade    color.Color = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	boundaryShade color.Color = color.RGBA{R: 255, G: 166, B: 0, A: 255}
	goalShade     color.Color = color.RGBA{R: 102, G: 204, B: 102, A: 255}
	agentShade    color.Color = color.RGBA{R: 128, G: 102, B: 230, A: 255}
	headingShade  color.Color = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// worldToPixelCoord converts arena coordinates to viewport pixels. The
// arena origin maps to the viewport center, +x right, +z up.
func worldToPixelCoord(p Point) (float64, float64) {
	pixelX := ViewportW/2 + renderScale*p.X
	pixelY := ViewportH/2 - renderScale*p.Z

	return pixelX, pixelY
}

// Render draws a top-down view of the arena to a PNG file at path. The
// agent is filled with tint when tint is non-nil, which lets the
// cosmetic feedback layer flash episode outcomes; otherwise the
// default agent colour is used. Rendering reads environment state but
// never mutates it.
func (e *PlaneNav) Render(path string, tint color.Color) error {
	dc := gg.NewContext(int(ViewportW), int(ViewportH))
	dc.SetColor(arenaShade)
	dc.Clear()

	// Obstacle boundary
	corners := []Point{
		{X: -ArenaExtent, Z: -ArenaExtent},
		{X: -ArenaExtent, Z: ArenaExtent},
		{X: ArenaExtent, Z: ArenaExtent},
		{X: ArenaExtent, Z: -ArenaExtent},
	}
	dc.ClearPath()
	for _, corner := range corners {
		x, y := worldToPixelCoord(corner)
		dc.LineTo(x, y)
	}
	closeX, closeY := worldToPixelCoord(corners[0])
	dc.LineTo(closeX, closeY)
	dc.SetColor(boundaryShade)
	dc.SetLineWidth(5.0)
	dc.Stroke()

	// Goal region
	gx, gy := worldToPixelCoord(e.goal)
	dc.ClearPath()
	dc.DrawCircle(gx, gy, GoalRadius*renderScale)
	dc.SetColor(goalShade)
	dc.Fill()

	// Agent
	ax, ay := worldToPixelCoord(Point{X: e.pose.X, Z: e.pose.Z})
	dc.ClearPath()
	dc.DrawCircle(ax, ay, AgentRadius*renderScale)
	if tint != nil {
		dc.SetColor(tint)
	} else {
		dc.SetColor(agentShade)
	}
	dc.Fill()

	// Heading indicator
	radians := e.pose.Heading * math.Pi / 180.0
	tip := Point{
		X: e.pose.X + 2*AgentRadius*math.Sin(radians),
		Z: e.pose.Z + 2*AgentRadius*math.Cos(radians),
	}
	tipX, tipY := worldToPixelCoord(tip)
	dc.ClearPath()
	dc.DrawLine(ax, ay, tipX, tipY)
	dc.SetColor(headingShade)
	dc.SetLineWidth(2.0)
	dc.Stroke()

	return dc.SavePNG(path)
}
