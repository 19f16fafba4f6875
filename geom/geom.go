// Package geom holds the exact-geometry hit tests shared by the simulation.
//
// World entities (monsters, gates, drops, the boss) keep their position in
// world space; their screen position is the world position shifted down by
// the current scroll offset. Projectiles live in screen space.
package geom

import (
	"math"

	"github.com/tsujio/game-util/mathutil"
)

type Rect struct {
	Left, Top, Right, Bottom float64
}

func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

func (r Rect) Center() *mathutil.Vector2D {
	return mathutil.NewVector2D((r.Left+r.Right)/2, (r.Top+r.Bottom)/2)
}

func (r Rect) Contains(p *mathutil.Vector2D) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Corners returns top-left, top-right, bottom-left and bottom-right.
func (r Rect) Corners() []*mathutil.Vector2D {
	return []*mathutil.Vector2D{
		mathutil.NewVector2D(r.Left, r.Top),
		mathutil.NewVector2D(r.Right, r.Top),
		mathutil.NewVector2D(r.Left, r.Bottom),
		mathutil.NewVector2D(r.Right, r.Bottom),
	}
}

// Shift moves a world-space rect into screen space.
func (r Rect) Shift(scrollY float64) Rect {
	return Rect{Left: r.Left, Top: r.Top + scrollY, Right: r.Right, Bottom: r.Bottom + scrollY}
}

// Shift moves a world-space point into screen space.
func Shift(p *mathutil.Vector2D, scrollY float64) *mathutil.Vector2D {
	return mathutil.NewVector2D(p.X, p.Y+scrollY)
}

func Dist(a, b *mathutil.Vector2D) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func CircleHit(a *mathutil.Vector2D, ar float64, b *mathutil.Vector2D, br float64) bool {
	return Dist(a, b) <= ar+br
}

// CircleRectHit tests the circle against the rect point closest to its center.
func CircleRectHit(c *mathutil.Vector2D, radius float64, r Rect) bool {
	dx := c.X - Clamp(c.X, r.Left, r.Right)
	dy := c.Y - Clamp(c.Y, r.Top, r.Bottom)
	return dx*dx+dy*dy <= radius*radius
}

// SegmentT projects p onto segment ab and returns the parameter clamped to [0, 1].
func SegmentT(p, a, b *mathutil.Vector2D) float64 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	ab2 := abx*abx + aby*aby
	if ab2 <= 0.0001 {
		return 0
	}
	return Clamp(((p.X-a.X)*abx+(p.Y-a.Y)*aby)/ab2, 0, 1)
}

// Lerp returns the point at parameter t along ab.
func Lerp(a, b *mathutil.Vector2D, t float64) *mathutil.Vector2D {
	return mathutil.NewVector2D(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
}

// CircleSegmentHit treats the segment as a capsule of half width halfWidth.
func CircleSegmentHit(c *mathutil.Vector2D, radius float64, a, b *mathutil.Vector2D, halfWidth float64) bool {
	closest := Lerp(a, b, SegmentT(c, a, b))
	dx := c.X - closest.X
	dy := c.Y - closest.Y
	rr := radius + halfWidth
	return dx*dx+dy*dy <= rr*rr
}

// Toward returns a velocity of the given speed pointing from p to target.
// Distances below 1 are treated as 1 so the result stays finite.
func Toward(p, target *mathutil.Vector2D, speed float64) *mathutil.Vector2D {
	dx := target.X - p.X
	dy := target.Y - p.Y
	l := math.Max(1, math.Hypot(dx, dy))
	return mathutil.NewVector2D(dx/l*speed, dy/l*speed)
}

func LerpScalar(a, b, t float64) float64 {
	return a + (b-a)*t
}
