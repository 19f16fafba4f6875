package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsujio/game-util/mathutil"
)

func v(x, y float64) *mathutil.Vector2D { return mathutil.NewVector2D(x, y) }

func TestCircleHit(t *testing.T) {
	tests := []struct {
		name string
		a    *mathutil.Vector2D
		ar   float64
		b    *mathutil.Vector2D
		br   float64
		want bool
	}{
		{"overlapping", v(0, 0), 5, v(6, 0), 2, true},
		{"touching", v(0, 0), 3, v(5, 0), 2, true},
		{"apart", v(0, 0), 3, v(5.1, 0), 2, false},
		{"diagonal", v(0, 0), 1, v(3, 4), 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CircleHit(tt.a, tt.ar, tt.b, tt.br))
		})
	}
}

func TestCircleRectHit(t *testing.T) {
	r := NewRect(10, 10, 30, 20)
	tests := []struct {
		name   string
		c      *mathutil.Vector2D
		radius float64
		want   bool
	}{
		{"center inside", v(20, 15), 1, true},
		{"left edge", v(5, 15), 5, true},
		{"left miss", v(4.9, 15), 5, false},
		{"corner reach", v(33, 24), 5, true},
		{"corner miss", v(34, 25), 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CircleRectHit(tt.c, tt.radius, r))
		})
	}
}

func TestSegmentTClamps(t *testing.T) {
	a, b := v(0, 0), v(10, 0)
	assert.InDelta(t, 0.5, SegmentT(v(5, 3), a, b), 1e-9)
	assert.Equal(t, 0.0, SegmentT(v(-5, 0), a, b))
	assert.Equal(t, 1.0, SegmentT(v(50, 0), a, b))
	assert.Equal(t, 0.0, SegmentT(v(3, 3), a, a), "degenerate segment")
}

func TestCircleSegmentHit(t *testing.T) {
	a, b := v(0, 0), v(100, 0)
	assert.True(t, CircleSegmentHit(v(50, 6), 2, a, b, 4))
	assert.False(t, CircleSegmentHit(v(50, 6.5), 2, a, b, 4))
	assert.True(t, CircleSegmentHit(v(-4, 0), 2, a, b, 2), "past the start uses the endpoint")
	assert.False(t, CircleSegmentHit(v(-4.5, 0), 2, a, b, 2))
}

func TestShift(t *testing.T) {
	p := Shift(v(3, -100), 40)
	assert.Equal(t, 3.0, p.X)
	assert.Equal(t, -60.0, p.Y)

	r := NewRect(0, -50, 10, -40).Shift(45)
	assert.Equal(t, NewRect(0, -5, 10, 5), r)
	assert.Equal(t, 0.0, r.Center().Y)
}

func TestToward(t *testing.T) {
	vel := Toward(v(0, 0), v(3, 4), 10)
	assert.InDelta(t, 6, vel.X, 1e-9)
	assert.InDelta(t, 8, vel.Y, 1e-9)

	still := Toward(v(1, 1), v(1, 1), 10)
	assert.Equal(t, 0.0, still.X)
	assert.Equal(t, 0.0, still.Y)
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 110, 70)
	assert.True(t, r.Contains(v(10, 20)))
	assert.True(t, r.Contains(v(60, 45)))
	assert.False(t, r.Contains(v(111, 45)))
	assert.False(t, r.Contains(v(60, 19)))
}
