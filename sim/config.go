package sim

import "math"

type Config struct {
	Width  float64
	Height float64

	// Fixed simulation step.
	TickMs int64

	GatesPerStage int
	StageCount    int

	// Countdown between a cleared boss and the next stage.
	TransitionMs int64

	// RoleBasedHP switches monster HP from the per-segment formula to the
	// per-role balance table.
	RoleBasedHP bool

	// SpriteLabels are the loaded monster sprite labels, in index order.
	// Empty means monsters carry sprite index -1.
	SpriteLabels []string
}

func DefaultConfig(width, height float64) Config {
	return Config{
		Width:         width,
		Height:        height,
		TickMs:        16,
		GatesPerStage: 5,
		StageCount:    3,
		TransitionMs:  1400,
	}
}

func (c Config) PlayerY() float64 {
	return c.Height * 0.80
}

func (c Config) PlayerRadius() float64 {
	return math.Min(c.Width, c.Height) * 0.04025
}

func (c Config) PathWidth() float64 {
	return c.Width * 0.62
}

func (c Config) PathLeft() float64 {
	return (c.Width - c.PathWidth()) / 2
}

func (c Config) PathRight() float64 {
	return c.PathLeft() + c.PathWidth()
}

func (c Config) PathCenter() float64 {
	return (c.PathLeft() + c.PathRight()) / 2
}
