// Package weapon models the player's single weapon: base stats per type,
// gate pickups, upgrade choices, meta-shop scaling and stat normalisation.
//
// A State is a plain value. Every function returns a new, normalised State
// and never mutates its argument.
package weapon

import "fmt"

type Type int

const (
	Multi Type = iota
	Spread3
	Homing
	Laser
)

// Types lists every weapon type in declaration order.
var Types = []Type{Multi, Spread3, Homing, Laser}

func (t Type) String() string {
	switch t {
	case Multi:
		return "MULTI"
	case Spread3:
		return "SPREAD3"
	case Homing:
		return "HOMING"
	case Laser:
		return "LASER"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

type State struct {
	Type            Type
	Level           int
	Damage          int
	BulletCount     int
	Pierce          int
	BurstCount      int
	FireRateMs      int64
	LaserDurationMs int64
	BulletRadius    float64
	LaserWidth      float64

	LegendarySplash      bool
	LegendarySuperHoming bool
	LegendaryShardLaser  bool
}

// HasLegendary reports whether any of the one-time specials is unlocked.
func (s State) HasLegendary() bool {
	return s.LegendarySplash || s.LegendarySuperHoming || s.LegendaryShardLaser
}

// Base returns the fresh stats of a weapon picked up from a gate.
func Base(t Type) State {
	s := State{
		Type:            t,
		Level:           1,
		Damage:          2,
		BulletCount:     1,
		BurstCount:      1,
		FireRateMs:      320,
		LaserDurationMs: 380,
		BulletRadius:    6,
		LaserWidth:      36,
	}
	switch t {
	case Multi:
		s.BulletCount = 2
	case Spread3:
		s.BulletCount = 3
	case Homing:
		s.FireRateMs = 360
	case Laser:
		s.Damage = 1
		s.FireRateMs = 900
	default:
		panic(fmt.Sprintf("weapon: unknown type %v", t))
	}
	return Normalize(s)
}

// DamageScale is the per-type multiplier applied to damage upgrades.
func DamageScale(t Type) float64 {
	switch t {
	case Multi:
		return 0.9
	case Spread3:
		return 0.8
	case Homing:
		return 1.1
	case Laser:
		return 0.6
	}
	panic(fmt.Sprintf("weapon: unknown type %v", t))
}

type limits struct {
	maxDamage, maxCount      int
	minRateMs, maxLaserMs    int64
	maxPierce, maxBurst      int
	maxRadius, maxLaserWidth float64
}

func limitsFor(t Type) limits {
	l := limits{
		maxDamage:     24,
		maxCount:      9,
		minRateMs:     240,
		maxLaserMs:    1200,
		maxPierce:     4,
		maxBurst:      3,
		maxRadius:     16,
		maxLaserWidth: 72,
	}
	if t == Laser {
		l.maxDamage = 16
		l.maxCount = 1
		l.minRateMs = 560
	}
	return l
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize clamps every numeric stat into the type's range. It is
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s State) State {
	l := limitsFor(s.Type)
	s.Level = clampInt(s.Level, 1, s.Level)
	s.Damage = clampInt(s.Damage, 1, l.maxDamage)
	s.BulletCount = clampInt(s.BulletCount, 1, l.maxCount)
	s.Pierce = clampInt(s.Pierce, 0, l.maxPierce)
	s.BurstCount = clampInt(s.BurstCount, 1, l.maxBurst)
	if s.FireRateMs < l.minRateMs {
		s.FireRateMs = l.minRateMs
	}
	if s.LaserDurationMs > l.maxLaserMs {
		s.LaserDurationMs = l.maxLaserMs
	}
	if s.LaserDurationMs < 0 {
		s.LaserDurationMs = 0
	}
	if s.BulletRadius > l.maxRadius {
		s.BulletRadius = l.maxRadius
	}
	if s.LaserWidth > l.maxLaserWidth {
		s.LaserWidth = l.maxLaserWidth
	}
	return s
}
