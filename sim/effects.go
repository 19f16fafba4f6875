package sim

import (
	"math"

	"github.com/samber/lo"
	"github.com/tsujio/game-util/mathutil"
)

type EffectKind int

const (
	EffectText EffectKind = iota
	EffectDamageTotal
	EffectGateBurst
	EffectSplashBurst
	EffectDeathBurst
	EffectMuzzleFlash
	EffectHitSpark
	EffectParticle
)

const maxParticles = 120

// Effect is a short-lived visual record in screen space. It carries no
// simulation state.
type Effect struct {
	Kind    EffectKind
	Pos     *mathutil.Vector2D
	Vel     *mathutil.Vector2D
	Text    string
	Radius  float64
	LifeMs  int64
	TotalMs int64
}

// Alpha is the remaining life fraction.
func (e *Effect) Alpha() float64 {
	if e.TotalMs <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(e.LifeMs)/float64(e.TotalMs)))
}

func (s *RunState) addEffect(kind EffectKind, pos *mathutil.Vector2D, lifeMs int64) *Effect {
	e := &Effect{
		Kind:    kind,
		Pos:     pos.Clone(),
		Vel:     mathutil.NewVector2D(0, 0),
		LifeMs:  lifeMs,
		TotalMs: lifeMs,
	}
	s.Effects = append(s.Effects, e)
	return e
}

func (s *RunState) addText(text string, pos *mathutil.Vector2D, lifeMs int64) {
	e := s.addEffect(EffectText, pos, lifeMs)
	e.Text = text
	e.Vel = mathutil.NewVector2D(0, -0.7)
}

func (s *RunState) addBurst(kind EffectKind, pos *mathutil.Vector2D, radius float64, lifeMs int64) {
	s.addEffect(kind, pos, lifeMs).Radius = radius
}

// addParticles spawns a ring of six particles, trimmed to the live cap.
func (s *RunState) addParticles(pos *mathutil.Vector2D) {
	live := lo.CountBy(s.Effects, func(e *Effect) bool { return e.Kind == EffectParticle })
	room := maxParticles - live
	for i := 0; i < 6 && i < room; i++ {
		angle := float64(i) * (2 * math.Pi / 6)
		speed := 1.5 + float64(i%3)*0.6
		e := s.addEffect(EffectParticle, pos, 220)
		e.Vel = mathutil.NewVector2D(math.Cos(angle)*speed, math.Sin(angle)*speed)
	}
}

func (s *RunState) shake(ms int64) {
	s.ShakeMs = ms
}

func (s *RunState) decayEffects(dt int64) {
	s.Effects = lo.Filter(lo.Map(s.Effects, func(e *Effect, _ int) *Effect {
		e.Pos = e.Pos.Add(e.Vel)
		e.LifeMs -= dt
		return e
	}), func(e *Effect, _ int) bool {
		return e.LifeMs > 0
	})
	s.ShakeMs = max(0, s.ShakeMs-dt)
	s.FlashMs = max(0, s.FlashMs-dt)
}
