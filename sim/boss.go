package sim

import (
	"math"

	"github.com/samber/lo"
	"github.com/tsujio/game-util/mathutil"
)

const (
	bossWarnMs       = 300
	bossLaneWarnMs   = 720
	bossLaneLaserMs  = 480
	bossShotRadius   = 55.0
	bossBombRadius   = 100.0
	bossShotMaxExtra = 100.0
)

type bossPattern int

const (
	patternFan bossPattern = iota
	patternBomb
	patternLaneLaser
)

// bossPatterns lists the patterns a stage cycles through.
func bossPatterns(stage int) []bossPattern {
	switch stage {
	case 0:
		return []bossPattern{patternFan}
	case 1:
		return []bossPattern{patternFan, patternLaneLaser}
	default:
		return []bossPattern{patternFan, patternBomb, patternLaneLaser}
	}
}

func (s *RunState) bossBusy() bool {
	return s.bossVolleyRemaining > 0 || len(s.BossTelegraphs) > 0 || len(s.BossLaneLasers) > 0
}

// updateBoss runs the pattern state machine and turns due telegraphs into
// live shots. It also moves every hostile projectile.
func (s *RunState) updateBoss(dt int64) {
	if s.Boss != nil {
		s.runBossPatterns(dt)
	}

	h := s.cfg.Height
	s.BossShots = lo.Filter(lo.Map(s.BossShots, func(b *BossShot, _ int) *BossShot {
		b.Pos = b.Pos.Add(b.Vel)
		return b
	}), func(b *BossShot, _ int) bool {
		return b.Pos.Y <= h+bossShotMaxExtra
	})
	s.EnemyShots = lo.Filter(lo.Map(s.EnemyShots, func(e *EnemyShot, _ int) *EnemyShot {
		e.Pos = e.Pos.Add(e.Vel)
		return e
	}), func(e *EnemyShot, _ int) bool {
		return e.Pos.Y <= h+120
	})
	s.BossLaneLasers = lo.Filter(lo.Map(s.BossLaneLasers, func(l *BossLaneLaser, _ int) *BossLaneLaser {
		l.LifeMs -= dt
		return l
	}), func(l *BossLaneLaser, _ int) bool {
		return l.LifeMs > 0
	})

	waiting := s.BossTelegraphs[:0]
	for _, t := range s.BossTelegraphs {
		t.DelayMs -= dt
		if t.DelayMs > 0 {
			waiting = append(waiting, t)
			continue
		}
		if t.Type == BossShotSideLaser {
			s.BossLaneLasers = append(s.BossLaneLasers, &BossLaneLaser{
				X:           t.Start.X,
				Width:       t.Radius * 2,
				LifeMs:      bossLaneLaserMs,
				TotalLifeMs: bossLaneLaserMs,
			})
		} else {
			s.BossShots = append(s.BossShots, &BossShot{
				Pos:    t.Start.Clone(),
				Vel:    t.Vel.Clone(),
				Radius: t.Radius,
				Type:   t.Type,
			})
		}
	}
	s.BossTelegraphs = waiting
}

func (s *RunState) runBossPatterns(dt int64) {
	stage := s.stage()
	spawnY := s.Boss.Rect.Shift(s.ScrollY).Bottom - 10
	centerX := s.cfg.PathCenter()

	if s.bossPatternCooldownMs > 0 {
		s.bossPatternCooldownMs -= dt
	}
	if s.bossVolleyRemaining > 0 {
		s.bossVolleyTimerMs -= dt
		if s.bossVolleyTimerMs <= 0 {
			s.bossVolleyTimerMs = []int64{320, 300, 280}[stage]
			s.fireBossVolley(mathutil.NewVector2D(centerX, spawnY))
			s.bossVolleyRemaining--
		}
	}

	if s.bossPatternCooldownMs > 0 || s.bossBusy() {
		return
	}
	patterns := bossPatterns(stage)
	switch patterns[s.bossPatternIndex%len(patterns)] {
	case patternFan:
		s.bossVolleyRemaining = lo.Ternary(stage == 0, 1, 2)
		s.bossVolleyTimerMs = 0
		s.bossPatternCooldownMs = []int64{980, 900, 820}[stage]
	case patternBomb:
		bombSpeed := 8.0 + float64(stage)
		s.BossTelegraphs = append(s.BossTelegraphs, &BossTelegraph{
			Start:   mathutil.NewVector2D(centerX, spawnY),
			End:     mathutil.NewVector2D(centerX, s.cfg.Height*1.1),
			DelayMs: bossWarnMs,
			Vel:     mathutil.NewVector2D(0, bombSpeed),
			Radius:  bossBombRadius,
			Type:    BossShotBomb,
		})
		s.bossPatternCooldownMs = 780
	case patternLaneLaser:
		pw := s.cfg.PathWidth()
		laneX := lo.Ternary(s.randBool(), s.cfg.PathLeft()+pw*0.25, s.cfg.PathLeft()+pw*0.75)
		s.BossTelegraphs = append(s.BossTelegraphs, &BossTelegraph{
			Start:   mathutil.NewVector2D(laneX, spawnY),
			End:     mathutil.NewVector2D(laneX, s.cfg.Height*1.1),
			DelayMs: bossLaneWarnMs,
			Vel:     mathutil.NewVector2D(0, 0),
			Radius:  pw * 0.25,
			Type:    BossShotSideLaser,
		})
		s.bossPatternCooldownMs = lo.Ternary[int64](stage == 1, 850, 780)
	}
	s.bossPatternIndex++
}

// fireBossVolley telegraphs three shots fanned around the direction to the
// player at volley time.
func (s *RunState) fireBossVolley(origin *mathutil.Vector2D) {
	stage := s.stage()
	spread := lo.Ternary(stage == 2, 16.0, 12.0)
	speed := 18.75 + float64(stage)*2.25

	dx := s.PlayerX - origin.X
	dy := s.cfg.PlayerY() - origin.Y
	l := math.Max(1, math.Hypot(dx, dy))
	dirX, dirY := dx/l, dy/l
	perpX, perpY := -dirY, dirX

	for _, a := range []float64{-spread, 0, spread} {
		rad := radians(a)
		vx := (dirX*math.Cos(rad) + perpX*math.Sin(rad)) * speed
		vy := (dirY*math.Cos(rad) + perpY*math.Sin(rad)) * speed
		vl := math.Max(1, math.Hypot(vx, vy))
		reach := s.cfg.Height * 1.1
		s.BossTelegraphs = append(s.BossTelegraphs, &BossTelegraph{
			Start:   origin.Clone(),
			End:     mathutil.NewVector2D(origin.X+vx/vl*reach, origin.Y+vy/vl*reach),
			DelayMs: bossWarnMs,
			Vel:     mathutil.NewVector2D(vx, vy),
			Radius:  bossShotRadius,
			Type:    BossShotNormal,
		})
	}
}

// clearBossAttacks purges every boss projectile, telegraph and lane laser.
func (s *RunState) clearBossAttacks() {
	s.BossShots = nil
	s.BossTelegraphs = nil
	s.BossLaneLasers = nil
	s.bossVolleyRemaining = 0
}
