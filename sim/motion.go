package sim

import (
	"github.com/samber/lo"
	"github.com/tsujio/game-gate-runner/geom"
	"github.com/tsujio/game-util/mathutil"
)

const (
	homingSpeed      = 12.5
	superHomingSpeed = 16.5
)

// moveProjectiles advances player projectiles and expires them by lifetime
// or by leaving the screen band.
func (s *RunState) moveProjectiles(dt int64) {
	h := s.cfg.Height
	s.Bullets = lo.Filter(lo.Map(s.Bullets, func(b *Bullet, _ int) *Bullet {
		b.Pos = b.Pos.Add(b.Vel)
		if !b.Homing && b.StraightenMs > 0 {
			b.StraightenMs = max(0, b.StraightenMs-dt)
			if b.StraightenMs == 0 {
				b.Vel = mathutil.NewVector2D(0, b.Vel.Y)
			}
		}
		return b
	}), func(b *Bullet, _ int) bool {
		return b.Pos.Y >= -200 && b.Pos.Y <= h+200
	})

	s.Lasers = lo.Filter(lo.Map(s.Lasers, func(l *Laser, _ int) *Laser {
		if l.FollowPlayer {
			l.X = s.PlayerX
		}
		l.LifeMs -= dt
		return l
	}), func(l *Laser, _ int) bool {
		return l.LifeMs > 0
	})

	s.ShardRays = lo.Filter(lo.Map(s.ShardRays, func(r *ShardRay, _ int) *ShardRay {
		r.LifeMs -= dt
		return r
	}), func(r *ShardRay, _ int) bool {
		return r.LifeMs > 0
	})
}

func (s *RunState) monsterByID(id int) *Monster {
	m, ok := lo.Find(s.Monsters, func(m *Monster) bool { return m.ID == id })
	return lo.Ternary(ok, m, nil)
}

// nearestMonster returns the monster closest to p among those at or above
// the player line, in screen space.
func (s *RunState) nearestMonster(p *mathutil.Vector2D) *Monster {
	playerY := s.cfg.PlayerY()
	candidates := lo.Filter(s.Monsters, func(m *Monster, _ int) bool {
		return m.HP > 0 && m.Pos.Y+s.ScrollY <= playerY
	})
	if len(candidates) == 0 {
		return nil
	}
	return lo.MinBy(candidates, func(a, b *Monster) bool {
		return geom.Dist(geom.Shift(a.Pos, s.ScrollY), p) < geom.Dist(geom.Shift(b.Pos, s.ScrollY), p)
	})
}

func (s *RunState) bossCenter() *mathutil.Vector2D {
	if s.Boss == nil {
		return nil
	}
	return s.Boss.Rect.Shift(s.ScrollY).Center()
}

// steerHoming redirects homing bullets. Super homing bullets chase the
// nearest target every tick; the others keep their lock until the locked
// target is gone and then acquire a new one.
func (s *RunState) steerHoming() {
	for _, b := range s.Bullets {
		if !b.Homing {
			continue
		}
		var target *mathutil.Vector2D
		if b.SuperHoming {
			if m := s.nearestMonster(b.Pos); m != nil {
				target = geom.Shift(m.Pos, s.ScrollY)
			} else {
				target = s.bossCenter()
			}
			if target != nil {
				b.Vel = geom.Toward(b.Pos, target, superHomingSpeed)
			}
			continue
		}

		switch {
		case b.TargetBoss && s.Boss != nil:
			target = s.bossCenter()
		case b.TargetID >= 0:
			if m := s.monsterByID(b.TargetID); m != nil {
				target = geom.Shift(m.Pos, s.ScrollY)
			}
		}
		if target == nil {
			b.TargetID, b.TargetBoss = -1, false
			if m := s.nearestMonster(b.Pos); m != nil {
				b.TargetID = m.ID
				target = geom.Shift(m.Pos, s.ScrollY)
			} else if s.Boss != nil {
				b.TargetBoss = true
				target = s.bossCenter()
			}
		}
		if target != nil {
			b.Vel = geom.Toward(b.Pos, target, homingSpeed)
		}
	}
}
