package sim

import (
	"math"

	"github.com/tsujio/game-gate-runner/balance"
	"github.com/tsujio/game-gate-runner/geom"
	"github.com/tsujio/game-util/mathutil"
)

// updateMonsters runs zigzag, dash, dodge and ranged fire for every monster.
func (s *RunState) updateMonsters(dt int64) {
	stage := s.stage()
	left, right := s.cfg.PathLeft(), s.cfg.PathRight()
	playerY := s.cfg.PlayerY()

	for _, m := range s.Monsters {
		y := m.Pos.Y

		if stage >= 1 {
			if m.DashCooldownMs > 0 {
				m.DashCooldownMs = max(0, m.DashCooldownMs-dt)
			} else if m.DashMs <= 0 {
				m.DashMs = 280
				m.DashCooldownMs = 680 - int64(stage)*110
			}
		}
		if m.DashMs > 0 {
			m.DashMs = max(0, m.DashMs-dt)
			y += 11 + float64(stage)*2.5
		}

		if stage >= 2 {
			if m.DodgeCooldownMs > 0 {
				m.DodgeCooldownMs = max(0, m.DodgeCooldownMs-dt)
			} else {
				step := 26 + float64(stage)*6
				if s.PlayerX > m.Pos.X {
					step = -step
				}
				m.BaseX = geom.Clamp(m.BaseX+step, left+m.Radius, right-m.Radius)
				m.DodgeCooldownMs = 620 - int64(stage)*80
			}
		}

		amp := 20 + float64(stage)*6
		x := m.BaseX + math.Sin(float64(s.GameTimeMs)*0.009+m.ZigzagPhase)*amp
		m.Pos = mathutil.NewVector2D(geom.Clamp(x, left+m.Radius, right-m.Radius), y)

		if m.Ranged {
			m.ShotCooldownMs = max(0, m.ShotCooldownMs-dt)
			screen := geom.Shift(m.Pos, s.ScrollY)
			if m.ShotCooldownMs == 0 && screen.Y < playerY-20 && screen.Y > 0 {
				// straight down its own lane
				s.EnemyShots = append(s.EnemyShots, &EnemyShot{
					Pos:    screen,
					Vel:    mathutil.NewVector2D(0, balance.ShotSpeed(stage, m.ShotKind)),
					Radius: balance.ShotRadius(m.ShotKind),
					Kind:   m.ShotKind,
				})
				m.ShotCooldownMs = balance.ShotCooldownMs(stage)
			}
		}
	}
}
