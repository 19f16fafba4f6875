package sim

import (
	"fmt"
	"math"

	"github.com/samber/lo"
	"github.com/tsujio/game-gate-runner/balance"
	"github.com/tsujio/game-gate-runner/geom"
	"github.com/tsujio/game-gate-runner/weapon"
	"github.com/tsujio/game-util/mathutil"
)

const dropPickupRadius = 18.0

func (s *RunState) PlayerPos() *mathutil.Vector2D {
	return mathutil.NewVector2D(s.PlayerX, s.cfg.PlayerY())
}

// Drag moves the player's target x, clamped to the path.
func (s *RunState) Drag(dx float64) {
	if s.Frozen() || s.Paused() || s.Transitioning() {
		return
	}
	r := s.cfg.PlayerRadius()
	s.TargetPlayerX = geom.Clamp(s.TargetPlayerX+dx, s.cfg.PathLeft()+r, s.cfg.PathRight()-r)
}

func (s *RunState) TogglePause() {
	if s.Frozen() || s.Transitioning() || s.UpgradePaused {
		return
	}
	s.ManualPaused = !s.ManualPaused
}

// lethalContact reports the first thing touching the player, if any.
func (s *RunState) lethalContact() (string, bool) {
	p := s.PlayerPos()
	r := s.cfg.PlayerRadius()
	switch {
	case lo.ContainsBy(s.Monsters, func(m *Monster) bool {
		return geom.CircleHit(p, r, geom.Shift(m.Pos, s.ScrollY), m.Radius)
	}):
		return "monster", true
	case lo.ContainsBy(s.BossShots, func(b *BossShot) bool { return geom.CircleHit(p, r, b.Pos, b.Radius) }):
		return "boss shot", true
	case lo.ContainsBy(s.BossLaneLasers, func(l *BossLaneLaser) bool {
		return math.Abs(p.X-l.X) <= l.LethalHalfWidth(r)
	}):
		return "lane laser", true
	case lo.ContainsBy(s.EnemyShots, func(e *EnemyShot) bool { return geom.CircleHit(p, r, e.Pos, e.Radius) }):
		return "enemy shot", true
	case s.Boss != nil && geom.CircleRectHit(p, r, s.Boss.Rect.Shift(s.ScrollY)):
		return "boss", true
	}
	return "", false
}

func (s *RunState) checkPlayerDeath() bool {
	cause, hit := s.lethalContact()
	if !hit {
		return false
	}
	s.GameOver = true
	s.log.Info("game over", "cause", cause, "stage", s.StageIndex, "loop", s.Loop)
	return true
}

func (s *RunState) collectDrops() {
	p := s.PlayerPos()
	r := s.cfg.PlayerRadius()
	s.Drops = lo.Reject(s.Drops, func(d *Drop, _ int) bool {
		ds := geom.Shift(d.Pos, s.ScrollY)
		if !geom.CircleHit(p, r, ds, dropPickupRadius) {
			return false
		}
		switch d.Kind {
		case DropUpgrade:
			if s.Weapon != nil && !s.UpgradePaused {
				s.offerUpgrades()
			}
		case DropCoin:
			amount := 1 + s.randIntn(balance.CoinDropMax(s.StageIndex))
			s.coinsEarned += amount
			s.addText(fmt.Sprintf("+%d COIN", amount), mathutil.NewVector2D(ds.X, ds.Y-18), 700)
			s.addParticles(ds)
		}
		return true
	})
}

// passGates consumes at most one touched gate pair. When both sides are
// touched the side whose center is closer in x wins, left on ties.
func (s *RunState) passGates() {
	p := s.PlayerPos()
	r := s.cfg.PlayerRadius()
	for _, pair := range s.GatePairs {
		if pair.Used() {
			continue
		}
		leftHit := geom.CircleRectHit(p, r, pair.Left.Rect.Shift(s.ScrollY))
		rightHit := geom.CircleRectHit(p, r, pair.Right.Rect.Shift(s.ScrollY))
		if !leftHit && !rightHit {
			continue
		}
		chosen := pair.Right
		if leftHit && rightHit {
			dl := math.Abs(s.PlayerX - pair.Left.Rect.Center().X)
			dr := math.Abs(s.PlayerX - pair.Right.Rect.Center().X)
			if dl <= dr {
				chosen = pair.Left
			}
		} else if leftHit {
			chosen = pair.Left
		}
		pair.consume()
		s.takeGate(chosen)
		return
	}
}

func (s *RunState) takeGate(g *Gate) {
	prev := s.Weapon
	next := weapon.ApplyGate(prev, g.Offer)
	if next != nil && g.Offer.Kind == weapon.GateWeapon {
		w := weapon.ApplyMeta(*next, s.Meta)
		next = &w
		s.log.Info("weapon acquired", "type", w.Type.String(), "damage", w.Damage, "count", w.BulletCount)
	}
	s.Weapon = next
	if prev == nil && s.Weapon != nil {
		s.ConvertRemainingGates()
	}
	s.addText(g.Offer.String(), mathutil.NewVector2D(s.PlayerX, s.cfg.PlayerY()-40), 700)
	s.addBurst(EffectGateBurst, g.Rect.Shift(s.ScrollY).Center(), 0, 260)
	s.GatesPassed++
}

// checkSegment spawns the boss once the gate quota is reached.
func (s *RunState) checkSegment() {
	if s.SegmentIndex != 0 || s.GatesPassed < s.cfg.GatesPerStage {
		return
	}
	s.SegmentIndex = 1
	if s.Boss == nil {
		s.SpawnBoss()
	}
}

func (s *RunState) offerUpgrades() {
	s.UpgradeChoices = weapon.GenerateUpgradeChoices(*s.Weapon, s.rng)
	s.UpgradePaused = len(s.UpgradeChoices) > 0
	if !s.UpgradePaused {
		s.afterChoice()
	}
}

// ChooseUpgrade applies the i-th offered card. Boss rewards chain into the
// next card and finally into the stage transition.
func (s *RunState) ChooseUpgrade(i int) bool {
	if !s.UpgradePaused || s.Frozen() || i < 0 || i >= len(s.UpgradeChoices) || s.Weapon == nil {
		return false
	}
	c := s.UpgradeChoices[i]
	w := weapon.ApplyUpgradeChoice(*s.Weapon, c)
	s.Weapon = &w
	s.addText(c.Label(w.Type), mathutil.NewVector2D(s.PlayerX, s.cfg.PlayerY()-60), 800)
	s.log.Debug("upgrade chosen", "upgrade", c.Upgrade.String(), "rarity", c.Rarity.String(), "level", w.Level)
	s.UpgradeChoices = nil
	s.UpgradePaused = false
	s.afterChoice()
	return true
}

func (s *RunState) afterChoice() {
	if s.BossRewardRemaining <= 0 {
		return
	}
	s.BossRewardRemaining--
	if s.BossRewardRemaining > 0 && s.Weapon != nil {
		s.offerUpgrades()
		return
	}
	s.BossRewardRemaining = 0
	s.beginTransition()
}
