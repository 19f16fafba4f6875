package sim

import (
	"fmt"
	"math"

	"github.com/samber/lo"
	"github.com/tsujio/game-gate-runner/balance"
	"github.com/tsujio/game-gate-runner/geom"
	"github.com/tsujio/game-util/mathutil"
)

const (
	upgradeDropChance = 0.176
	coinDropChance    = 0.44
)

// RollDrop maps a uniform roll in [0, 1) to a drop: 17.6% upgrade, the next
// 26.4% coin, nothing otherwise.
func RollDrop(roll float64) (DropKind, bool) {
	switch {
	case roll < upgradeDropChance:
		return DropUpgrade, true
	case roll < coinDropChance:
		return DropCoin, true
	}
	return 0, false
}

// damageMonster applies damage and records it for the aggregated number.
func (s *RunState) damageMonster(m *Monster, amount int, sparkMs int64) {
	pos := geom.Shift(m.Pos, s.ScrollY)
	m.HP -= amount
	s.accum.AddMonster(m.ID, amount, pos)
	s.addEffect(EffectHitSpark, pos, sparkMs)
}

func (s *RunState) damageBoss(amount int, at *mathutil.Vector2D) {
	s.Boss.HP -= amount
	s.accum.AddBoss(amount, s.bossCenter())
	s.addEffect(EffectHitSpark, at, 140)
}

// resolveBullets runs the bullet vs monster pass. Each bullet hits at most
// one monster per tick, plus its splash.
func (s *RunState) resolveBullets() {
	var removed []int
	for _, b := range s.Bullets {
		if b.consumed {
			continue
		}
		for _, m := range s.Monsters {
			if m.HP <= 0 {
				continue
			}
			ms := geom.Shift(m.Pos, s.ScrollY)
			if !geom.CircleHit(b.Pos, b.Radius, ms, m.Radius) {
				continue
			}
			s.damageMonster(m, b.Damage, 140)
			if m.HP <= 0 {
				removed = append(removed, m.ID)
			}
			if b.SplashRadius > 0 {
				removed = append(removed, s.splash(m, ms, b)...)
			}
			if b.PierceLeft > 0 {
				b.PierceLeft--
			} else {
				b.consumed = true
			}
			s.addParticles(ms)
			s.shake(120)
			break
		}
	}
	s.killMonsters(removed)
	s.dropConsumedBullets()
}

// splash damages every other live monster whose circle reaches the primary
// hit and returns the ids it killed.
func (s *RunState) splash(primary *Monster, at *mathutil.Vector2D, b *Bullet) []int {
	s.addBurst(EffectSplashBurst, at, b.SplashRadius, 220)
	damage := max(1, int(float64(b.Damage)*b.SplashRatio))
	var killed []int
	for _, m := range s.Monsters {
		if m == primary || m.HP <= 0 {
			continue
		}
		if geom.Dist(geom.Shift(m.Pos, s.ScrollY), at) > b.SplashRadius+m.Radius {
			continue
		}
		s.damageMonster(m, damage, 120)
		if m.HP <= 0 {
			killed = append(killed, m.ID)
		}
	}
	return killed
}

func (s *RunState) dropConsumedBullets() {
	s.Bullets = lo.Reject(s.Bullets, func(b *Bullet, _ int) bool { return b.consumed })
}

// killMonsters removes the given monsters once each, rolling a drop per
// death.
func (s *RunState) killMonsters(ids []int) {
	if len(ids) == 0 {
		return
	}
	dead := map[int]bool{}
	for _, id := range lo.Uniq(ids) {
		dead[id] = true
	}
	for _, m := range s.Monsters {
		if !dead[m.ID] {
			continue
		}
		if kind, ok := RollDrop(s.randFloat()); ok {
			s.Drops = append(s.Drops, &Drop{Pos: m.Pos.Clone(), Kind: kind})
		}
		screen := geom.Shift(m.Pos, s.ScrollY)
		s.addBurst(EffectDeathBurst, screen, 28, 260)
		s.addParticles(screen)
		s.shake(80)
	}
	s.Monsters = lo.Reject(s.Monsters, func(m *Monster, _ int) bool { return dead[m.ID] })
}

func (s *RunState) killDeadMonsters() {
	s.killMonsters(lo.FilterMap(s.Monsters, func(m *Monster, _ int) (int, bool) {
		return m.ID, m.HP <= 0
	}))
}

// resolveLasers damages, every other tick, the monster closest to the
// player inside each beam, or the boss when no monster is inside.
func (s *RunState) resolveLasers() {
	if len(s.Lasers) == 0 || (s.GameTimeMs/16)%2 != 0 {
		return
	}
	playerY := s.cfg.PlayerY()
	for _, l := range s.Lasers {
		half := l.Width * 0.5
		damage := max(1, int(float64(l.DamagePerTick)*1.15))

		var hit *Monster
		hitY := math.Inf(-1)
		for _, m := range s.Monsters {
			if m.HP <= 0 {
				continue
			}
			ms := geom.Shift(m.Pos, s.ScrollY)
			if ms.Y <= playerY && ms.Y >= 0 && math.Abs(ms.X-l.X) < m.Radius+half && ms.Y > hitY {
				hitY = ms.Y
				hit = m
			}
		}
		if hit != nil {
			s.damageMonster(hit, damage, 140)
			s.addParticles(geom.Shift(hit.Pos, s.ScrollY))
			s.shake(120)
			continue
		}
		if s.Boss != nil {
			bs := s.Boss.Rect.Shift(s.ScrollY)
			if bs.Bottom <= playerY && bs.Top >= 0 && l.X >= bs.Left-half && l.X <= bs.Right+half {
				s.damageBoss(damage, mathutil.NewVector2D(l.X, bs.Bottom))
			}
		}
	}
	s.killDeadMonsters()
}

// resolveShardRays damages, on the shard cadence, the first target along
// each ray measured from its start.
func (s *RunState) resolveShardRays() {
	if len(s.ShardRays) == 0 || (s.GameTimeMs/24)%2 != 0 {
		return
	}
	playerY := s.cfg.PlayerY()
	for _, r := range s.ShardRays {
		half := r.Width * 0.5
		bestT := math.Inf(1)
		var hit *Monster
		hitBoss := false
		var hitPos *mathutil.Vector2D

		for _, m := range s.Monsters {
			if m.HP <= 0 {
				continue
			}
			ms := geom.Shift(m.Pos, s.ScrollY)
			if ms.Y > playerY || !geom.CircleSegmentHit(ms, m.Radius, r.Start, r.End, half) {
				continue
			}
			if t := geom.SegmentT(ms, r.Start, r.End); t < bestT {
				bestT, hit, hitBoss = t, m, false
				hitPos = geom.Lerp(r.Start, r.End, t)
			}
		}
		if s.Boss != nil {
			bs := s.Boss.Rect.Shift(s.ScrollY)
			for _, p := range append([]*mathutil.Vector2D{bs.Center()}, bs.Corners()...) {
				if !geom.CircleSegmentHit(p, 8, r.Start, r.End, half) {
					continue
				}
				if t := geom.SegmentT(p, r.Start, r.End); t < bestT {
					bestT, hit, hitBoss = t, nil, true
					hitPos = geom.Lerp(r.Start, r.End, t)
				}
			}
		}

		switch {
		case hit != nil:
			s.damageMonster(hit, r.DamagePerTick, 100)
		case hitBoss:
			s.damageBoss(r.DamagePerTick, hitPos)
		}
	}
	s.killDeadMonsters()
}

// flushDamageNumbers turns the aggregated damage into floating totals.
func (s *RunState) flushDamageNumbers(dt int64) {
	for _, total := range s.accum.Advance(dt) {
		lift := lo.Ternary(total.Boss, 28.0, 20.0)
		pos := mathutil.NewVector2D(total.Pos.X, total.Pos.Y-lift)
		e := s.addEffect(EffectDamageTotal, pos, 700)
		e.Text = fmt.Sprintf("-%d", total.Amount)
		e.Vel = mathutil.NewVector2D(0, -0.7)
	}
}

// resolveBoss runs the bullet vs boss pass and handles the boss death.
// Bullets already spent on monsters this tick do not reach the boss.
func (s *RunState) resolveBoss() {
	if s.Boss == nil {
		return
	}
	bs := s.Boss.Rect.Shift(s.ScrollY)
	for _, b := range s.Bullets {
		if b.consumed || !geom.CircleRectHit(b.Pos, b.Radius, bs) {
			continue
		}
		s.damageBoss(b.Damage, bs.Center())
		b.consumed = true
		s.addParticles(bs.Center())
		s.shake(160)
	}
	s.dropConsumedBullets()

	if s.Boss.HP <= 0 {
		s.defeatBoss()
	}
}

// defeatBoss clears the boss and its attacks, pays the reward and queues
// the next stage behind the reward choices.
func (s *RunState) defeatBoss() {
	center := s.bossCenter()
	s.Boss = nil
	s.clearBossAttacks()
	s.accum.DropBoss()

	reward := balance.BossCoinReward(s.StageIndex)
	s.coinsEarned += reward
	s.addBurst(EffectDeathBurst, center, 90, 520)
	s.addParticles(center)
	s.shake(220)
	s.FlashMs = 220
	s.PendingStageIndex = s.StageIndex + 1
	s.log.Info("boss defeated", "stage", s.StageIndex, "coins", reward)

	if s.Loop && s.StageIndex == s.cfg.StageCount-1 {
		s.Clear = true
		s.log.Info("run cleared", "seed", s.Seed)
		return
	}

	if s.Weapon != nil {
		s.BossRewardRemaining = 2
		s.offerUpgrades()
		return
	}
	s.beginTransition()
}

func (s *RunState) beginTransition() {
	s.StageTransitionMs = s.cfg.TransitionMs
}
