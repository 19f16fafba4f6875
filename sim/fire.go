package sim

import (
	"math"

	"github.com/samber/lo"
	"github.com/tsujio/game-gate-runner/weapon"
	"github.com/tsujio/game-util/mathutil"
)

const (
	burstIntervalMs = 90
	onScreenMargin  = 80.0
)

// hasTarget reports whether any monster or the boss is close enough to the
// screen to be worth shooting at.
func (s *RunState) hasTarget() bool {
	h := s.cfg.Height
	if lo.ContainsBy(s.Monsters, func(m *Monster) bool {
		y := m.Pos.Y + s.ScrollY
		return y >= -onScreenMargin && y <= h+onScreenMargin
	}) {
		return true
	}
	if s.Boss != nil {
		r := s.Boss.Rect.Shift(s.ScrollY)
		return r.Bottom >= -onScreenMargin && r.Top <= h+onScreenMargin
	}
	return false
}

func (s *RunState) autoFire(dt int64) {
	s.FireTimerMs += dt
	w := s.Weapon
	if w == nil || s.FireTimerMs < w.FireRateMs || !s.hasTarget() {
		return
	}
	s.FireTimerMs = 0
	s.fire(*w, s.PlayerX)
	if w.Type != weapon.Laser && w.BurstCount > 1 {
		for i := 1; i < w.BurstCount; i++ {
			s.PendingBursts = append(s.PendingBursts, &PendingBurst{
				FireAtMs: s.GameTimeMs + int64(i)*burstIntervalMs,
				Weapon:   *w,
				X:        s.PlayerX,
			})
		}
	}
}

func (s *RunState) resolvePendingBursts() {
	isDue := func(pb *PendingBurst, _ int) bool { return pb.FireAtMs <= s.GameTimeMs }
	due := lo.Filter(s.PendingBursts, isDue)
	s.PendingBursts = lo.Reject(s.PendingBursts, isDue)
	for _, pb := range due {
		s.fire(pb.Weapon, pb.X)
	}
}

// fire spawns the projectiles of one trigger pull from x.
func (s *RunState) fire(w weapon.State, x float64) {
	playerY := s.cfg.PlayerY()
	switch w.Type {
	case weapon.Laser:
		s.Lasers = append(s.Lasers, &Laser{
			X:             x,
			LifeMs:        w.LaserDurationMs,
			DamagePerTick: w.Damage,
			Width:         w.LaserWidth,
			FollowPlayer:  true,
		})
		if w.LegendaryShardLaser && s.randFloat() < 0.20 {
			s.spawnShardRays(w)
		}
	case weapon.Spread3:
		count := max(3, w.BulletCount)
		halfAngle := math.Min(22+float64(count-3)*4.2, 68)
		mid := float64(count-1) / 2
		for i := 0; i < count; i++ {
			t := 0.0
			if mid != 0 {
				t = (float64(i) - mid) / mid
			}
			rad := radians(t * halfAngle)
			const speed = 11.0
			b := s.newBullet(x, playerY, math.Sin(rad)*speed, -math.Cos(rad)*speed,
				max(1, int(float64(w.Damage)*0.85)), w.BulletRadius*1.15, w.Pierce)
			b.StraightenMs = 300
			if w.LegendarySplash {
				b.SplashRadius = math.Max(104, w.BulletRadius*19.2)
				b.SplashRatio = 0.55
			}
		}
	case weapon.Multi:
		count := w.BulletCount
		spread := 0.0
		if count > 1 {
			spread = math.Min(14+float64(count-1)*2, 140/float64(count-1))
		}
		for i := 0; i < count; i++ {
			offset := (float64(i) - float64(count-1)/2) * spread
			b := s.newBullet(x+offset, playerY, 0, -14,
				max(1, int(float64(w.Damage)*1.1)), w.BulletRadius*0.9, w.Pierce)
			if w.LegendarySplash {
				b.SplashRadius = math.Max(96, w.BulletRadius*18)
				b.SplashRatio = 0.5
			}
		}
	case weapon.Homing:
		count := max(1, w.BulletCount)
		spread := 12 + float64(count-1)*2
		for i := 0; i < count; i++ {
			offset := (float64(i) - float64(count-1)/2) * spread
			b := s.newBullet(x+offset, playerY, 0, -11, w.Damage, w.BulletRadius, w.Pierce)
			b.Homing = true
			b.SuperHoming = w.LegendarySuperHoming
		}
	default:
		panic("sim: unknown weapon type " + w.Type.String())
	}

	muzzle := mathutil.NewVector2D(x, playerY-s.cfg.PlayerRadius()*0.8)
	s.addEffect(EffectMuzzleFlash, muzzle, 120)
	s.addParticles(mathutil.NewVector2D(x, playerY-s.cfg.PlayerRadius()))
}

func (s *RunState) newBullet(x, y, vx, vy float64, damage int, radius float64, pierce int) *Bullet {
	b := &Bullet{
		Pos:        mathutil.NewVector2D(x, y),
		Vel:        mathutil.NewVector2D(vx, vy),
		Radius:     radius,
		Damage:     damage,
		TargetID:   -1,
		PierceLeft: pierce,
	}
	s.Bullets = append(s.Bullets, b)
	return b
}

// spawnShardRays adds six screen-crossing rays through random points above
// the player.
func (s *RunState) spawnShardRays(w weapon.State) {
	damage := max(1, int(float64(w.Damage)*0.55+float64(w.Level)*0.15))
	width := math.Max(10, w.LaserWidth*0.60)
	life := max(220, int64(float64(w.LaserDurationMs)*0.70))
	length := math.Max(s.cfg.Width, s.cfg.Height) * 2.2
	for i := 0; i < 6; i++ {
		sx := s.randFloat() * s.cfg.Width
		sy := s.randFloat() * s.cfg.PlayerY()
		rad := radians(s.randFloat() * 360)
		dx := math.Cos(rad) * length
		dy := math.Sin(rad) * length
		s.ShardRays = append(s.ShardRays, &ShardRay{
			Start:         mathutil.NewVector2D(sx-dx, sy-dy),
			End:           mathutil.NewVector2D(sx+dx, sy+dy),
			LifeMs:        life,
			DamagePerTick: damage,
			Width:         width,
		})
	}
}
