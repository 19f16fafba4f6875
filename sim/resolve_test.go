package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsujio/game-gate-runner/balance"
	"github.com/tsujio/game-gate-runner/geom"
	"github.com/tsujio/game-gate-runner/weapon"
	"github.com/tsujio/game-util/mathutil"
)

func TestRollDrop(t *testing.T) {
	cases := []struct {
		roll float64
		kind DropKind
		ok   bool
	}{
		{0, DropUpgrade, true},
		{0.175, DropUpgrade, true},
		{0.176, DropCoin, true},
		{0.30, DropCoin, true},
		{0.439, DropCoin, true},
		{0.44, 0, false},
		{0.99, 0, false},
	}
	for _, c := range cases {
		kind, ok := RollDrop(c.roll)
		assert.Equal(t, c.ok, ok, "roll %v", c.roll)
		if c.ok {
			assert.Equal(t, c.kind, kind, "roll %v", c.roll)
		}
	}
}

func TestBulletKillsMonsterSameTick(t *testing.T) {
	s := emptyRun(t)
	placeMonster(s, 200, 300, 20, 32)
	placeBullet(s, 200, 300, 40, 0)

	s.resolveBullets()

	assert.Empty(t, s.Monsters)
	assert.Empty(t, s.Bullets)
	assert.LessOrEqual(t, len(s.Drops), 1)
}

func TestBulletHitsOneMonsterPerTick(t *testing.T) {
	s := emptyRun(t)
	a := placeMonster(s, 200, 300, 20, 100)
	b := placeMonster(s, 205, 300, 20, 100)
	placeBullet(s, 202, 300, 10, 5)

	s.resolveBullets()

	assert.Equal(t, 90, a.HP)
	assert.Equal(t, 100, b.HP)
	require.Len(t, s.Bullets, 1)
	assert.Equal(t, 4, s.Bullets[0].PierceLeft)
}

func TestPierceExhaustion(t *testing.T) {
	s := emptyRun(t)
	m := placeMonster(s, 200, 300, 20, 1000)
	placeBullet(s, 200, 300, 3, 2)

	s.resolveBullets()
	s.resolveBullets()
	require.Len(t, s.Bullets, 1, "bullet survives its first two hits")
	assert.Equal(t, 0, s.Bullets[0].PierceLeft)

	s.resolveBullets()
	assert.Empty(t, s.Bullets)
	assert.Equal(t, 1000-9, m.HP)
}

func TestSplashDamage(t *testing.T) {
	s := emptyRun(t)
	primary := placeMonster(s, 200, 300, 10, 100)
	near := placeMonster(s, 260, 300, 10, 100)
	far := placeMonster(s, 200, 450, 10, 100)
	b := placeBullet(s, 200, 300, 21, 0)
	b.SplashRadius = 96
	b.SplashRatio = 0.5

	s.resolveBullets()

	assert.Equal(t, 79, primary.HP)
	assert.Equal(t, 90, near.HP)
	assert.Equal(t, 100, far.HP)
}

func TestSplashDamageHasFloor(t *testing.T) {
	s := emptyRun(t)
	placeMonster(s, 200, 300, 10, 100)
	near := placeMonster(s, 230, 300, 10, 100)
	b := placeBullet(s, 200, 300, 1, 0)
	b.SplashRadius = 96
	b.SplashRatio = 0.5

	s.resolveBullets()

	assert.Equal(t, 99, near.HP)
}

func TestSplashKillsAreRemovedOnce(t *testing.T) {
	s := emptyRun(t)
	placeMonster(s, 200, 300, 10, 5)
	placeMonster(s, 220, 300, 10, 2)
	b1 := placeBullet(s, 200, 300, 10, 0)
	b1.SplashRadius = 96
	b1.SplashRatio = 0.5

	s.resolveBullets()

	assert.Empty(t, s.Monsters)
}

func TestLaserHitsMonsterClosestToPlayer(t *testing.T) {
	s := emptyRun(t)
	far := placeMonster(s, 225, 100, 20, 100)
	near := placeMonster(s, 225, 400, 20, 100)
	s.Lasers = []*Laser{{X: 225, LifeMs: 300, DamagePerTick: 4, Width: 36}}
	s.GameTimeMs = 32

	s.resolveLasers()

	assert.Equal(t, 100, far.HP)
	assert.Equal(t, 100-4, near.HP)
}

func TestLaserCadence(t *testing.T) {
	s := emptyRun(t)
	m := placeMonster(s, 225, 400, 20, 100)
	s.Lasers = []*Laser{{X: 225, LifeMs: 300, DamagePerTick: 10, Width: 36}}
	s.GameTimeMs = 16

	s.resolveLasers()

	assert.Equal(t, 100, m.HP)
}

func TestLaserFallsThroughToBoss(t *testing.T) {
	s := emptyRun(t)
	s.Boss = &Boss{Rect: geom.NewRect(100, 50, 350, 150), HP: 100, MaxHP: 100}
	s.Lasers = []*Laser{{X: 225, LifeMs: 300, DamagePerTick: 10, Width: 36}}

	s.resolveLasers()

	assert.Equal(t, 100-11, s.Boss.HP)
}

func TestShardRayHitsFirstAlongRay(t *testing.T) {
	s := emptyRun(t)
	first := placeMonster(s, 100, 300, 15, 50)
	second := placeMonster(s, 300, 300, 15, 50)
	s.ShardRays = []*ShardRay{{
		Start:         mathutil.NewVector2D(0, 300),
		End:           mathutil.NewVector2D(450, 300),
		LifeMs:        200,
		DamagePerTick: 7,
		Width:         12,
	}}

	s.resolveShardRays()

	assert.Equal(t, 43, first.HP)
	assert.Equal(t, 50, second.HP)
}

func TestBossDefeatWithWeaponOffersRewards(t *testing.T) {
	s := emptyRun(t)
	holdWeapon(s, weapon.Multi)
	s.Boss = &Boss{Rect: geom.NewRect(100, 100, 350, 200), HP: 1, MaxHP: 500}
	s.BossShots = []*BossShot{{Pos: mathutil.NewVector2D(0, 0), Vel: mathutil.NewVector2D(0, 1), Radius: 8}}
	s.BossTelegraphs = []*BossTelegraph{{Start: mathutil.NewVector2D(0, 0), End: mathutil.NewVector2D(0, 10), DelayMs: 300}}
	s.BossLaneLasers = []*BossLaneLaser{{X: 100, Width: 40, LifeMs: 200, TotalLifeMs: 200}}
	placeBullet(s, 225, 150, 5, 0)

	s.resolveBoss()

	assert.Nil(t, s.Boss)
	assert.Empty(t, s.BossShots)
	assert.Empty(t, s.BossTelegraphs)
	assert.Empty(t, s.BossLaneLasers)
	assert.Empty(t, s.Bullets)
	assert.Equal(t, 1, s.PendingStageIndex)
	assert.True(t, s.UpgradePaused)
	assert.NotEmpty(t, s.UpgradeChoices)
	assert.Equal(t, 2, s.BossRewardRemaining)
	assert.Equal(t, balance.BossCoinReward(0), s.TakeCoins())
	assert.False(t, s.Transitioning())
}

func TestBossDefeatWithoutWeaponTransitions(t *testing.T) {
	s := emptyRun(t)
	s.Boss = &Boss{Rect: geom.NewRect(100, 100, 350, 200), HP: 3, MaxHP: 500}
	placeBullet(s, 225, 150, 5, 0)

	s.resolveBoss()

	assert.Nil(t, s.Boss)
	assert.False(t, s.UpgradePaused)
	assert.Equal(t, s.cfg.TransitionMs, s.StageTransitionMs)
	assert.Equal(t, 1, s.PendingStageIndex)
}

func TestBulletSpentOnMonsterDoesNotReachBoss(t *testing.T) {
	s := emptyRun(t)
	s.Boss = &Boss{Rect: geom.NewRect(100, 100, 350, 200), HP: 50, MaxHP: 50}
	placeMonster(s, 225, 150, 20, 100)
	placeBullet(s, 225, 150, 10, 0)

	s.resolveBullets()
	s.resolveBoss()

	assert.Equal(t, 50, s.Boss.HP)
}
