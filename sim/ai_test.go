package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsujio/game-gate-runner/balance"
	"github.com/tsujio/game-util/mathutil"
)

func TestMonsterMotionPerStage(t *testing.T) {
	cases := []struct {
		stage       int
		wantBaseX   float64
		wantX       float64
		wantDY      float64
		wantDashMs  int64
		wantDashCD  int64
		wantDodgeCD int64
	}{
		{stage: 0, wantBaseX: 225, wantX: 245, wantDY: 0},
		{stage: 1, wantBaseX: 225, wantX: 251, wantDY: 13.5, wantDashMs: 264, wantDashCD: 570},
		{stage: 2, wantBaseX: 263, wantX: 295, wantDY: 16, wantDashMs: 264, wantDashCD: 460, wantDodgeCD: 460},
	}
	for _, c := range cases {
		s := emptyRun(t)
		s.StageIndex = c.stage
		s.PlayerX = 100
		m := placeMonster(s, 225, 300, 20, 10)
		m.ZigzagPhase = math.Pi / 2
		y := m.Pos.Y

		s.updateMonsters(16)

		assert.InDelta(t, c.wantBaseX, m.BaseX, 1e-9, "stage %d", c.stage)
		assert.InDelta(t, c.wantX, m.Pos.X, 1e-9, "stage %d", c.stage)
		assert.InDelta(t, c.wantDY, m.Pos.Y-y, 1e-9, "stage %d", c.stage)
		assert.Equal(t, c.wantDashMs, m.DashMs, "stage %d", c.stage)
		assert.Equal(t, c.wantDashCD, m.DashCooldownMs, "stage %d", c.stage)
		assert.Equal(t, c.wantDodgeCD, m.DodgeCooldownMs, "stage %d", c.stage)
	}
}

func TestMonsterDashWaitsForCooldown(t *testing.T) {
	s := emptyRun(t)
	s.StageIndex = 1
	m := placeMonster(s, 225, 300, 20, 10)
	m.DashCooldownMs = 100
	y := m.Pos.Y

	s.updateMonsters(16)

	assert.Equal(t, int64(84), m.DashCooldownMs)
	assert.Zero(t, m.DashMs)
	assert.Equal(t, y, m.Pos.Y)
}

func TestMonsterDodgeStaysOnPath(t *testing.T) {
	s := emptyRun(t)
	s.StageIndex = 2
	s.PlayerX = 100
	m := placeMonster(s, 340, 300, 20, 10)

	s.updateMonsters(16)

	right := s.cfg.PathRight() - m.Radius
	assert.Equal(t, right, m.BaseX)
	assert.Equal(t, right, m.Pos.X)
}

func TestMonsterDodgesAwayFromPlayer(t *testing.T) {
	s := emptyRun(t)
	s.StageIndex = 2
	s.PlayerX = 300
	m := placeMonster(s, 225, 300, 20, 10)

	s.updateMonsters(16)

	assert.Equal(t, 187.0, m.BaseX)
}

func TestRangedMonsterFiring(t *testing.T) {
	cases := []struct {
		name     string
		y        float64
		cooldown int64
		wantShot bool
		wantCD   int64
	}{
		{name: "on screen above player", y: 300, wantShot: true, wantCD: balance.ShotCooldownMs(0)},
		{name: "above the screen", y: -30},
		{name: "level with player", y: 630},
		{name: "reloading", y: 300, cooldown: 500, wantCD: 484},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := emptyRun(t)
			m := placeMonster(s, 200, c.y, 20, 10)
			m.Ranged = true
			m.ShotKind = balance.ShotAxe
			m.ShotCooldownMs = c.cooldown

			s.updateMonsters(16)

			assert.Equal(t, c.wantCD, m.ShotCooldownMs)
			if !c.wantShot {
				assert.Empty(t, s.EnemyShots)
				return
			}
			require.Len(t, s.EnemyShots, 1)
			shot := s.EnemyShots[0]
			assert.Equal(t, 200.0, shot.Pos.X)
			assert.Equal(t, c.y, shot.Pos.Y)
			assert.Zero(t, shot.Vel.X)
			assert.Equal(t, balance.ShotSpeed(0, balance.ShotAxe), shot.Vel.Y)
			assert.Equal(t, balance.ShotRadius(balance.ShotAxe), shot.Radius)
			assert.Equal(t, balance.ShotAxe, shot.Kind)
		})
	}
}

// startedPattern runs the pattern machine once from an idle boss and names
// the pattern it began.
func startedPattern(t *testing.T, s *RunState) bossPattern {
	t.Helper()
	s.bossPatternCooldownMs = 0
	s.bossVolleyRemaining = 0
	s.BossTelegraphs = nil
	s.BossLaneLasers = nil

	s.runBossPatterns(16)

	if s.bossVolleyRemaining > 0 {
		return patternFan
	}
	require.Len(t, s.BossTelegraphs, 1)
	if s.BossTelegraphs[0].Type == BossShotBomb {
		return patternBomb
	}
	require.Equal(t, BossShotSideLaser, s.BossTelegraphs[0].Type)
	return patternLaneLaser
}

func TestBossPatternRoundRobin(t *testing.T) {
	cases := []struct {
		stage int
		want  []bossPattern
	}{
		{0, []bossPattern{patternFan, patternFan, patternFan}},
		{1, []bossPattern{patternFan, patternLaneLaser, patternFan, patternLaneLaser}},
		{2, []bossPattern{patternFan, patternBomb, patternLaneLaser, patternFan, patternBomb, patternLaneLaser}},
	}
	for _, c := range cases {
		s := emptyRun(t)
		s.StageIndex = c.stage
		s.SpawnBoss()

		var got []bossPattern
		for range c.want {
			got = append(got, startedPattern(t, s))
		}
		assert.Equal(t, c.want, got, "stage %d", c.stage)
	}
}

func TestBossFanVolleyCount(t *testing.T) {
	for stage, want := range []int{1, 2, 2} {
		s := emptyRun(t)
		s.StageIndex = stage
		s.SpawnBoss()

		require.Equal(t, patternFan, startedPattern(t, s))
		assert.Equal(t, want, s.bossVolleyRemaining, "stage %d", stage)
	}
}

func TestBossWaitsWhileBusy(t *testing.T) {
	s := emptyRun(t)
	s.StageIndex = 2
	s.SpawnBoss()
	require.Equal(t, patternFan, startedPattern(t, s))

	// first volley goes out; the second is still queued
	s.bossPatternCooldownMs = 0
	s.runBossPatterns(16)
	require.Len(t, s.BossTelegraphs, 3)
	assert.Equal(t, 1, s.bossVolleyRemaining)
	assert.Equal(t, 1, s.bossPatternIndex)

	s.bossVolleyRemaining = 0
	s.runBossPatterns(16)
	assert.Equal(t, 1, s.bossPatternIndex)

	s.BossTelegraphs = nil
	s.BossLaneLasers = []*BossLaneLaser{{X: 200, Width: 80, LifeMs: 100, TotalLifeMs: 480}}
	s.runBossPatterns(16)
	assert.Equal(t, 1, s.bossPatternIndex)

	s.BossLaneLasers = nil
	s.runBossPatterns(16)
	assert.Equal(t, 2, s.bossPatternIndex)
	require.Len(t, s.BossTelegraphs, 1)
	assert.Equal(t, BossShotBomb, s.BossTelegraphs[0].Type)
}

func TestBossFanAimIsFixedAtVolley(t *testing.T) {
	s := emptyRun(t)
	s.PlayerX = 120
	origin := mathutil.NewVector2D(s.cfg.PathCenter(), 100)
	s.fireBossVolley(origin)
	require.Len(t, s.BossTelegraphs, 3)

	center := s.BossTelegraphs[1]
	dx, dy := s.PlayerX-origin.X, s.cfg.PlayerY()-origin.Y
	l := math.Hypot(dx, dy)
	assert.InDelta(t, dx/l*18.75, center.Vel.X, 1e-9)
	assert.InDelta(t, dy/l*18.75, center.Vel.Y, 1e-9)
	want := center.Vel.Clone()

	s.PlayerX = 330
	for i := 0; i < 18; i++ {
		s.updateBoss(16)
	}
	require.Len(t, s.BossTelegraphs, 3)
	assert.Empty(t, s.BossShots)

	s.updateBoss(16)
	assert.Empty(t, s.BossTelegraphs)
	require.Len(t, s.BossShots, 3)
	assert.Equal(t, *want, *s.BossShots[1].Vel)
	assert.Equal(t, bossShotRadius, s.BossShots[1].Radius)
	assert.Equal(t, BossShotNormal, s.BossShots[1].Type)
	assert.Greater(t, s.BossShots[0].Vel.X, s.BossShots[2].Vel.X)
}

func TestBossTelegraphBecomesLaneLaser(t *testing.T) {
	s := emptyRun(t)
	s.BossTelegraphs = []*BossTelegraph{{
		Start:   mathutil.NewVector2D(150, -100),
		End:     mathutil.NewVector2D(150, 880),
		DelayMs: 16,
		Vel:     mathutil.NewVector2D(0, 0),
		Radius:  40,
		Type:    BossShotSideLaser,
	}}

	s.updateBoss(16)

	assert.Empty(t, s.BossTelegraphs)
	assert.Empty(t, s.BossShots)
	require.Len(t, s.BossLaneLasers, 1)
	l := s.BossLaneLasers[0]
	assert.Equal(t, 150.0, l.X)
	assert.Equal(t, 80.0, l.Width)
	assert.Equal(t, int64(bossLaneLaserMs), l.LifeMs)

	for i := 0; i < 29; i++ {
		s.updateBoss(16)
	}
	require.Len(t, s.BossLaneLasers, 1)
	s.updateBoss(16)
	assert.Empty(t, s.BossLaneLasers)
}

func TestBossBombAndLaneTelegraphs(t *testing.T) {
	s := emptyRun(t)
	s.StageIndex = 2
	s.SpawnBoss()
	require.Equal(t, patternFan, startedPattern(t, s))

	require.Equal(t, patternBomb, startedPattern(t, s))
	bomb := s.BossTelegraphs[0]
	assert.Equal(t, s.cfg.PathCenter(), bomb.Start.X)
	assert.Equal(t, int64(bossWarnMs), bomb.DelayMs)
	assert.Equal(t, bossBombRadius, bomb.Radius)

	s.Boss = nil
	for i := 0; i < 19; i++ {
		s.updateBoss(16)
	}
	require.Len(t, s.BossShots, 1)
	assert.Equal(t, BossShotBomb, s.BossShots[0].Type)
	assert.Equal(t, 10.0, s.BossShots[0].Vel.Y)

	s.SpawnBoss()
	s.BossShots = nil
	require.Equal(t, patternLaneLaser, startedPattern(t, s))
	lane := s.BossTelegraphs[0]
	pw := s.cfg.PathWidth()
	assert.Contains(t, []float64{s.cfg.PathLeft() + pw*0.25, s.cfg.PathLeft() + pw*0.75}, lane.Start.X)
	assert.Equal(t, int64(bossLaneWarnMs), lane.DelayMs)
	assert.Equal(t, pw*0.25, lane.Radius)
}
