package sim

import (
	"log/slog"
	"math/rand"

	"github.com/tsujio/game-gate-runner/balance"
	"github.com/tsujio/game-gate-runner/weapon"
)

const damageWindowMs = 180

// RunState is the whole mutable state of one run. It is advanced one fixed
// step at a time by Step and is not safe for concurrent use.
type RunState struct {
	cfg  Config
	log  *slog.Logger
	rng  *rand.Rand
	Seed int64
	Meta weapon.MetaLevels

	StageIndex   int
	Loop         bool
	SegmentIndex int
	GatesPassed  int
	GameTimeMs   int64
	FireTimerMs  int64

	ScrollY       float64
	TargetScrollY float64
	PlayerX       float64
	TargetPlayerX float64

	Weapon *weapon.State

	GatePairs      []*GatePair
	Monsters       []*Monster
	Bullets        []*Bullet
	Lasers         []*Laser
	ShardRays      []*ShardRay
	EnemyShots     []*EnemyShot
	Boss           *Boss
	BossShots      []*BossShot
	BossTelegraphs []*BossTelegraph
	BossLaneLasers []*BossLaneLaser
	Drops          []*Drop
	PendingBursts  []*PendingBurst
	Effects        []*Effect

	ShakeMs int64
	FlashMs int64

	bossPatternCooldownMs int64
	bossPatternIndex      int
	bossVolleyRemaining   int
	bossVolleyTimerMs     int64

	BossRewardRemaining int
	PendingStageIndex   int
	StageTransitionMs   int64

	UpgradeChoices []weapon.UpgradeChoice
	UpgradePaused  bool
	ManualPaused   bool
	GameOver       bool
	Clear          bool

	nextMonsterID int
	coinsEarned   int
	accum         *DamageAccumulator
}

// Fresh starts a new run on stage 0 with the first normal segment spawned.
func Fresh(cfg Config, meta weapon.MetaLevels, seed int64, logger *slog.Logger) *RunState {
	if logger == nil {
		logger = slog.Default()
	}
	s := &RunState{
		cfg:           cfg,
		log:           logger,
		rng:           rand.New(rand.NewSource(seed)),
		Seed:          seed,
		Meta:          meta,
		PlayerX:       cfg.Width / 2,
		TargetPlayerX: cfg.Width / 2,
		accum:         NewDamageAccumulator(damageWindowMs),
	}
	s.resetStage()
	s.SpawnNormalSegment()
	s.log.Info("run started", "seed", seed)
	return s
}

func (s *RunState) Config() Config {
	return s.cfg
}

// Theme is the visual theme selector of the current stage.
func (s *RunState) Theme() int {
	return s.StageIndex % 3
}

func (s *RunState) stage() int {
	return s.StageIndex % 3
}

func (s *RunState) hpMult() int {
	return balance.HPMult(s.Loop)
}

// Frozen reports whether the run waits for a restart.
func (s *RunState) Frozen() bool {
	return s.GameOver || s.Clear
}

// Paused reports whether the simulation body is skipped this tick.
func (s *RunState) Paused() bool {
	return s.ManualPaused || s.UpgradePaused
}

func (s *RunState) Transitioning() bool {
	return s.StageTransitionMs > 0
}

// TakeCoins returns the coins earned since the last call.
func (s *RunState) TakeCoins() int {
	c := s.coinsEarned
	s.coinsEarned = 0
	return c
}

// resetStage clears everything that belongs to one stage.
func (s *RunState) resetStage() {
	s.SegmentIndex = 0
	s.GatesPassed = 0
	s.GameTimeMs = 0
	s.ScrollY = 0
	s.TargetScrollY = 0
	s.ManualPaused = false

	s.GatePairs = nil
	s.Monsters = nil
	s.nextMonsterID = 0
	s.Bullets = nil
	s.Lasers = nil
	s.ShardRays = nil
	s.EnemyShots = nil
	s.Boss = nil
	s.BossShots = nil
	s.BossTelegraphs = nil
	s.BossLaneLasers = nil
	s.Drops = nil
	s.PendingBursts = nil
	s.Effects = nil
	s.accum.Reset()

	s.bossPatternCooldownMs = 420
	s.bossPatternIndex = 0
	s.bossVolleyRemaining = 0
	s.bossVolleyTimerMs = 0
	s.BossRewardRemaining = 0
}

// advanceStage moves to the given stage index, wrapping into the loop after
// the last stage.
func (s *RunState) advanceStage(next int) {
	if next >= s.cfg.StageCount {
		next = 0
		s.Loop = true
		s.log.Info("loop wrapped", "hp_mult", s.hpMult())
	}
	s.StageIndex = next
	s.resetStage()
	s.SpawnNormalSegment()
	s.log.Info("stage started", "stage", s.StageIndex, "loop", s.Loop)
}

func (s *RunState) randFloat() float64 {
	return s.rng.Float64()
}

func (s *RunState) randIntn(n int) int {
	return s.rng.Intn(n)
}

func (s *RunState) randBool() bool {
	return s.rng.Intn(2) == 0
}
