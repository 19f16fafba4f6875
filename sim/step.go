package sim

import (
	"github.com/tsujio/game-gate-runner/balance"
	"github.com/tsujio/game-gate-runner/geom"
)

const smoothing = 0.25

// Step advances the run by one fixed tick. Frozen runs do nothing; during a
// stage transition only the countdown runs; paused runs consume the tick
// without touching any timer.
func (s *RunState) Step() {
	dt := s.cfg.TickMs
	if s.Frozen() {
		return
	}
	if s.StageTransitionMs > 0 {
		s.StageTransitionMs -= dt
		if s.StageTransitionMs <= 0 {
			s.StageTransitionMs = 0
			s.advanceStage(s.PendingStageIndex)
		}
		return
	}
	if s.Paused() {
		return
	}

	s.GameTimeMs += dt
	s.TargetScrollY += balance.ScrollSpeed(s.StageIndex)
	s.ScrollY = geom.LerpScalar(s.ScrollY, s.TargetScrollY, smoothing)
	s.PlayerX = geom.LerpScalar(s.PlayerX, s.TargetPlayerX, smoothing)

	s.resolvePendingBursts()
	s.updateBoss(dt)
	s.updateMonsters(dt)
	s.moveProjectiles(dt)
	s.decayEffects(dt)
	s.autoFire(dt)
	s.steerHoming()

	s.resolveBullets()
	s.resolveLasers()
	s.resolveShardRays()
	s.flushDamageNumbers(dt)
	s.resolveBoss()
	if s.Clear {
		return
	}

	if s.checkPlayerDeath() {
		return
	}
	s.collectDrops()
	s.passGates()
	s.checkSegment()
}
