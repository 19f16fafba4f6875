package sim

import (
	"io"
	"log/slog"
	"testing"

	"github.com/tsujio/game-gate-runner/weapon"
	"github.com/tsujio/game-util/mathutil"
)

const (
	testWidth  = 450
	testHeight = 800
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRun(t *testing.T, seed int64) *RunState {
	t.Helper()
	return Fresh(DefaultConfig(testWidth, testHeight), weapon.MetaLevels{}, seed, quietLogger())
}

// emptyRun is a fresh run with no spawned content.
func emptyRun(t *testing.T) *RunState {
	t.Helper()
	s := newTestRun(t, 1)
	s.GatePairs = nil
	s.Monsters = nil
	s.Drops = nil
	return s
}

// placeMonster adds a monster whose screen position is (x, y).
func placeMonster(s *RunState, x, y, radius float64, hp int) *Monster {
	m := &Monster{
		ID:     s.nextMonsterID,
		Pos:    mathutil.NewVector2D(x, y-s.ScrollY),
		Radius: radius,
		HP:     hp,
		BaseX:  x,
	}
	s.nextMonsterID++
	s.Monsters = append(s.Monsters, m)
	return m
}

func placeBullet(s *RunState, x, y float64, damage, pierce int) *Bullet {
	return s.newBullet(x, y, 0, 0, damage, 6, pierce)
}

func holdWeapon(s *RunState, t weapon.Type) {
	w := weapon.Base(t)
	s.Weapon = &w
}
