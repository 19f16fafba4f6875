package sim

import (
	"github.com/samber/lo"
	"github.com/tsujio/game-util/mathutil"
)

// DamageTotal is one flushed damage number.
type DamageTotal struct {
	MonsterID int
	Boss      bool
	Amount    int
	Pos       *mathutil.Vector2D
}

// DamageAccumulator buffers damage per monster id and for the boss, and
// flushes one total per target every window.
type DamageAccumulator struct {
	WindowMs  int64
	elapsedMs int64

	order     []int
	byMonster map[int]int
	posByID   map[int]*mathutil.Vector2D

	boss    int
	bossPos *mathutil.Vector2D
}

func NewDamageAccumulator(windowMs int64) *DamageAccumulator {
	return &DamageAccumulator{
		WindowMs:  windowMs,
		byMonster: map[int]int{},
		posByID:   map[int]*mathutil.Vector2D{},
	}
}

// AddMonster records damage on a monster at its current screen position.
func (a *DamageAccumulator) AddMonster(id, amount int, pos *mathutil.Vector2D) {
	if _, ok := a.byMonster[id]; !ok {
		a.order = append(a.order, id)
	}
	a.byMonster[id] += amount
	a.posByID[id] = pos.Clone()
}

func (a *DamageAccumulator) AddBoss(amount int, pos *mathutil.Vector2D) {
	a.boss += amount
	a.bossPos = pos.Clone()
}

// DropBoss discards pending boss damage.
func (a *DamageAccumulator) DropBoss() {
	a.boss = 0
	a.bossPos = nil
}

func (a *DamageAccumulator) Empty() bool {
	return len(a.order) == 0 && a.boss == 0
}

// Advance moves the window clock. When the window elapses it returns the
// totals in first-hit order, boss last, and resets.
func (a *DamageAccumulator) Advance(dt int64) []DamageTotal {
	a.elapsedMs += dt
	if a.elapsedMs < a.WindowMs {
		return nil
	}
	totals := lo.FilterMap(a.order, func(id int, _ int) (DamageTotal, bool) {
		amount := a.byMonster[id]
		return DamageTotal{MonsterID: id, Amount: amount, Pos: a.posByID[id]}, amount > 0
	})
	if a.boss > 0 && a.bossPos != nil {
		totals = append(totals, DamageTotal{MonsterID: -1, Boss: true, Amount: a.boss, Pos: a.bossPos})
	}
	a.Reset()
	return totals
}

func (a *DamageAccumulator) Reset() {
	a.elapsedMs = 0
	a.order = nil
	a.byMonster = map[int]int{}
	a.posByID = map[int]*mathutil.Vector2D{}
	a.boss = 0
	a.bossPos = nil
}
