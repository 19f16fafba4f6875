package sim

import (
	"github.com/tsujio/game-gate-runner/balance"
	"github.com/tsujio/game-gate-runner/geom"
	"github.com/tsujio/game-gate-runner/weapon"
	"github.com/tsujio/game-util/mathutil"
)

// Monster positions are world space.
type Monster struct {
	ID          int
	Pos         *mathutil.Vector2D
	Radius      float64
	HP          int
	Ranged      bool
	Role        balance.Role
	ShotKind    balance.ShotKind
	SpriteIndex int

	ShotCooldownMs  int64
	BaseX           float64
	ZigzagPhase     float64
	DashMs          int64
	DashCooldownMs  int64
	DodgeCooldownMs int64
}

// Boss rect is world space.
type Boss struct {
	Rect  geom.Rect
	HP    int
	MaxHP int
}

// Bullet is a player projectile in screen space.
type Bullet struct {
	Pos    *mathutil.Vector2D
	Vel    *mathutil.Vector2D
	Radius float64
	Damage int

	Homing      bool
	SuperHoming bool
	TargetID    int
	TargetBoss  bool

	PierceLeft   int
	StraightenMs int64

	SplashRadius float64
	SplashRatio  float64

	consumed bool
}

type Laser struct {
	X             float64
	LifeMs        int64
	DamagePerTick int
	Width         float64
	FollowPlayer  bool
}

type ShardRay struct {
	Start         *mathutil.Vector2D
	End           *mathutil.Vector2D
	LifeMs        int64
	DamagePerTick int
	Width         float64
}

// EnemyShot is a ranged monster projectile in screen space.
type EnemyShot struct {
	Pos    *mathutil.Vector2D
	Vel    *mathutil.Vector2D
	Radius float64
	Kind   balance.ShotKind
}

type BossShotType int

const (
	BossShotNormal BossShotType = iota
	BossShotBomb
	BossShotSideLaser
)

func (t BossShotType) String() string {
	switch t {
	case BossShotBomb:
		return "BOMB"
	case BossShotSideLaser:
		return "SIDE_LASER"
	}
	return "NORMAL"
}

type BossShot struct {
	Pos    *mathutil.Vector2D
	Vel    *mathutil.Vector2D
	Radius float64
	Type   BossShotType
}

// BossTelegraph is a warning line that turns into a BossShot or a
// BossLaneLaser once DelayMs runs out.
type BossTelegraph struct {
	Start   *mathutil.Vector2D
	End     *mathutil.Vector2D
	DelayMs int64
	Vel     *mathutil.Vector2D
	Radius  float64
	Type    BossShotType
}

type BossLaneLaser struct {
	X           float64
	Width       float64
	LifeMs      int64
	TotalLifeMs int64
}

// LethalHalfWidth is the half width of the band that kills the player. The
// beam shrinks from 1.3x to 0.2x of its width as it fades.
func (l *BossLaneLaser) LethalHalfWidth(playerRadius float64) float64 {
	ratio := geom.Clamp(float64(l.LifeMs)/float64(max(1, l.TotalLifeMs)), 0, 1)
	return l.Width*(0.20+1.10*ratio)*0.5 + playerRadius*0.6
}

type DropKind int

const (
	DropUpgrade DropKind = iota
	DropCoin
)

func (k DropKind) String() string {
	if k == DropUpgrade {
		return "UPGRADE"
	}
	return "COIN"
}

// Drop position is world space.
type Drop struct {
	Pos  *mathutil.Vector2D
	Kind DropKind
}

// Gate rect is world space.
type Gate struct {
	Rect  geom.Rect
	Offer weapon.Offer
	Used  bool
}

// GatePair is consumed as a whole: touching either side uses both.
type GatePair struct {
	Left  *Gate
	Right *Gate
}

func (p *GatePair) Used() bool {
	return p.Left.Used || p.Right.Used
}

func (p *GatePair) consume() {
	p.Left.Used = true
	p.Right.Used = true
}

// PendingBurst is a delayed follow-up shot. Weapon and X are captured when
// the burst is triggered.
type PendingBurst struct {
	FireAtMs int64
	Weapon   weapon.State
	X        float64
}
