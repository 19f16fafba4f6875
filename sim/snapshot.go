package sim

import (
	"github.com/samber/lo"
	"github.com/tsujio/game-gate-runner/balance"
	"github.com/tsujio/game-gate-runner/geom"
	"github.com/tsujio/game-gate-runner/weapon"
)

var themeNames = []string{"FOREST", "SWAMP", "VOLCANO"}

type CircleView struct {
	X, Y, R float64
}

type MonsterView struct {
	CircleView
	ID          int
	HP          int
	Ranged      bool
	Role        balance.Role
	SpriteIndex int
}

type BossView struct {
	Rect  geom.Rect
	HP    int
	MaxHP int
	Label string
}

type GateView struct {
	Rect  geom.Rect
	Label string
	Kind  weapon.GateKind
}

type DropView struct {
	CircleView
	Kind DropKind
}

type LineView struct {
	X1, Y1, X2, Y2 float64
	Width          float64
}

type EffectView struct {
	Kind   EffectKind
	X, Y   float64
	Radius float64
	Text   string
	Alpha  float64
}

// Snapshot is a read-only copy of everything the renderer needs, in screen
// space. It shares no memory with the simulation.
type Snapshot struct {
	Screen      Screen
	Coins       int
	Levels      weapon.MetaLevels
	ShopMessage string

	InRun         bool
	StageIndex    int
	Theme         string
	Loop          bool
	GatesPassed   int
	Player        CircleView
	Weapon        *weapon.State
	Paused        bool
	UpgradePaused bool
	Transitioning bool
	GameOver      bool
	Clear         bool
	Choices       []string
	ShakeMs       int64
	FlashMs       int64

	Gates          []GateView
	Monsters       []MonsterView
	Boss           *BossView
	Bullets        []CircleView
	Lasers         []LineView
	ShardRays      []LineView
	EnemyShots     []CircleView
	BossShots      []CircleView
	BossTelegraphs []LineView
	BossLaneLasers []LineView
	Drops          []DropView
	Effects        []EffectView
}

func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Screen:      c.screen,
		Coins:       c.wallet.Coins,
		Levels:      c.wallet.Levels,
		ShopMessage: c.ShopMessage,
	}
	if c.run != nil && c.screen == ScreenGame {
		c.run.fillSnapshot(&snap)
	}
	return snap
}

func (s *RunState) fillSnapshot(snap *Snapshot) {
	h := s.cfg.Height
	playerY := s.cfg.PlayerY()

	snap.InRun = true
	snap.StageIndex = s.StageIndex
	snap.Theme = themeNames[s.Theme()]
	snap.Loop = s.Loop
	snap.GatesPassed = s.GatesPassed
	snap.Player = CircleView{X: s.PlayerX, Y: playerY, R: s.cfg.PlayerRadius()}
	if s.Weapon != nil {
		w := *s.Weapon
		snap.Weapon = &w
	}
	snap.Paused = s.ManualPaused
	snap.UpgradePaused = s.UpgradePaused
	snap.Transitioning = s.Transitioning()
	snap.GameOver = s.GameOver
	snap.Clear = s.Clear
	if s.Weapon != nil {
		snap.Choices = lo.Map(s.UpgradeChoices, func(c weapon.UpgradeChoice, _ int) string { return c.Label(s.Weapon.Type) })
	}
	snap.ShakeMs = s.ShakeMs
	snap.FlashMs = s.FlashMs

	for _, p := range s.GatePairs {
		if p.Used() {
			continue
		}
		for _, g := range []*Gate{p.Left, p.Right} {
			snap.Gates = append(snap.Gates, GateView{Rect: g.Rect.Shift(s.ScrollY), Label: g.Offer.String(), Kind: g.Offer.Kind})
		}
	}
	snap.Monsters = lo.Map(s.Monsters, func(m *Monster, _ int) MonsterView {
		p := geom.Shift(m.Pos, s.ScrollY)
		return MonsterView{
			CircleView:  CircleView{X: p.X, Y: p.Y, R: m.Radius},
			ID:          m.ID,
			HP:          m.HP,
			Ranged:      m.Ranged,
			Role:        m.Role,
			SpriteIndex: m.SpriteIndex,
		}
	})
	if s.Boss != nil {
		snap.Boss = &BossView{
			Rect:  s.Boss.Rect.Shift(s.ScrollY),
			HP:    s.Boss.HP,
			MaxHP: s.Boss.MaxHP,
			Label: balance.BossLabelForStage(s.stage()),
		}
	}
	snap.Bullets = lo.Map(s.Bullets, func(b *Bullet, _ int) CircleView {
		return CircleView{X: b.Pos.X, Y: b.Pos.Y, R: b.Radius}
	})
	snap.Lasers = lo.Map(s.Lasers, func(l *Laser, _ int) LineView {
		return LineView{X1: l.X, Y1: playerY, X2: l.X, Y2: 0, Width: l.Width}
	})
	snap.ShardRays = lo.Map(s.ShardRays, func(r *ShardRay, _ int) LineView {
		return LineView{X1: r.Start.X, Y1: r.Start.Y, X2: r.End.X, Y2: r.End.Y, Width: r.Width}
	})
	snap.EnemyShots = lo.Map(s.EnemyShots, func(e *EnemyShot, _ int) CircleView {
		return CircleView{X: e.Pos.X, Y: e.Pos.Y, R: e.Radius}
	})
	snap.BossShots = lo.Map(s.BossShots, func(b *BossShot, _ int) CircleView {
		return CircleView{X: b.Pos.X, Y: b.Pos.Y, R: b.Radius}
	})
	snap.BossTelegraphs = lo.Map(s.BossTelegraphs, func(t *BossTelegraph, _ int) LineView {
		return LineView{X1: t.Start.X, Y1: t.Start.Y, X2: t.End.X, Y2: t.End.Y, Width: t.Radius * 2}
	})
	snap.BossLaneLasers = lo.Map(s.BossLaneLasers, func(l *BossLaneLaser, _ int) LineView {
		return LineView{X1: l.X, Y1: 0, X2: l.X, Y2: h, Width: l.LethalHalfWidth(0) * 2}
	})
	snap.Drops = lo.Map(s.Drops, func(d *Drop, _ int) DropView {
		p := geom.Shift(d.Pos, s.ScrollY)
		return DropView{CircleView: CircleView{X: p.X, Y: p.Y, R: dropPickupRadius * 0.6}, Kind: d.Kind}
	})
	snap.Effects = lo.Map(s.Effects, func(e *Effect, _ int) EffectView {
		return EffectView{Kind: e.Kind, X: e.Pos.X, Y: e.Pos.Y, Radius: e.Radius, Text: e.Text, Alpha: e.Alpha()}
	})
}
