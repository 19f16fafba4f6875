package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tsujio/game-gate-runner/balance"
	"github.com/tsujio/game-gate-runner/geom"
	"github.com/tsujio/game-gate-runner/sim"
	"github.com/tsujio/game-gate-runner/weapon"
)

var (
	colorInk      = color.RGBA{0x20, 0x20, 0x20, 0xff}
	colorPanel    = color.RGBA{0x30, 0x30, 0x40, 0xe0}
	colorButton   = color.RGBA{0x50, 0x60, 0x90, 0xff}
	colorPlayer   = color.RGBA{0x30, 0x90, 0xff, 0xff}
	colorBullet   = color.RGBA{0xff, 0xee, 0x60, 0xff}
	colorLaser    = color.RGBA{0x90, 0xf0, 0xff, 0xc0}
	colorEnemy    = color.RGBA{0xff, 0x50, 0x40, 0xff}
	colorBossShot = color.RGBA{0xff, 0x30, 0xa0, 0xff}
	colorWarn     = color.RGBA{0xff, 0x40, 0x40, 0x80}
	colorCoin     = color.RGBA{0xff, 0xc8, 0x20, 0xff}
	colorUpgrade  = color.RGBA{0x40, 0xff, 0x80, 0xff}
)

// themes are ground and path colors per stage theme.
var themes = [][2]color.RGBA{
	{{0x2c, 0x5e, 0x2a, 0xff}, {0x9c, 0x86, 0x5a, 0xff}},
	{{0x3a, 0x4a, 0x36, 0xff}, {0x5e, 0x6a, 0x52, 0xff}},
	{{0x3a, 0x1a, 0x14, 0xff}, {0x6a, 0x3a, 0x2a, 0xff}},
}

var roleColors = map[balance.Role]color.RGBA{
	balance.RoleRusher:       {0xd0, 0x50, 0x40, 0xff},
	balance.RoleSkirmisher:   {0xe0, 0x90, 0x30, 0xff},
	balance.RoleBruiser:      {0x90, 0x30, 0x30, 0xff},
	balance.RoleThrowerArrow: {0x80, 0x60, 0xd0, 0xff},
	balance.RoleThrowerSpear: {0x70, 0x40, 0xc0, 0xff},
	balance.RoleThrowerAxe:   {0x50, 0x50, 0xb0, 0xff},
	balance.RoleCaster:       {0xc0, 0x40, 0xc0, 0xff},
	balance.RoleEliteMini:    {0xff, 0x20, 0x60, 0xff},
}

func fillRect(dst *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()), clr, true)
}

func strokeRect(dst *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.StrokeRect(dst, float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()), 2, clr, true)
}

func fillCircle(dst *ebiten.Image, c sim.CircleView, clr color.Color) {
	vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(c.R), clr, true)
}

func drawLine(dst *ebiten.Image, l sim.LineView, clr color.Color) {
	vector.StrokeLine(dst, float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2), float32(l.Width), clr, true)
}

func drawButton(dst *ebiten.Image, r geom.Rect, label string) {
	fillRect(dst, r, colorButton)
	ebitenutil.DebugPrintAt(dst, label, int(r.Left)+12, int(r.Center().Y)-8)
}

func withAlpha(c color.RGBA, a float64) color.RGBA {
	f := geom.Clamp(a, 0, 1)
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), uint8(float64(c.A) * f)}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.ctrl.Snapshot()
	switch snap.Screen {
	case sim.ScreenMenu:
		drawMenu(screen, snap)
	case sim.ScreenShop:
		drawShop(screen, snap)
	case sim.ScreenGame:
		g.drawRun(screen, snap)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%.1f", ebiten.ActualFPS()))
}

func drawMenu(screen *ebiten.Image, snap sim.Snapshot) {
	screen.Fill(colorInk)
	ebitenutil.DebugPrintAt(screen, "GATE RUNNER", 180, 240)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("COINS %d", snap.Coins), 180, 280)
	drawButton(screen, startButton, "START  [ENTER]")
	drawButton(screen, shopButton, "SHOP  [S]")
}

func drawShop(screen *ebiten.Image, snap sim.Snapshot) {
	screen.Fill(colorInk)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SHOP    COINS %d", snap.Coins), 40, 100)
	for i, item := range weapon.ShopItems {
		level := snap.Levels.Level(item)
		price := "MAX"
		if level < item.MaxLevel() {
			price = fmt.Sprintf("%d COINS", item.Cost(level))
		}
		drawButton(screen, shopRow(i), fmt.Sprintf("[%d] %-7s LV %d/%d  %s", i+1, item.String(), level, item.MaxLevel(), price))
	}
	if snap.ShopMessage != "" {
		ebitenutil.DebugPrintAt(screen, snap.ShopMessage, 40, 660)
	}
	drawButton(screen, shopStart, "START")
	drawButton(screen, shopBack, "BACK")
}

func (g *Game) drawRun(screen *ebiten.Image, snap sim.Snapshot) {
	world := screen
	if snap.ShakeMs > 0 {
		if g.shakeBuf == nil {
			g.shakeBuf = ebiten.NewImage(screenWidth, screenHeight)
		}
		g.shakeBuf.Clear()
		world = g.shakeBuf
	}

	theme := themes[snap.StageIndex%len(themes)]
	world.Fill(theme[0])
	path := geom.NewRect(screenWidth*0.19, 0, screenWidth*0.81, screenHeight)
	fillRect(world, path, theme[1])

	for _, gv := range snap.Gates {
		clr := color.RGBA{0x60, 0xa0, 0xff, 0xa0}
		if gv.Kind == weapon.GateWeapon {
			clr = color.RGBA{0xff, 0xb0, 0x40, 0xa0}
		}
		fillRect(world, gv.Rect, clr)
		strokeRect(world, gv.Rect, color.White)
		ebitenutil.DebugPrintAt(world, gv.Label, int(gv.Rect.Left)+8, int(gv.Rect.Center().Y)-8)
	}

	for _, d := range snap.Drops {
		fillCircle(world, d.CircleView, map[sim.DropKind]color.Color{sim.DropCoin: colorCoin, sim.DropUpgrade: colorUpgrade}[d.Kind])
	}

	for _, m := range snap.Monsters {
		clr, ok := roleColors[m.Role]
		if !ok {
			clr = colorEnemy
		}
		fillCircle(world, m.CircleView, clr)
		ebitenutil.DebugPrintAt(world, fmt.Sprintf("%d", m.HP), int(m.X)-8, int(m.Y)-8)
	}

	if b := snap.Boss; b != nil {
		fillRect(world, b.Rect, color.RGBA{0x80, 0x10, 0x30, 0xff})
		bar := geom.NewRect(b.Rect.Left, b.Rect.Top-10, b.Rect.Left+b.Rect.Width()*float64(b.HP)/float64(max(1, b.MaxHP)), b.Rect.Top-4)
		fillRect(world, bar, colorEnemy)
		ebitenutil.DebugPrintAt(world, fmt.Sprintf("%s %d", b.Label, b.HP), int(b.Rect.Left)+8, int(b.Rect.Top)+8)
	}

	for _, t := range snap.BossTelegraphs {
		drawLine(world, t, colorWarn)
	}
	for _, l := range snap.BossLaneLasers {
		drawLine(world, l, colorBossShot)
	}
	for _, s := range snap.BossShots {
		fillCircle(world, s, colorBossShot)
	}
	for _, s := range snap.EnemyShots {
		fillCircle(world, s, colorEnemy)
	}

	for _, l := range snap.Lasers {
		drawLine(world, l, colorLaser)
	}
	for _, r := range snap.ShardRays {
		drawLine(world, r, colorLaser)
	}
	for _, b := range snap.Bullets {
		fillCircle(world, b, colorBullet)
	}

	fillCircle(world, snap.Player, colorPlayer)
	drawEffects(world, snap.Effects)

	if world != screen {
		mag := float64(snap.ShakeMs) / 40
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate((g.random.Float64()*2-1)*mag, (g.random.Float64()*2-1)*mag)
		screen.Fill(colorInk)
		screen.DrawImage(world, op)
	}
	if snap.FlashMs > 0 {
		fillRect(screen, geom.NewRect(0, 0, screenWidth, screenHeight), withAlpha(color.RGBA{0xff, 0xff, 0xff, 0xff}, float64(snap.FlashMs)/440))
	}

	drawHUD(screen, snap)
}

func drawEffects(dst *ebiten.Image, effects []sim.EffectView) {
	for _, e := range effects {
		switch e.Kind {
		case sim.EffectText, sim.EffectDamageTotal:
			if e.Alpha > 0.05 {
				ebitenutil.DebugPrintAt(dst, e.Text, int(e.X)-12, int(e.Y))
			}
		case sim.EffectGateBurst, sim.EffectSplashBurst, sim.EffectDeathBurst:
			r := e.Radius * (1.6 - e.Alpha*0.6)
			if r <= 0 {
				r = 40 * (1 - e.Alpha)
			}
			vector.StrokeCircle(dst, float32(e.X), float32(e.Y), float32(r), 3, withAlpha(colorBullet, e.Alpha), true)
		case sim.EffectMuzzleFlash, sim.EffectHitSpark:
			vector.DrawFilledCircle(dst, float32(e.X), float32(e.Y), float32(4+6*e.Alpha), withAlpha(color.RGBA{0xff, 0xff, 0xff, 0xff}, e.Alpha), true)
		case sim.EffectParticle:
			vector.DrawFilledRect(dst, float32(e.X)-1.5, float32(e.Y)-1.5, 3, 3, withAlpha(colorBullet, e.Alpha), true)
		}
	}
}

func drawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	loop := ""
	if snap.Loop {
		loop = " LOOP"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("STAGE %d %s%s  GATES %d  COINS %d", snap.StageIndex+1, snap.Theme, loop, snap.GatesPassed, snap.Coins), 10, 20)
	if w := snap.Weapon; w != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s LV%d DMG %d x%d RATE %dms P%d B%d", w.Type, w.Level, w.Damage, w.BulletCount, w.FireRateMs, w.Pierce, w.BurstCount), 10, 38)
	}
	drawButton(screen, pauseButton, "II")

	switch {
	case snap.GameOver:
		drawOverlay(screen, "GAME OVER")
	case snap.Clear:
		drawOverlay(screen, "ALL CLEAR")
	case snap.UpgradePaused:
		fillRect(screen, geom.NewRect(20, 180, 430, 600), colorPanel)
		ebitenutil.DebugPrintAt(screen, "CHOOSE AN UPGRADE", 150, 210)
		for i, c := range snap.Choices {
			drawButton(screen, choiceCard(i), fmt.Sprintf("[%d] %s", i+1, c))
		}
	case snap.Transitioning:
		ebitenutil.DebugPrintAt(screen, "STAGE CLEAR", 185, 380)
	case snap.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", 200, 380)
	}
}

func drawOverlay(screen *ebiten.Image, title string) {
	fillRect(screen, geom.NewRect(20, 300, 430, 620), colorPanel)
	ebitenutil.DebugPrintAt(screen, title, 190, 350)
	drawButton(screen, restartButton, "RESTART  [ENTER]")
	drawButton(screen, menuButton, "MENU  [ESC]")
}
