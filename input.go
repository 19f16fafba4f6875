package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/samber/lo"
	"github.com/tsujio/game-gate-runner/geom"
	"github.com/tsujio/game-gate-runner/sim"
	"github.com/tsujio/game-gate-runner/weapon"
	"github.com/tsujio/game-util/mathutil"
)

const keyDragSpeed = 7.0

var (
	startButton   = geom.NewRect(75, 420, 375, 490)
	shopButton    = geom.NewRect(75, 520, 375, 590)
	shopStart     = geom.NewRect(40, 690, 215, 760)
	shopBack      = geom.NewRect(235, 690, 410, 760)
	pauseButton   = geom.NewRect(390, 12, 438, 52)
	restartButton = startButton
	menuButton    = shopButton
)

func shopRow(i int) geom.Rect {
	y := 150 + float64(i)*84
	return geom.NewRect(40, y, 410, y+68)
}

func choiceCard(i int) geom.Rect {
	y := 250 + float64(i)*112
	return geom.NewRect(40, y, 410, y+92)
}

var numberKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// inputMessages translates this frame's pointer and keyboard input into
// controller messages for the current screen.
func inputMessages(snap sim.Snapshot, dx float64, taps []*mathutil.Vector2D) []sim.Msg {
	var msgs []sim.Msg
	tapped := func(r geom.Rect) bool {
		return lo.ContainsBy(taps, func(p *mathutil.Vector2D) bool { return r.Contains(p) })
	}
	pressed := inpututil.IsKeyJustPressed

	switch snap.Screen {
	case sim.ScreenMenu:
		if tapped(startButton) || pressed(ebiten.KeyEnter) {
			msgs = append(msgs, sim.MsgStartRun{})
		} else if tapped(shopButton) || pressed(ebiten.KeyS) {
			msgs = append(msgs, sim.MsgOpenShop{})
		}

	case sim.ScreenShop:
		for i, item := range weapon.ShopItems {
			if tapped(shopRow(i)) || pressed(numberKeys[i]) {
				msgs = append(msgs, sim.MsgBuy{Item: item})
			}
		}
		switch {
		case tapped(shopStart) || pressed(ebiten.KeyEnter):
			msgs = append(msgs, sim.MsgStartRun{})
		case tapped(shopBack) || pressed(ebiten.KeyEscape):
			msgs = append(msgs, sim.MsgBackToMenu{})
		}

	case sim.ScreenGame:
		switch {
		case snap.GameOver || snap.Clear:
			if tapped(restartButton) || pressed(ebiten.KeyEnter) {
				msgs = append(msgs, sim.MsgRestart{})
			} else if tapped(menuButton) || pressed(ebiten.KeyEscape) {
				msgs = append(msgs, sim.MsgBackToMenu{})
			}
		case snap.UpgradePaused:
			for i := range snap.Choices {
				if tapped(choiceCard(i)) || pressed(numberKeys[i]) {
					msgs = append(msgs, sim.MsgChooseUpgrade{Index: i})
					break
				}
			}
		default:
			if tapped(pauseButton) || pressed(ebiten.KeyP) || pressed(ebiten.KeySpace) {
				msgs = append(msgs, sim.MsgTogglePause{})
			}
			if pressed(ebiten.KeyEscape) {
				msgs = append(msgs, sim.MsgBackToMenu{})
			}
			if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
				dx -= keyDragSpeed
			}
			if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
				dx += keyDragSpeed
			}
			if dx != 0 {
				msgs = append(msgs, sim.MsgDrag{DX: dx})
			}
		}
	}
	return msgs
}
