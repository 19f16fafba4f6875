package sim

import "github.com/tsujio/game-gate-runner/weapon"

// Msg is a discrete player input queued into the Controller.
type Msg interface{ isMsg() }

type MsgOpenShop struct{}

func (MsgOpenShop) isMsg() {}

type MsgBackToMenu struct{}

func (MsgBackToMenu) isMsg() {}

type MsgStartRun struct{}

func (MsgStartRun) isMsg() {}

type MsgBuy struct {
	Item weapon.ShopItem
}

func (MsgBuy) isMsg() {}

// MsgDrag is a horizontal drag delta in screen pixels.
type MsgDrag struct {
	DX float64
}

func (MsgDrag) isMsg() {}

type MsgTogglePause struct{}

func (MsgTogglePause) isMsg() {}

type MsgChooseUpgrade struct {
	Index int
}

func (MsgChooseUpgrade) isMsg() {}

type MsgRestart struct{}

func (MsgRestart) isMsg() {}
