package sim

import (
	"log/slog"
	"math/rand"

	"github.com/tsujio/game-gate-runner/weapon"
)

type Screen int

const (
	ScreenMenu Screen = iota
	ScreenShop
	ScreenGame
)

func (s Screen) String() string {
	switch s {
	case ScreenShop:
		return "SHOP"
	case ScreenGame:
		return "GAME"
	}
	return "MENU"
}

// Wallet is the persistent meta progress: coins and shop levels.
type Wallet struct {
	Coins  int
	Levels weapon.MetaLevels
}

// PersistFunc stores the wallet after every change. Errors are logged.
type PersistFunc func(Wallet) error

// Controller owns the screen flow, the wallet and the current run. Inputs
// are queued with Enqueue and applied at the start of the next Tick.
type Controller struct {
	cfg     Config
	log     *slog.Logger
	seeds   *rand.Rand
	persist PersistFunc

	screen Screen
	wallet Wallet
	run    *RunState
	inbox  []Msg

	ShopMessage string
}

func NewController(cfg Config, wallet Wallet, seed int64, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		cfg:    cfg,
		log:    logger,
		seeds:  rand.New(rand.NewSource(seed)),
		screen: ScreenMenu,
		wallet: wallet,
	}
}

func (c *Controller) SetPersist(fn PersistFunc) {
	c.persist = fn
}

func (c *Controller) Screen() Screen { return c.screen }
func (c *Controller) Wallet() Wallet { return c.wallet }
func (c *Controller) Run() *RunState { return c.run }
func (c *Controller) Enqueue(m Msg)  { c.inbox = append(c.inbox, m) }

func (c *Controller) Tick() {
	for _, m := range c.inbox {
		c.handle(m)
	}
	c.inbox = c.inbox[:0]

	if c.screen != ScreenGame || c.run == nil {
		return
	}
	c.run.Step()
	if earned := c.run.TakeCoins(); earned > 0 {
		c.wallet.Coins += earned
		c.save()
	}
}

func (c *Controller) handle(m Msg) {
	switch msg := m.(type) {
	case MsgOpenShop:
		if c.screen == ScreenMenu {
			c.screen = ScreenShop
			c.ShopMessage = ""
		}
	case MsgBackToMenu:
		c.screen = ScreenMenu
		c.run = nil
	case MsgStartRun:
		if c.screen == ScreenShop || c.screen == ScreenMenu {
			c.startRun()
		}
	case MsgBuy:
		if c.screen == ScreenShop {
			c.buy(msg.Item)
		}
	case MsgDrag:
		if c.screen == ScreenGame && c.run != nil {
			c.run.Drag(msg.DX)
		}
	case MsgTogglePause:
		if c.screen == ScreenGame && c.run != nil {
			c.run.TogglePause()
		}
	case MsgChooseUpgrade:
		if c.screen == ScreenGame && c.run != nil {
			c.run.ChooseUpgrade(msg.Index)
		}
	case MsgRestart:
		if c.screen == ScreenGame {
			c.startRun()
		}
	}
}

func (c *Controller) startRun() {
	c.screen = ScreenGame
	c.run = Fresh(c.cfg, c.wallet.Levels, c.seeds.Int63(), c.log)
}

// Buy raises a shop item by one level if affordable and below its cap.
func (c *Controller) buy(item weapon.ShopItem) bool {
	level := c.wallet.Levels.Level(item)
	if level >= item.MaxLevel() {
		c.ShopMessage = item.String() + " MAX"
		return false
	}
	cost := item.Cost(level)
	if c.wallet.Coins < cost {
		c.ShopMessage = "NOT ENOUGH COINS"
		return false
	}
	c.wallet.Coins -= cost
	c.wallet.Levels = c.wallet.Levels.WithLevel(item, level+1)
	c.ShopMessage = item.String() + " UP"
	c.log.Info("shop purchase", "item", item.String(), "level", level+1, "cost", cost, "coins", c.wallet.Coins)
	c.save()
	return true
}

func (c *Controller) save() {
	if c.persist == nil {
		return
	}
	if err := c.persist(c.wallet); err != nil {
		c.log.Warn("failed to save progress", "error", err)
	}
}
