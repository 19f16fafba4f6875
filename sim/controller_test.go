package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsujio/game-gate-runner/weapon"
)

func newTestController(coins int) (*Controller, *[]Wallet) {
	c := NewController(DefaultConfig(testWidth, testHeight), Wallet{Coins: coins}, 1, quietLogger())
	var saved []Wallet
	c.SetPersist(func(w Wallet) error {
		saved = append(saved, w)
		return nil
	})
	return c, &saved
}

func TestControllerScreens(t *testing.T) {
	c, _ := newTestController(0)
	assert.Equal(t, ScreenMenu, c.Screen())

	c.Enqueue(MsgOpenShop{})
	c.Tick()
	assert.Equal(t, ScreenShop, c.Screen())

	c.Enqueue(MsgStartRun{})
	c.Tick()
	require.Equal(t, ScreenGame, c.Screen())
	require.NotNil(t, c.Run())
	assert.Equal(t, int64(16), c.Run().GameTimeMs)

	c.Enqueue(MsgBackToMenu{})
	c.Tick()
	assert.Equal(t, ScreenMenu, c.Screen())
	assert.Nil(t, c.Run())
}

func TestControllerBuy(t *testing.T) {
	c, saved := newTestController(25)
	c.Enqueue(MsgOpenShop{})
	c.Enqueue(MsgBuy{Item: weapon.ShopDamage})
	c.Tick()

	assert.Equal(t, 5, c.Wallet().Coins)
	assert.Equal(t, 1, c.Wallet().Levels.Damage)
	assert.Equal(t, "DAMAGE UP", c.ShopMessage)
	require.Len(t, *saved, 1)
	assert.Equal(t, c.Wallet(), (*saved)[0])

	c.Enqueue(MsgBuy{Item: weapon.ShopDamage})
	c.Tick()
	assert.Equal(t, 5, c.Wallet().Coins)
	assert.Equal(t, "NOT ENOUGH COINS", c.ShopMessage)
	assert.Len(t, *saved, 1)
}

func TestControllerBuyAtMaxLevel(t *testing.T) {
	c, saved := newTestController(100000)
	c.wallet.Levels = c.wallet.Levels.WithLevel(weapon.ShopBurst, weapon.ShopBurst.MaxLevel())

	assert.False(t, c.buy(weapon.ShopBurst))
	assert.Equal(t, "BURST MAX", c.ShopMessage)
	assert.Equal(t, 100000, c.Wallet().Coins)
	assert.Empty(t, *saved)
}

func TestControllerBuyIgnoredOutsideShop(t *testing.T) {
	c, saved := newTestController(100)
	c.Enqueue(MsgBuy{Item: weapon.ShopRate})
	c.Tick()

	assert.Equal(t, 100, c.Wallet().Coins)
	assert.Empty(t, *saved)
}

func TestControllerPersistsEarnedCoins(t *testing.T) {
	c, saved := newTestController(3)
	c.Enqueue(MsgStartRun{})
	c.Tick()
	c.Run().coinsEarned = 15

	c.Tick()

	assert.Equal(t, 18, c.Wallet().Coins)
	require.NotEmpty(t, *saved)
	assert.Equal(t, 18, (*saved)[len(*saved)-1].Coins)
}

func TestControllerPersistErrorIsNotFatal(t *testing.T) {
	c := NewController(DefaultConfig(testWidth, testHeight), Wallet{Coins: 20}, 1, quietLogger())
	c.SetPersist(func(Wallet) error { return errors.New("disk full") })
	c.Enqueue(MsgOpenShop{})
	c.Enqueue(MsgBuy{Item: weapon.ShopRange})
	c.Tick()

	assert.Equal(t, 0, c.Wallet().Coins)
	assert.Equal(t, 1, c.Wallet().Levels.Range)
}

func TestControllerRunUsesMetaLevels(t *testing.T) {
	c, _ := newTestController(0)
	c.wallet.Levels = weapon.MetaLevels{Damage: 3}
	c.Enqueue(MsgStartRun{})
	c.Tick()

	assert.Equal(t, weapon.MetaLevels{Damage: 3}, c.Run().Meta)
}

func TestControllerRestart(t *testing.T) {
	c, _ := newTestController(0)
	c.Enqueue(MsgStartRun{})
	c.Tick()
	first := c.Run()
	first.GameOver = true

	c.Enqueue(MsgRestart{})
	c.Tick()

	require.NotNil(t, c.Run())
	assert.NotSame(t, first, c.Run())
	assert.False(t, c.Run().GameOver)
}

func TestControllerForwardsRunInput(t *testing.T) {
	c, _ := newTestController(0)
	c.Enqueue(MsgStartRun{})
	c.Tick()

	c.Enqueue(MsgDrag{DX: 30})
	c.Enqueue(MsgTogglePause{})
	c.Tick()

	run := c.Run()
	assert.Equal(t, run.cfg.Width/2+30, run.TargetPlayerX)
	assert.True(t, run.ManualPaused)

	snap := c.Snapshot()
	assert.True(t, snap.InRun)
	assert.True(t, snap.Paused)
	assert.Equal(t, "FOREST", snap.Theme)
	assert.Len(t, snap.Gates, 2*run.cfg.GatesPerStage)
	assert.Len(t, snap.Monsters, len(run.Monsters))
}

func TestSnapshotOutsideRun(t *testing.T) {
	c, _ := newTestController(7)
	snap := c.Snapshot()

	assert.Equal(t, ScreenMenu, snap.Screen)
	assert.Equal(t, 7, snap.Coins)
	assert.False(t, snap.InRun)
	assert.Empty(t, snap.Monsters)
}
