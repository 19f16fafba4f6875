package main

import (
	"log"
	"log/slog"
	"math/rand"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tsujio/game-gate-runner/logging"
	"github.com/tsujio/game-gate-runner/progress"
	"github.com/tsujio/game-gate-runner/sim"
	"github.com/tsujio/game-gate-runner/touchutil"
)

const (
	gameName     = "gate-runner"
	screenWidth  = 450
	screenHeight = 800
	defaultSave  = "gaterunner_save.json"
)

type Game struct {
	ctrl    *sim.Controller
	tracker *touchutil.Tracker
	random  *rand.Rand

	shakeBuf *ebiten.Image
}

func (g *Game) Update() error {
	dx, taps := g.tracker.Update()
	snap := g.ctrl.Snapshot()
	for _, m := range inputMessages(snap, dx, taps) {
		g.ctrl.Enqueue(m)
	}
	g.ctrl.Tick()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func newGame(logger *slog.Logger, store *progress.FileStore, seed int64) *Game {
	profile, err := store.Load()
	if err != nil {
		logger.Warn("failed to load progress, starting fresh", "path", store.Path, "error", err)
		profile = progress.Profile{}
	}

	cfg := sim.DefaultConfig(screenWidth, screenHeight)
	ctrl := sim.NewController(cfg, sim.Wallet{Coins: profile.Coins, Levels: profile.Levels}, seed, logger)
	ctrl.SetPersist(func(w sim.Wallet) error {
		return store.Save(progress.Profile{Coins: w.Coins, Levels: w.Levels})
	})

	return &Game{
		ctrl:    ctrl,
		tracker: touchutil.NewTracker(),
		random:  rand.New(rand.NewSource(seed)),
	}
}

func main() {
	var seed int64
	if s, err := strconv.Atoi(os.Getenv("GAME_RAND_SEED")); err == nil {
		seed = int64(s)
	}
	savePath := os.Getenv("GATE_RUNNER_SAVE")
	if savePath == "" {
		savePath = defaultSave
	}

	logger := logging.New()
	slog.SetDefault(logger)
	logger.Info("starting", "game", gameName, "seed", seed, "save", savePath)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Gate Runner")
	ebiten.SetTPS(60)

	game := newGame(logger, progress.NewFileStore(savePath), seed)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
