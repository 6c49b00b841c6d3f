package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	game_log "github.com/alexduckmanton/rope-game/internal/log"
	"github.com/alexduckmanton/rope-game/internal/ui"
)

func main() {
	size := flag.Int("size", 6, "board size (even, 2-8)")
	hintProb := flag.Float64("hints", 0.5, "per-cell hint probability (0-1)")
	seed := flag.Int64("seed", 0, "random seed (0 = time-derived)")
	logLevel := flag.String("log", "info", "log level (debug|info|warn|error|none)")
	flag.Parse()

	logger := game_log.New(os.Stderr, game_log.LevelFromString(*logLevel))
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.Infof("[MAIN] seed %d", *seed)
	rng := rand.New(rand.NewSource(*seed))

	g, err := ui.New(*size, *hintProb, rng, logger)
	if err != nil {
		logger.Errorf("[MAIN] %v", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(640, 640)
	ebiten.SetWindowTitle("Rope - draw one loop through every cell")
	if err := ebiten.RunGame(g); err != nil {
		logger.Errorf("[MAIN] %v", err)
		os.Exit(1)
	}
}
