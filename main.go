package main

import (
	"errors"
	"flag"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"maxlab/motion"
)

func main() {
	flag.Parse()
	if err := loadEnvFile(*envFileFlag); err != nil {
		log.Printf("env file: %v", err)
	}
	applyEnvDefaults(osLookup)

	logger := log.New(os.Stderr, "maxlab: ", log.LstdFlags)
	if *quietFlag {
		logger = log.New(io.Discard, "", 0)
	}

	g, err := newGame(gameOptions{
		hero:      *heroFlag,
		reduced:   *reducedMotionFlag || motion.FromEnvironment(osLookup),
		particles: *particlesFlag,
		seed:      *seedFlag,
		logger:    logger,
	})
	if err != nil {
		log.Fatalf("starting: %v", err)
	}
	defer g.Close()

	if *cpuProfileFlag != "" {
		prof, err := startCPUProfile(*cpuProfileFlag, g.clock.Elapsed(), profileDuration, logger)
		if err != nil {
			log.Fatalf("profiling: %v", err)
		}
		g.profile = prof
	}

	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Printf("run: %v", err)
	}
}

// loadEnvFile loads MAXLAB_* defaults from a dotenv file. A missing file is
// not an error; variables already in the environment win.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
