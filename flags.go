package main

import (
	"flag"
	"log"
	"os"
	"strconv"
)

// Command-line flags. Flags not given explicitly fall back to the MAXLAB_*
// environment variables (see applyEnvDefaults).
var (
	// heroFlag selects the landing visual variant.
	heroFlag = flag.String("hero", defaultHero, "hero visual variant: grid or cloud")

	// reducedMotionFlag forces the reduced-motion preference on.
	reducedMotionFlag = flag.Bool("reduced-motion", false, "prefer reduced motion regardless of the environment")

	// particlesFlag sets the point cloud size.
	particlesFlag = flag.Int("particles", 4000, "number of particles in the cloud hero")

	// seedFlag fixes the point cloud layout; 0 picks a new one each run.
	seedFlag = flag.Int64("seed", 0, "random seed for the cloud hero (0 = time based)")

	// debugFlag enables the stats overlay and the M/H hotkeys.
	debugFlag = flag.Bool("debug", false, "show FPS and lifecycle overlay, enable M (motion) and H (hero) hotkeys")

	// cpuProfileFlag records a CPU profile of the first seconds of rendering.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile of the first 15s to this file")

	// envFileFlag names the dotenv file loaded before flags are applied.
	envFileFlag = flag.String("env-file", ".env", "dotenv file with MAXLAB_* defaults")

	// quietFlag silences lifecycle logging.
	quietFlag = flag.Bool("quiet", false, "suppress lifecycle logging")
)

// applyEnvDefaults copies MAXLAB_* values into flags the user did not set.
func applyEnvDefaults(lookup func(string) (string, bool)) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if v, ok := lookup(envHero); ok && !set["hero"] {
		*heroFlag = v
	}
	if v, ok := lookup(envParticles); ok && !set["particles"] {
		if n, err := strconv.Atoi(v); err == nil {
			*particlesFlag = n
		} else {
			log.Printf("ignoring %s=%q: %v", envParticles, v, err)
		}
	}
	if v, ok := lookup(envSeed); ok && !set["seed"] {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*seedFlag = n
		} else {
			log.Printf("ignoring %s=%q: %v", envSeed, v, err)
		}
	}
	if v, ok := lookup(envDebug); ok && !set["debug"] {
		if b, err := strconv.ParseBool(v); err == nil {
			*debugFlag = b
		}
	}
}

// osLookup is os.LookupEnv; tests swap in a map.
var osLookup = os.LookupEnv
