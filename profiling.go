package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sync"
	"time"
)

// cpuProfile records the first stretch of rendering, which covers hero
// mount, the first resizes and the opening scroll.
type cpuProfile struct {
	path   string
	start  time.Duration
	until  time.Duration
	logger *log.Logger

	f    *os.File
	once sync.Once
}

// startCPUProfile begins writing a CPU profile to path at clock time now.
// It stops itself once Due reports true.
func startCPUProfile(path string, now, length time.Duration, logger *log.Logger) (*cpuProfile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating profile %q: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("starting profile: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("profiling CPU for %s into %s", length, path)
	return &cpuProfile{path: path, start: now, until: now + length, logger: logger, f: f}, nil
}

// Due reports whether the profile window has passed at now.
func (p *cpuProfile) Due(now time.Duration) bool {
	return p != nil && now >= p.until
}

// Stop ends the profile. Only the first call has an effect.
func (p *cpuProfile) Stop(now time.Duration) {
	if p == nil {
		return
	}
	p.once.Do(func() {
		pprof.StopCPUProfile()
		if err := p.f.Close(); err != nil {
			p.logger.Printf("closing profile %s: %v", p.path, err)
			return
		}
		p.logger.Printf("wrote %s CPU profile to %s", (now - p.start).Round(time.Millisecond), p.path)
	})
}
