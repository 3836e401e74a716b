package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"decay-ca/internal/core"
	_ "decay-ca/internal/sims/decay"
)

// painter is implemented by sims that accept external cell edits.
type painter interface {
	Paint(x, y int, state uint8) error
}

func main() {
	var (
		simName     = flag.String("sim", "decay", "simulation to run")
		width       = flag.Int("w", 256, "grid width")
		height      = flag.Int("h", 256, "grid height")
		seed        = flag.Int64("seed", 0, "reset seed (0 uses the sim default)")
		density     = flag.Float64("density", -1, "initial live-cell density (negative keeps the sim default)")
		workers     = flag.Int("workers", 0, "step worker goroutines (0 serial, -1 per CPU)")
		tps         = flag.Int("tps", 0, "ticks per second (0 runs unthrottled)")
		generations = flag.Int("generations", 1000, "generations to run (0 runs until interrupted)")
		report      = flag.Int("report", 100, "report census every N generations")
		paintList   = flag.String("paint", "", "cells to paint after reset, \"x,y,state;...\"")
	)
	flag.Parse()

	factory, ok := core.Sims()[*simName]
	if !ok {
		log.Fatalf("unknown sim %q", *simName)
	}

	cfg := map[string]string{
		"w":       strconv.Itoa(*width),
		"h":       strconv.Itoa(*height),
		"workers": strconv.Itoa(*workers),
	}
	if *density >= 0 {
		cfg["spawn_density"] = strconv.FormatFloat(*density, 'f', -1, 64)
	}

	sim, err := factory(cfg)
	if err != nil {
		log.Fatalf("build sim %q: %v", *simName, err)
	}
	sim.Reset(*seed)

	if *paintList != "" {
		p, ok := sim.(painter)
		if !ok {
			log.Fatalf("sim %q does not accept edits", sim.Name())
		}
		if err := applyPaints(p, *paintList); err != nil {
			log.Fatalf("paint: %v", err)
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	pause := make(chan os.Signal, 1)
	signal.Notify(pause, syscall.SIGUSR1)

	pacer := core.NewFixedStep(*tps)
	start := time.Now()
	gen := 0

	for *generations == 0 || gen < *generations {
		select {
		case <-stop:
			fmt.Printf("interrupted at generation %d\n", gen)
			reportCensus(sim, gen, start)
			return
		case <-pause:
			pacer.SetPaused(!pacer.Paused())
			log.Printf("paused=%v at generation %d", pacer.Paused(), gen)
			continue
		default:
		}

		if pacer.Paused() {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		if *tps > 0 && !pacer.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}

		sim.Step()
		gen++
		if *report > 0 && gen%*report == 0 {
			reportCensus(sim, gen, start)
		}
	}

	fmt.Printf("done after %d generations\n", gen)
	reportCensus(sim, gen, start)
}

func applyPaints(p painter, list string) error {
	for _, entry := range strings.Split(list, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ",")
		if len(parts) != 3 {
			return fmt.Errorf("malformed paint entry %q", entry)
		}
		x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return fmt.Errorf("paint entry %q: %v", entry, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return fmt.Errorf("paint entry %q: %v", entry, err)
		}
		state, err := strconv.ParseUint(strings.TrimSpace(parts[2]), 10, 8)
		if err != nil {
			return fmt.Errorf("paint entry %q: %v", entry, err)
		}
		if err := p.Paint(x, y, uint8(state)); err != nil {
			return err
		}
	}
	return nil
}

func reportCensus(sim core.Sim, gen int, start time.Time) {
	counts := make(map[uint8]int)
	total := 0
	for _, v := range sim.Cells() {
		counts[v]++
		if v > 0 {
			total++
		}
	}
	elapsed := time.Since(start).Seconds()
	rate := 0.0
	if elapsed > 0 {
		rate = float64(gen) / elapsed
	}
	states := uint8(len(sim.Palette()))
	fmt.Printf("gen=%d live=%d census=%v rate=%.1f gen/s\n", gen, total, censusString(counts, states), rate)
}

func censusString(counts map[uint8]int, states uint8) string {
	var b strings.Builder
	for s := uint8(0); s < states; s++ {
		if s > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d:%d", s, counts[s])
	}
	return "[" + b.String() + "]"
}
