package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"decay-ca/internal/sims/decay"
)

type scenario struct {
	seed    int64
	density float64
}

func (s scenario) String() string {
	return fmt.Sprintf("seed=%d density=%.3f", s.seed, s.density)
}

type scenarioResult struct {
	scenario scenario

	initialLive   int
	peakLive      int
	peakAt        int
	finalLive     int
	extinctAt     int // -1 when the board never died out
	settledPeriod int // 0 when no short cycle was detected
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	seeds := flag.Int("seeds", 32, "number of seeds to sweep")
	firstSeed := flag.Int64("first-seed", 1, "seed of the first scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	configPath := flag.String("config", "", "optional JSON base config")
	flag.Parse()

	baseCfg := decay.DefaultConfig()
	if *configPath != "" {
		loaded, err := decay.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		baseCfg = loaded
	}

	densities := []float64{0.05, 0.12, 0.25}
	var scenarios []scenario
	for i := 0; i < *seeds; i++ {
		for _, d := range densities {
			scenarios = append(scenarios, scenario{seed: *firstSeed + int64(i), density: d})
		}
	}

	jobs := make(chan scenario)
	results := make(chan scenarioResult, len(scenarios))
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				res, err := runScenario(baseCfg, sc, *steps)
				if err != nil {
					log.Printf("scenario %v failed: %v", sc, err)
					continue
				}
				results <- res
			}
		}()
	}

	for _, sc := range scenarios {
		jobs <- sc
	}
	close(jobs)
	wg.Wait()
	close(results)

	all := make([]scenarioResult, 0, len(scenarios))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].finalLive != all[j].finalLive {
			return all[i].finalLive > all[j].finalLive
		}
		return all[i].peakLive > all[j].peakLive
	})

	extinct := 0
	for _, res := range all {
		if res.extinctAt >= 0 {
			extinct++
		}
	}
	fmt.Printf("swept %d scenarios in %.1fs (%d extinct within %d steps)\n",
		len(all), time.Since(start).Seconds(), extinct, *steps)
	for _, res := range all {
		lifespan := "survived"
		if res.extinctAt >= 0 {
			lifespan = fmt.Sprintf("extinct@%d", res.extinctAt)
		}
		cycle := ""
		if res.settledPeriod > 0 {
			cycle = fmt.Sprintf(" period=%d", res.settledPeriod)
		}
		fmt.Printf("%v: initial=%d peak=%d@%d final=%d %s%s\n",
			res.scenario, res.initialLive, res.peakLive, res.peakAt, res.finalLive, lifespan, cycle)
	}
}

func runScenario(base decay.Config, sc scenario, steps int) (scenarioResult, error) {
	cfg := base
	cfg.Seed = sc.seed
	cfg.SpawnDensity = sc.density

	world, err := decay.NewWithConfig(cfg)
	if err != nil {
		return scenarioResult{}, err
	}
	world.Reset(0)

	res := scenarioResult{scenario: sc, extinctAt: -1}
	res.initialLive = world.Population()
	res.peakLive = res.initialLive

	// Recent populations, used to sniff short oscillation periods.
	recent := make([]int, 0, 8)

	for i := 1; i <= steps; i++ {
		world.Step()
		live := world.Population()
		if live > res.peakLive {
			res.peakLive = live
			res.peakAt = i
		}
		if live == 0 {
			res.extinctAt = i
			res.finalLive = 0
			return res, nil
		}
		recent = append(recent, live)
		if len(recent) > 8 {
			recent = recent[1:]
		}
	}

	res.finalLive = world.Population()
	res.settledPeriod = detectPeriod(recent)
	return res, nil
}

// detectPeriod looks for the shortest cycle length in the trailing
// population counts. Matching populations are a cheap proxy for a settled
// oscillator; it cannot distinguish distinct patterns with equal counts.
func detectPeriod(recent []int) int {
	for period := 1; period <= len(recent)/2; period++ {
		match := true
		for i := len(recent) - 1; i >= period && i >= len(recent)-2*period; i-- {
			if recent[i] != recent[i-period] {
				match = false
				break
			}
		}
		if match {
			return period
		}
	}
	return 0
}
