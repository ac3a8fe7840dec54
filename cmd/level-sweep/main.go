package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"roomgrid/internal/config"
	"roomgrid/internal/level"
	_ "roomgrid/internal/presets/classic"
	_ "roomgrid/internal/presets/crossroads"
	pcore "roomgrid/pkg/core"
)

type paramSet struct {
	density int
	minSize int
}

func (p paramSet) String() string {
	return fmt.Sprintf("density=%d min=%d", p.density, p.minSize)
}

type scenarioResult struct {
	params    paramSet
	runs      int
	successes int
	attempts  int
	placed    int
	deadEnds  int
	corridors int
}

func (r scenarioResult) successRate() float64 {
	if r.runs == 0 {
		return 0
	}
	return float64(r.successes) / float64(r.runs)
}

func (r scenarioResult) mean(total int) float64 {
	if r.successes == 0 {
		return 0
	}
	return float64(total) / float64(r.successes)
}

func main() {
	lvl, err := config.LoadLevel()
	if err != nil {
		config.Exitf("%v", err)
	}
	lvl.Bind(flag.CommandLine)
	seeds := flag.Int("seeds", 50, "levels generated per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	base, err := lvl.Resolve()
	if err != nil {
		config.Exitf("%v", err)
	}

	var sets []paramSet
	for density := 0; density <= 100; density += 10 {
		for minSize := 1; minSize <= base.MaxLevelSize; minSize++ {
			sets = append(sets, paramSet{density: density, minSize: minSize})
		}
	}

	fmt.Printf("Sweeping %d parameter sets on %s %dx%d (%d workers, %d seeds each)\n",
		len(sets), lvl.Catalog, base.Width, base.Height, *workers, *seeds)

	start := time.Now()
	all := sweep(base, sets, *seeds, *workers)
	sort.Slice(all, func(i, j int) bool {
		if all[i].successRate() != all[j].successRate() {
			return all[i].successRate() > all[j].successRate()
		}
		return all[i].mean(all[i].attempts) < all[j].mean(all[j].attempts)
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop 10 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		res := all[i]
		fmt.Printf("%2d) success=%.0f%% attempts=%.1f rooms=%.1f deadEnds=%.1f corridors=%.1f %s\n",
			i+1, 100*res.successRate(), res.mean(res.attempts), res.mean(res.placed),
			res.mean(res.deadEnds), res.mean(res.corridors), res.params)
	}
}

// sweep fans the parameter sets out over a worker pool. Results come back in
// completion order.
func sweep(base level.Config, sets []paramSet, seeds, workers int) []scenarioResult {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, seeds)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	return all
}

func runScenario(base level.Config, params paramSet, seeds int) scenarioResult {
	cfg := base
	cfg.LevelDensity = params.density
	cfg.MinLevelSize = params.minSize
	if cfg.MaxLevelSize < cfg.MinLevelSize {
		cfg.MaxLevelSize = cfg.MinLevelSize
	}
	res := scenarioResult{params: params}

	gen, err := level.New(cfg, level.WithLogger(log.New(log.Writer(), "level-sweep: ", 0)))
	if err != nil {
		return res
	}
	for i := 0; i < seeds; i++ {
		res.runs++
		out, err := gen.RunSeed(pcore.Seed{uint32(i), 0x9e3779b9, uint32(params.density), uint32(params.minSize)})
		if err != nil {
			continue
		}
		stats := level.Analyze(out.Grid)
		res.successes++
		res.attempts += out.Attempts
		res.placed += stats.Placed
		res.deadEnds += stats.DeadEnds
		res.corridors += stats.Corridors
	}
	return res
}
