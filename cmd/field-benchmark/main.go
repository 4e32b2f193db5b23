// Command field-benchmark measures headless update-loop throughput for a
// range of population sizes. No rendering, no audio; ticks at a fixed dt.
package main

import (
	"flag"
	"fmt"
	"time"

	"cosmodrift/config"
	"cosmodrift/sim"
)

const tickDt = 1.0 / 60.0

func benchPopulation(count int, seconds float64, seed int64) {
	s := sim.NewSystem(count, 0, 0, seed, config.Default(), nil, nil)

	ticks := int(seconds / tickDt)

	start := time.Now()
	for i := 0; i < ticks; i++ {
		if err := s.Update(tickDt); err != nil {
			fmt.Printf("update error: %v\n", err)
			return
		}
	}
	elapsed := time.Since(start)

	frame := s.VisibleObjects()
	perTick := elapsed / time.Duration(ticks)
	fmt.Printf("population %4d: %6d ticks in %8v  (%8v/tick, %d visible, %d crossings)\n",
		count, ticks, elapsed.Round(time.Millisecond), perTick,
		frame.Count(), len(s.History().Recent(1000)))
}

func main() {
	seconds := flag.Float64("seconds", 30, "simulated seconds per run")
	seed := flag.Int64("seed", 1, "simulation seed")
	flag.Parse()

	for _, count := range []int{12, 48, 128, 512} {
		benchPopulation(count, *seconds, *seed)
	}
}
