// Package bench measures the typed and dynamic user representations
// against each other: per-operation latency statistics and whole-population
// aggregation passes.
package bench

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"
)

// Stats summarizes the per-call latency of a benchmarked operation.
// All values are in microseconds.
type Stats struct {
	Name   string
	Mean   float64
	Median float64
	Stdev  float64
	Min    float64
	Max    float64
}

// Measure calls fn the given number of times, timing each call, and returns
// the aggregated latency statistics
func Measure(name string, iterations int, fn func()) Stats {
	if iterations <= 0 {
		return Stats{Name: name}
	}

	times := make([]float64, iterations)
	for i := range times {
		start := time.Now()
		fn()
		times[i] = float64(time.Since(start).Nanoseconds()) / 1e3
	}

	return newStats(name, times)
}

func newStats(name string, times []float64) Stats {
	sorted := make([]float64, len(times))
	copy(sorted, times)
	sort.Float64s(sorted)

	return Stats{
		Name:   name,
		Mean:   mean(times),
		Median: median(sorted),
		Stdev:  stdev(times),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// median expects xs to be sorted
func median(xs []float64) float64 {
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}

// stdev is the sample standard deviation; a single observation has no
// spread and reports zero
func stdev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

// WriteTable writes the results as a fixed-width table
func WriteTable(w io.Writer, results []Stats) {
	fmt.Fprintf(w, "\n%-30s %-12s %-12s %-10s %-10s %-10s\n",
		"Operation", "Mean (µs)", "Median (µs)", "Stdev", "Min (µs)", "Max (µs)")
	fmt.Fprintln(w, strings.Repeat("-", 94))
	for _, r := range results {
		fmt.Fprintf(w, "%-30s %-12.2f %-12.2f %-10.2f %-10.2f %-10.2f\n",
			r.Name, r.Mean, r.Median, r.Stdev, r.Min, r.Max)
	}
}

// WriteSpeedups pairs each "Typed <op>" result with its "Dynamic <op>"
// counterpart and writes how many times faster the typed side ran
func WriteSpeedups(w io.Writer, results []Stats) {
	typed := make(map[string]Stats)
	for _, r := range results {
		if op, ok := strings.CutPrefix(r.Name, "Typed "); ok {
			typed[op] = r
		}
	}

	for _, r := range results {
		op, ok := strings.CutPrefix(r.Name, "Dynamic ")
		if !ok {
			continue
		}
		t, ok := typed[op]
		if !ok || t.Mean <= 0 {
			continue
		}
		fmt.Fprintf(w, "  %s: %.2fx faster\n", op, r.Mean/t.Mean)
	}
}
