// Typed vs dynamic user record benchmark.
//
// Compares the typed models.User against the map-backed dynamic.User across
// JSON serialization, deserialization, dict conversion, and copying with
// modifications, then runs an aggregation pass over a synthetic population
// in both representations.
//
// Usage:
//
//	go run ./cmd/benchmark -iterations=100000 -users=50000
//	go run ./cmd/benchmark -config=benchmark.yaml
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sco3/records-and-validation/bench"
	"github.com/sco3/records-and-validation/config"
	"github.com/sco3/records-and-validation/dynamic"
	"github.com/sco3/records-and-validation/models"
)

const sampleJSON = `{"id":1,"name":"Alice Johnson","email":"alice@example.com","age":30,"active":true}`

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	iterations := flag.Int("iterations", 0, "timed calls per operation (overrides config)")
	users := flag.Int("users", 0, "population size for the aggregation benchmark (overrides config)")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *iterations > 0 {
		cfg.Iterations = *iterations
	}
	if *users > 0 {
		cfg.ProcessUsers = *users
	}

	fmt.Println(strings.Repeat("=", 94))
	fmt.Println("Benchmark: typed models.User vs dynamic map-backed User")
	fmt.Printf("Iterations: %d\n", cfg.Iterations)
	fmt.Println(strings.Repeat("=", 94))

	results := runOperationBenchmarks(cfg)

	bench.WriteTable(os.Stdout, results)

	fmt.Println()
	fmt.Println(strings.Repeat("=", 94))
	fmt.Println("Speedup Summary (typed vs dynamic)")
	fmt.Println(strings.Repeat("=", 94))
	bench.WriteSpeedups(os.Stdout, results)

	runAggregationBenchmark(cfg)
}

func runOperationBenchmarks(cfg *config.Config) []bench.Stats {
	typedUser := models.NewUser(1, "Alice Johnson", "alice@example.com", 30, true)
	fmt.Println("\n✓ Typed user created")

	dynamicUser, err := dynamic.FromJSON(sampleJSON)
	if err != nil {
		log.Fatalf("Failed to build dynamic user: %v", err)
	}
	fmt.Println("✓ Dynamic user created")

	warmup(cfg.WarmupIterations, typedUser, dynamicUser)

	var results []bench.Stats

	fmt.Println("\n--- JSON Serialization (compact) ---")
	results = append(results, measureBoth(cfg.Iterations, "JSON()",
		func() { typedUser.JSON() },
		func() { dynamicUser.JSON() })...)

	fmt.Println("\n--- JSON Serialization (pretty) ---")
	results = append(results, measureBoth(cfg.Iterations, "JSONPretty()",
		func() { typedUser.JSONPretty() },
		func() { dynamicUser.JSONPretty() })...)

	fmt.Println("\n--- JSON Deserialization ---")
	results = append(results, measureBoth(cfg.Iterations, "FromJSON()",
		func() { models.UserFromJSON(sampleJSON) },
		func() { dynamic.FromJSON(sampleJSON) })...)

	fmt.Println("\n--- Convert to Dict ---")
	results = append(results, measureBoth(cfg.Iterations, "Dict()",
		func() { typedUser.Dict() },
		func() { dynamicUser.Dict() })...)

	fmt.Println("\n--- Copy with Modifications ---")
	newAge := 31
	overrides := models.Overrides{Age: &newAge}
	updates := map[string]any{"age": 31}
	results = append(results, measureBoth(cfg.Iterations, "Copy()",
		func() { typedUser.Copy(overrides) },
		func() { dynamicUser.With(updates) })...)

	return results
}

func measureBoth(iterations int, op string, typedFn, dynamicFn func()) []bench.Stats {
	typed := bench.Measure("Typed "+op, iterations, typedFn)
	fmt.Printf("  Typed: %.2f µs (mean)\n", typed.Mean)

	dyn := bench.Measure("Dynamic "+op, iterations, dynamicFn)
	fmt.Printf("  Dynamic: %.2f µs (mean)\n", dyn.Mean)

	return []bench.Stats{typed, dyn}
}

func warmup(iterations int, typedUser models.User, dynamicUser dynamic.User) {
	for i := 0; i < iterations; i++ {
		typedUser.JSON()
		dynamicUser.JSON()
		models.UserFromJSON(sampleJSON)
		dynamic.FromJSON(sampleJSON)
	}
}

func runAggregationBenchmark(cfg *config.Config) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 94))
	fmt.Printf("Aggregation: total age of active users over %d users\n", cfg.ProcessUsers)
	fmt.Println(strings.Repeat("=", 94))

	typedUsers := bench.GenerateTypedUsers(cfg.ProcessUsers)
	dynamicUsers := bench.GenerateDynamicUsers(cfg.ProcessUsers)

	typedResult := bench.SumActiveTyped(typedUsers)
	fmt.Printf("  Typed:   total_age=%d active_count=%d elapsed=%.2f µs\n",
		typedResult.TotalAge, typedResult.ActiveCount, typedResult.ElapsedMicros)

	dynamicResult := bench.SumActiveDynamic(dynamicUsers)
	fmt.Printf("  Dynamic: total_age=%d active_count=%d errors=%d elapsed=%.2f µs\n",
		dynamicResult.TotalAge, dynamicResult.ActiveCount, dynamicResult.Errors, dynamicResult.ElapsedMicros)

	if typedResult.ElapsedMicros > 0 {
		fmt.Printf("\n  Keyed access overhead: %.2fx\n", dynamicResult.ElapsedMicros/typedResult.ElapsedMicros)
	}
}
