package cli

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/bench"
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/resultstore"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/internal/tables"
)

var benchCmd = &cobra.Command{
	Use:   "bench [file]",
	Short: "Benchmark the solver against a file of scrambles",
	Long: `Read scrambles one per line from file (default sc.txt), solve each,
and report percentile/min/max/mean/median statistics over solve time and
solution length. Each run is recorded to the benchmark result database.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().BoolVar(&strengthenHeuristic, "strengthen-heuristic", false, "enable the heuristic-strengthening refinement")
}

func runBench(cmd *cobra.Command, args []string) error {
	scramblePath := "sc.txt"
	if len(args) > 0 {
		scramblePath = args[0]
	}

	file, err := os.Open(scramblePath)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", scramblePath, err)
	}
	defer file.Close()

	var scrambles []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			scrambles = append(scrambles, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", scramblePath, err)
	}

	logf("loading tables from %s", dataDir)
	fmt.Println("Initializing tables...")
	tm, err := tables.Load(dataDir)
	if err != nil {
		return fmt.Errorf("load tables: %w", err)
	}
	fmt.Println("Tables initialized successfully.")

	s := solver.New(tm)
	s.StrengthenHeuristic = strengthenHeuristic

	fmt.Printf("Loaded %d scrambles from %s\n", len(scrambles), scramblePath)
	fmt.Println("Starting benchmark...")
	fmt.Println()

	results := make([]bench.Result, 0, len(scrambles))
	for i, scramble := range scrambles {
		fmt.Printf("Processing scramble %d/%d: %s\n", i+1, len(scrambles), scramble)

		r := bench.Result{Scramble: scramble}
		c, err := cube.FromScramble(scramble)
		if err != nil {
			fmt.Printf("  failed: %v\n", err)
			results = append(results, r)
			continue
		}

		start := time.Now()
		solution, err := s.Solve(c)
		elapsed := time.Since(start)
		logf("scramble %q took %s", scramble, elapsed)
		if err != nil {
			fmt.Printf("  failed: %v\n", err)
			results = append(results, r)
			continue
		}

		r.Success = true
		r.SolveTime = elapsed
		r.SolutionLength = len(solution)
		fmt.Printf("  solved in %s, %d moves\n", elapsed, r.SolutionLength)
		results = append(results, r)
	}

	printStatistics(results)

	store, err := openResultStore()
	if err != nil {
		return fmt.Errorf("open result database: %w", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(scramblePath, results); err != nil {
		return fmt.Errorf("save benchmark run: %w", err)
	}

	return nil
}

func printStatistics(results []bench.Result) {
	stats, ok := bench.Analyze(results)
	if !ok {
		if len(results) == 0 {
			fmt.Println("No results to analyze.")
		} else {
			fmt.Println("No successful solves.")
		}
		return
	}

	fmt.Println()
	fmt.Println("========== BENCHMARK RESULTS ==========")
	fmt.Printf("Total scrambles: %d\n", stats.Total)
	fmt.Printf("Successful solves: %d\n", stats.Successful)
	fmt.Printf("Success rate: %.2f%%\n", stats.SuccessRate)

	fmt.Println()
	fmt.Println("--- SOLVE TIME STATISTICS (ms) ---")
	fmt.Printf("90th percentile: %.2f ms\n", stats.SolveTimeMs.P90)
	fmt.Printf("95th percentile: %.2f ms\n", stats.SolveTimeMs.P95)
	fmt.Printf("99th percentile: %.2f ms\n", stats.SolveTimeMs.P99)
	fmt.Printf("Average: %.2f ms\n", stats.SolveTimeMs.Average)
	fmt.Printf("Median: %.2f ms\n", stats.SolveTimeMs.Median)
	fmt.Printf("Min: %.2f ms\n", stats.SolveTimeMs.Min)
	fmt.Printf("Max: %.2f ms\n", stats.SolveTimeMs.Max)

	fmt.Println()
	fmt.Println("--- SOLUTION LENGTH STATISTICS (moves) ---")
	fmt.Printf("90th percentile: %.1f moves\n", stats.Length.P90)
	fmt.Printf("95th percentile: %.1f moves\n", stats.Length.P95)
	fmt.Printf("99th percentile: %.1f moves\n", stats.Length.P99)
	fmt.Printf("Average: %.1f moves\n", stats.Length.Average)
	fmt.Printf("Median: %.1f moves\n", stats.Length.Median)
	fmt.Printf("Min: %.1f moves\n", stats.Length.Min)
	fmt.Printf("Max: %.1f moves\n", stats.Length.Max)

	fmt.Println()
	fmt.Println("=======================================")
}

func openResultStore() (*resultstore.Store, error) {
	if dbPath != "" {
		return resultstore.Open(dbPath)
	}
	return resultstore.OpenDefault()
}
