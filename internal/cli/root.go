// Package cli implements the command-line interface for cubesolver.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dataDir string
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Near-optimal two-phase IDA* solver for the 3x3x3 Rubik's Cube",
	Long: `cubesolver finds near-optimal move sequences for the 3x3x3 Rubik's Cube
using a two-phase IDA* algorithm: phase 1 drives the cube into the G1
subgroup, phase 2 solves it from there using only moves that keep G1
invariant.

Move, pruning, and endgame tables are generated once and cached under
--data-dir.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "directory holding generated move/pruning/endgame tables")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "benchmark result database path (default: ~/.cubesolver/bench.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log table-loading and solve progress to stderr")
}

// logf prints a diagnostic line to stderr when --verbose is set; it is a
// no-op otherwise.
func logf(format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
