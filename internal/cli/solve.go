package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/move"
	"github.com/SeamusWaldron/cubesolver/internal/render"
	"github.com/SeamusWaldron/cubesolver/internal/solver"
	"github.com/SeamusWaldron/cubesolver/internal/tables"
)

var strengthenHeuristic bool

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve scrambles interactively",
	Long: `Read scramble sequences one per line from standard input, solve each,
and print the solution. Enter 'exit' or send end-of-stream to quit.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&strengthenHeuristic, "strengthen-heuristic", false, "enable the heuristic-strengthening refinement")
}

func runSolve(cmd *cobra.Command, args []string) error {
	logf("loading tables from %s", dataDir)
	fmt.Println("Initializing tables...")
	tm, err := tables.Load(dataDir)
	if err != nil {
		return fmt.Errorf("load tables: %w", err)
	}
	fmt.Println("Tables initialized successfully.")

	s := solver.New(tm)
	s.StrengthenHeuristic = strengthenHeuristic

	interactive := isatty.IsTerminal(os.Stdin.Fd())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("Enter scramble sequence (or 'exit' to quit): ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" {
			break
		}
		if line == "" {
			fmt.Println("No scramble entered, please try again.")
			continue
		}

		c, err := cube.FromScramble(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			fmt.Println("Please enter a valid scramble sequence.")
			continue
		}

		if isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Println("Initial Cube State:")
			fmt.Println(render.Cube(c))
		}

		fmt.Println("Solving...")
		logf("solving scramble %q", line)
		solution, err := s.Solve(c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
			continue
		}
		logf("found a %d-move solution", len(solution))

		fmt.Printf("Solution found (%d moves):\n", len(solution))
		fmt.Println(move.FormatSequence(solution))

		if isatty.IsTerminal(os.Stdout.Fd()) {
			solved := c.Clone()
			solved.ApplySequence(solution)
			fmt.Println("Resulting Cube State:")
			fmt.Println(render.Cube(solved))
		}
	}

	return scanner.Err()
}
