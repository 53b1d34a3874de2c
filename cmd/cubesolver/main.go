// Command cubesolver is the CLI entrypoint: interactive solving and
// benchmark subcommands over the two-phase IDA* solver.
package main

import "github.com/SeamusWaldron/cubesolver/internal/cli"

func main() {
	cli.Execute()
}
