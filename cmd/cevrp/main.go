// Command cevrp is the CLI entry point for the CEVRP solver (spec.md §6):
// it parses an instance file, runs the MMAS→ALNS pipeline, and writes a
// timestamped run directory with the execution log the original format
// specifies. Grounded on the pack's only real cobra-based CLI shape
// (other_examples' cloudslash `cmd/` commands) for command/flag layout,
// since no example repo in the retrieval pack ships a complete cobra
// root+subcommand tree to copy wholesale.
package main

import "os"

func main() {
	os.Exit(Execute())
}
