package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andromedak2/cevrp/internal/instance"
)

var instancesDir string

var instancesCmd = &cobra.Command{
	Use:   "instances",
	Short: "List discoverable instance files",
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := instance.Discover(instancesDir, ".txt")
		if err != nil {
			return err
		}
		for i, f := range files {
			fmt.Printf("%d: %s\n", i, f)
		}
		return nil
	},
}

func init() {
	instancesCmd.Flags().StringVar(&instancesDir, "instances-dir", "instances", "directory to scan for .txt instance files")
}

// resolveInstancePath treats arg as a direct file path unless it parses as
// an integer, in which case it indexes instance.Discover(dir, ".txt") (a
// negative or too-large index is reported as out of range) — spec.md §6's
// "interactive selection" reproduced non-interactively.
func resolveInstancePath(dir, arg string) (string, error) {
	idx, err := parseIndex(arg)
	if err != nil {
		return arg, nil
	}
	files, err := instance.Discover(dir, ".txt")
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(files) {
		return "", fmt.Errorf("cevrp: instance index %d out of range (found %d instances under %q)", idx, len(files), dir)
	}
	return files[idx], nil
}

func parseIndex(s string) (int, error) {
	var n int
	var count int
	if _, err := fmt.Sscanf(s, "%d%n", &n, &count); err != nil || count != len(s) {
		return 0, fmt.Errorf("not an index")
	}
	return n, nil
}
