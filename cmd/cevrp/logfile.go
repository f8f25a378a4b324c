package main

import (
	"os"
	"path/filepath"
)

// createLogFile opens the standard execution-log filename within a run
// directory created by report.NewRunDir.
func createLogFile(dir string) (*os.File, error) {
	return os.Create(filepath.Join(dir, "execution.log"))
}
