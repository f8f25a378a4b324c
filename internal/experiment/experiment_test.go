package experiment_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andromedak2/cevrp/internal/experiment"
)

func TestBaselineAndOptimizedDifferOnlyInNumbers(t *testing.T) {
	base := experiment.Baseline()
	opt := experiment.Optimized()
	assert.NotEqual(t, base.MMAS.NumAnts, opt.MMAS.NumAnts)
	assert.NotEqual(t, base.ALNS.NumIterations, opt.ALNS.NumIterations)
	assert.Equal(t, base.DirectoryPath, opt.DirectoryPath)
}

func TestWithSeedAppliesToBothPhases(t *testing.T) {
	e := experiment.New(experiment.WithSeed(77))
	assert.EqualValues(t, 77, e.MMAS.Seed)
	assert.EqualValues(t, 77, e.ALNS.Seed)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "experiment.yaml")

	e := experiment.New(experiment.WithSeed(5), experiment.WithDirectoryPath("out"))
	require.NoError(t, experiment.SaveFile(path, e))

	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := experiment.LoadFile(path)
	require.NoError(t, err)
	assert.EqualValues(t, 5, loaded.MMAS.Seed)
	assert.Equal(t, "out", loaded.DirectoryPath)
}
