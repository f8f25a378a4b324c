package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLogWriteParseRoundTrip(t *testing.T) {
	l := Log{
		ACODuration:  2*time.Minute + 13*time.Second,
		ACOCost:      123.456,
		ACORoutes:    [][]string{{"1", "2", "1"}},
		ALNSDuration: 5*time.Minute + 1*time.Second,
		ALNSCost:     98.7,
		ALNSRoutes:   [][]string{{"1", "2", "S", "1"}},
	}

	var buf bytes.Buffer
	require.NoError(t, l.Write(&buf))

	s, err := ParseLog(&buf)
	require.NoError(t, err)
	require.Equal(t, l.ACODuration, s.ACODuration)
	require.InDelta(t, l.ACOCost, s.ACOCost, 1e-9)
	require.Equal(t, l.ALNSDuration, s.ALNSDuration)
	require.InDelta(t, l.ALNSCost, s.ALNSCost, 1e-9)
}

func TestParseLogIncomplete(t *testing.T) {
	_, err := ParseLog(bytes.NewBufferString("nothing useful here\n"))
	require.ErrorIs(t, err, ErrIncompleteLog)
}

func TestAggregate(t *testing.T) {
	summaries := []Summary{
		{ACOCost: 100, ALNSCost: 90},
		{ACOCost: 110, ALNSCost: 80},
		{ACOCost: 90, ALNSCost: 95},
	}
	table := Aggregate(summaries)
	require.Equal(t, 3, table.Runs)
	require.InDelta(t, 80.0, table.BestALNSCost, 1e-9)
	require.InDelta(t, 100.0, table.MeanACOCost, 1e-9)
}

func TestAggregateEmpty(t *testing.T) {
	require.Equal(t, Table{}, Aggregate(nil))
}

func TestNewRunDir(t *testing.T) {
	base := t.TempDir()
	now := time.Date(2026, 7, 31, 15, 30, 0, 0, time.UTC)
	dir, err := NewRunDir(base, now)
	require.NoError(t, err)
	require.DirExists(t, dir)
}
