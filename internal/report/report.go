// Package report reproduces the original solver's run-directory output
// contract (spec.md §6 "Outputs"): a timestamped run directory holding a
// plain-text execution log with four fixed literal markers, plus a parser
// and aggregator that recover those markers from a log (grounded on
// original_source/Shared/Utils/folder_script.py and
// original_source/Shared/Utils/extract_results.py).
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"
)

// Markers written to the execution log, verbatim per spec.md §6.
const (
	acoTimeMarker  = "⏱ ACO Solution Execution time:"
	acoCostMarker  = "ACO - Initial total cost:"
	alnsTimeMarker = "⏱ ALNS Optimization Execution time:"
	alnsCostMarker = "ALNS - Final total cost:"
)

// NewRunDir creates a fresh timestamped directory under base (e.g.
// "runs/20260731-153000") and returns its path. Mirrors
// folder_script.py's per-run output directory.
func NewRunDir(base string, now time.Time) (string, error) {
	dir := filepath.Join(base, now.Format("20060102-150405"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Log writes the execution log for a single run to w, in the exact section
// order and marker text spec.md §6 specifies: ACO timing, ACO initial
// cost, per-phase route dump, ALNS timing, ALNS final cost.
type Log struct {
	ACODuration  time.Duration
	ACOCost      float64
	ACORoutes    [][]string
	ALNSDuration time.Duration
	ALNSCost     float64
	ALNSRoutes   [][]string
}

// Write renders l to w as the plain-text execution log.
func (l Log) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s %s\n", acoTimeMarker, formatDuration(l.ACODuration))
	fmt.Fprintf(bw, "%s %f\n", acoCostMarker, l.ACOCost)
	writeRoutes(bw, "ACO", l.ACORoutes)

	fmt.Fprintf(bw, "%s %s\n", alnsTimeMarker, formatDuration(l.ALNSDuration))
	fmt.Fprintf(bw, "%s %f\n", alnsCostMarker, l.ALNSCost)
	writeRoutes(bw, "ALNS", l.ALNSRoutes)

	return bw.Flush()
}

func writeRoutes(w *bufio.Writer, phase string, routes [][]string) {
	for i, r := range routes {
		fmt.Fprintf(w, "%s route %d: %v\n", phase, i, r)
	}
}

// formatDuration renders d as "<m>m <s>s", the format spec.md §6's markers
// embed (e.g. "2m 13s").
func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) - m*60
	return fmt.Sprintf("%dm %ds", m, s)
}

// Summary is the subset of a run's log extracted by ParseLog, mirroring
// extract_results.py's tabulated columns.
type Summary struct {
	ACODuration  time.Duration
	ACOCost      float64
	ALNSDuration time.Duration
	ALNSCost     float64
}

var (
	durationRE = regexp.MustCompile(`(\d+)m (\d+)s`)
	costRE     = regexp.MustCompile(`[-+]?[0-9]*\.?[0-9]+`)
)

// ParseLog greps r for the four literal markers spec.md §6 specifies and
// returns the parsed Summary. It tolerates any surrounding log noise
// between marker lines (other sections, route dumps) but requires all
// four markers to be present.
func ParseLog(r io.Reader) (Summary, error) {
	var s Summary
	var seen [4]bool

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case containsMarker(line, acoTimeMarker):
			d, err := parseDurationSuffix(line)
			if err != nil {
				return Summary{}, err
			}
			s.ACODuration = d
			seen[0] = true
		case containsMarker(line, acoCostMarker):
			c, err := parseCostSuffix(line)
			if err != nil {
				return Summary{}, err
			}
			s.ACOCost = c
			seen[1] = true
		case containsMarker(line, alnsTimeMarker):
			d, err := parseDurationSuffix(line)
			if err != nil {
				return Summary{}, err
			}
			s.ALNSDuration = d
			seen[2] = true
		case containsMarker(line, alnsCostMarker):
			c, err := parseCostSuffix(line)
			if err != nil {
				return Summary{}, err
			}
			s.ALNSCost = c
			seen[3] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return Summary{}, err
	}
	for _, ok := range seen {
		if !ok {
			return Summary{}, ErrIncompleteLog
		}
	}
	return s, nil
}

// ErrIncompleteLog indicates a log was missing one of the four required
// markers (spec.md §6).
var ErrIncompleteLog = fmt.Errorf("report: log missing one or more required markers")

func containsMarker(line, marker string) bool {
	return len(line) >= len(marker) && line[:len(marker)] == marker
}

func parseDurationSuffix(line string) (time.Duration, error) {
	m := durationRE.FindStringSubmatch(line)
	if m == nil {
		return 0, fmt.Errorf("report: no duration in line %q", line)
	}
	mins, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}
	secs, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, err
	}
	return time.Duration(mins)*time.Minute + time.Duration(secs)*time.Second, nil
}

func parseCostSuffix(line string) (float64, error) {
	m := costRE.FindString(line)
	if m == "" {
		return 0, fmt.Errorf("report: no numeric cost in line %q", line)
	}
	return strconv.ParseFloat(m, 64)
}

// Table aggregates Summaries across a batch of runs (extract_results.py's
// cross-run tabulation), reporting the best (lowest-cost) ALNS run and the
// mean ACO/ALNS costs across the batch.
type Table struct {
	Runs         int
	BestALNSCost float64
	MeanACOCost  float64
	MeanALNSCost float64
}

// Aggregate reduces a batch of Summaries to a Table. Aggregate returns the
// zero Table for an empty batch.
func Aggregate(summaries []Summary) Table {
	if len(summaries) == 0 {
		return Table{}
	}
	var t Table
	t.Runs = len(summaries)
	t.BestALNSCost = summaries[0].ALNSCost
	var sumACO, sumALNS float64
	for _, s := range summaries {
		sumACO += s.ACOCost
		sumALNS += s.ALNSCost
		if s.ALNSCost < t.BestALNSCost {
			t.BestALNSCost = s.ALNSCost
		}
	}
	t.MeanACOCost = sumACO / float64(len(summaries))
	t.MeanALNSCost = sumALNS / float64(len(summaries))
	return t
}
