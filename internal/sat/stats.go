package sat

import (
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Stats accumulates the counters the search loop reports periodically
// and at the end of the run.
type Stats struct {
	StartTime       time.Time
	Conflicts       int
	Decisions       int
	Propagations    int
	Restarts        int
	Reductions      int
	InprocessedVars int
	LearntClauses   int
}

func newStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}

// PrintHeader writes the column header of the periodic progress table.
func PrintHeader(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"time", "conflicts", "decisions", "restarts", "learnts", "reductions"})
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: false, Top: true, Right: false, Bottom: false})
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.Render()
}

// PrintRow writes one row of the periodic progress table, colored green
// normally and yellow while a restart or reduction just happened, so a
// human skimming scrollback can spot them.
func PrintRow(w io.Writer, s *Stats, justRestarted, justReduced bool) {
	row := []string{
		color.New(color.FgCyan).Sprintf("%8.1fs", s.Elapsed().Seconds()),
		formatCount(s.Conflicts, justRestarted),
		formatCount(s.Decisions, false),
		formatCount(s.Restarts, justRestarted),
		formatCount(s.LearntClauses, justReduced),
		formatCount(s.Reductions, justReduced),
	}
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: false, Top: false, Right: false, Bottom: false})
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.Append(row)
	table.Render()
}

func formatCount(n int, highlight bool) string {
	c := color.New(color.FgGreen)
	if highlight {
		c = color.New(color.FgYellow, color.Bold)
	}
	return c.Sprintf("%d", n)
}
