package sat

import (
	"bytes"
	"strings"
	"testing"
)

func TestStats_Elapsed_IsNonNegative(t *testing.T) {
	s := newStats()
	if s.Elapsed() < 0 {
		t.Fatalf("elapsed time must never be negative, got %v", s.Elapsed())
	}
}

func TestPrintHeader_IncludesExpectedColumns(t *testing.T) {
	var buf bytes.Buffer
	PrintHeader(&buf)
	out := buf.String()
	for _, col := range []string{"CONFLICTS", "DECISIONS", "RESTARTS", "LEARNTS", "REDUCTIONS"} {
		if !strings.Contains(strings.ToUpper(out), col) {
			t.Fatalf("header missing column %q, got:\n%s", col, out)
		}
	}
}

func TestPrintRow_IncludesCounterValues(t *testing.T) {
	var buf bytes.Buffer
	s := newStats()
	s.Conflicts = 42
	s.Decisions = 7
	s.Restarts = 3
	s.LearntClauses = 99
	s.Reductions = 1

	PrintRow(&buf, s, false, false)
	out := buf.String()
	for _, want := range []string{"42", "7", "3", "99", "1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("row missing value %q, got:\n%s", want, out)
		}
	}
}
