package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var sortLiterals = cmpopts.SortSlices(func(a, b Literal) bool { return a < b })

func TestNormalizeClause_RemovesDuplicates(t *testing.T) {
	in := []Literal{1, 2, 1, 3, 2}
	out, tautology := normalizeClause(in)
	if tautology {
		t.Fatalf("unexpected tautology")
	}
	seen := map[Literal]bool{}
	for _, l := range out {
		if seen[l] {
			t.Fatalf("duplicate literal %v survived normalization: %v", l, out)
		}
		seen[l] = true
	}
	for _, want := range []Literal{1, 2, 3} {
		if !seen[want] {
			t.Fatalf("normalized clause %v missing literal %v", out, want)
		}
	}
}

func TestNormalizeClause_DetectsTautology(t *testing.T) {
	in := []Literal{1, -2, 2}
	_, tautology := normalizeClause(in)
	if !tautology {
		t.Fatalf("expected clause with both x2 and !x2 to be flagged a tautology")
	}
}

func TestNormalizeClause_NoChangeWhenAlreadyClean(t *testing.T) {
	in := []Literal{1, -2, 3}
	out, tautology := normalizeClause(in)
	if tautology {
		t.Fatalf("unexpected tautology")
	}
	if len(out) != 3 {
		t.Fatalf("want 3 literals, got %d (%v)", len(out), out)
	}
}

func TestNormalizeClause_RemovesDuplicates_MatchesExpectedSet(t *testing.T) {
	in := []Literal{1, 2, 1, 3, 2}
	out, _ := normalizeClause(in)
	want := []Literal{1, 2, 3}
	if diff := cmp.Diff(want, out, sortLiterals); diff != "" {
		t.Fatalf("normalizeClause mismatch (-want +got):\n%s", diff)
	}
}
