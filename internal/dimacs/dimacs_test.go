package dimacs

import (
	"bytes"
	"compress/gzip"
	"strings"
	"testing"

	"github.com/hbradburn/satyr/internal/sat"
)

func TestParse_WellFormedWithCommentsAndHeader(t *testing.T) {
	in := strings.NewReader(`c a comment line
p cnf 3 2
1 -2 0
% another comment style
2 3 0
`)
	cnf, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cnf.NumVars != 3 {
		t.Fatalf("want NumVars=3, got %d", cnf.NumVars)
	}
	want := [][]sat.Literal{{1, -2}, {2, 3}}
	if len(cnf.Clauses) != len(want) {
		t.Fatalf("want %d clauses, got %d (%v)", len(want), len(cnf.Clauses), cnf.Clauses)
	}
	for i := range want {
		if len(cnf.Clauses[i]) != len(want[i]) {
			t.Fatalf("clause %d: want %v, got %v", i, want[i], cnf.Clauses[i])
		}
		for j := range want[i] {
			if cnf.Clauses[i][j] != want[i][j] {
				t.Fatalf("clause %d: want %v, got %v", i, want[i], cnf.Clauses[i])
			}
		}
	}
}

func TestParse_MultipleLiteralsSpanningLines(t *testing.T) {
	in := strings.NewReader("p cnf 2 1\n1\n-2\n0\n")
	cnf, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cnf.Clauses) != 1 || len(cnf.Clauses[0]) != 2 {
		t.Fatalf("want one 2-literal clause, got %v", cnf.Clauses)
	}
}

func TestParse_TransparentGzipDecoding(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte("p cnf 2 1\n1 -2 0\n")); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	cnf, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse (gzip): %v", err)
	}
	if cnf.NumVars != 2 || len(cnf.Clauses) != 1 {
		t.Fatalf("unexpected parse result: %+v", cnf)
	}
}

func TestParse_MissingHeaderIsError(t *testing.T) {
	in := strings.NewReader("1 -2 0\n")
	if _, err := Parse(in); err == nil {
		t.Fatalf("want error for missing header")
	}
}

func TestParse_MalformedHeaderIsError(t *testing.T) {
	in := strings.NewReader("p cnf 3\n1 2 0\n")
	if _, err := Parse(in); err == nil {
		t.Fatalf("want error for malformed header (missing field)")
	}
}

func TestParse_InvalidLiteralTokenIsError(t *testing.T) {
	in := strings.NewReader("p cnf 2 1\n1 xyz 0\n")
	if _, err := Parse(in); err == nil {
		t.Fatalf("want error for invalid literal token")
	}
}

func TestParse_UnterminatedFinalClauseIsError(t *testing.T) {
	in := strings.NewReader("p cnf 2 1\n1 -2\n")
	if _, err := Parse(in); err == nil {
		t.Fatalf("want error for clause missing trailing 0")
	}
}

func TestParse_ClauseCountMismatchIsError(t *testing.T) {
	in := strings.NewReader("p cnf 2 2\n1 -2 0\n")
	if _, err := Parse(in); err == nil {
		t.Fatalf("want error for clause count mismatch against header")
	}
}

func TestWriteParseSolution_RoundTripSatisfiable(t *testing.T) {
	model := []sat.LBool{sat.Unknown, sat.True, sat.False, sat.True}

	var buf bytes.Buffer
	if err := WriteSolution(&buf, sat.Satisfiable, model); err != nil {
		t.Fatalf("WriteSolution: %v", err)
	}

	status, got, err := ParseSolution(&buf, 3)
	if err != nil {
		t.Fatalf("ParseSolution: %v", err)
	}
	if status != sat.Satisfiable {
		t.Fatalf("want Satisfiable, got %v", status)
	}
	for v := 1; v <= 3; v++ {
		if got[v] != model[v] {
			t.Fatalf("var %d: want %v, got %v", v, model[v], got[v])
		}
	}
}

func TestWriteParseSolution_RoundTripUnsatisfiable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSolution(&buf, sat.Unsatisfiable, nil); err != nil {
		t.Fatalf("WriteSolution: %v", err)
	}
	if got := buf.String(); strings.TrimSpace(got) != "s UNSATISFIABLE" {
		t.Fatalf("want bare UNSATISFIABLE line, got %q", got)
	}

	status, model, err := ParseSolution(&buf, 3)
	if err != nil {
		t.Fatalf("ParseSolution: %v", err)
	}
	if status != sat.Unsatisfiable {
		t.Fatalf("want Unsatisfiable, got %v", status)
	}
	if model != nil {
		t.Fatalf("want nil model for unsatisfiable instance, got %v", model)
	}
}
