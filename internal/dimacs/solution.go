package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hbradburn/satyr/internal/sat"
)

// WriteSolution renders a solver outcome in the DIMACS solution format
// (§6): "s SATISFIABLE" followed by a "v" line of signed literals in
// ascending variable order and a terminating 0, or bare "s UNSATISFIABLE".
// model is indexed by variable id (model[0] is unused) and must have
// every variable assigned when status is Satisfiable.
func WriteSolution(w io.Writer, status sat.Status, model []sat.LBool) error {
	if status != sat.Satisfiable {
		_, err := fmt.Fprintln(w, "s UNSATISFIABLE")
		return err
	}
	if _, err := fmt.Fprintln(w, "s SATISFIABLE"); err != nil {
		return err
	}
	var sb strings.Builder
	sb.WriteString("v")
	for v := 1; v < len(model); v++ {
		sb.WriteByte(' ')
		if model[v] != sat.True {
			sb.WriteByte('-')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteString(" 0")
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// ParseSolution reads back the output of WriteSolution. numVars is the
// number of variables the caller expects; for a satisfiable instance the
// returned model is sized accordingly, and for an unsatisfiable one it is
// nil.
func ParseSolution(r io.Reader, numVars int) (status sat.Status, model []sat.LBool, err error) {
	scanner := bufio.NewScanner(r)
	model = make([]sat.LBool, numVars+1)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "s UNSATISFIABLE"):
			return sat.Unsatisfiable, nil, nil
		case strings.HasPrefix(line, "s SATISFIABLE"):
			status = sat.Satisfiable
		case strings.HasPrefix(line, "v "):
			for _, tok := range strings.Fields(line[2:]) {
				n, convErr := strconv.Atoi(tok)
				if convErr != nil {
					return 0, nil, fmt.Errorf("invalid literal %q in solution", tok)
				}
				if n == 0 {
					continue
				}
				l := sat.Literal(n)
				model[l.Var()] = sat.Lift(l.IsPositive())
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, err
	}
	return status, model, nil
}
