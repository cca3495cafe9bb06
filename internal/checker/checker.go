// Package checker independently verifies a candidate assignment against
// the original CNF it is claimed to satisfy, per spec §7 ("the solution
// is verified by the checker and a WRONG-SOLUTION marker is emitted if
// verification fails"). It knows nothing about the solver internals: it
// only reads literals and an assignment vector.
package checker

import "github.com/hbradburn/satyr/internal/sat"

// Verify reports whether every clause in clauses has at least one literal
// true under model. model is indexed by variable id (model[0] unused); a
// variable with no entry (sat.Unknown) is treated as unsatisfying every
// literal that mentions it, matching the original implementation this
// solver's assignment semantics were distilled from.
func Verify(clauses [][]sat.Literal, model []sat.LBool) bool {
	for _, clause := range clauses {
		if !clauseSatisfied(clause, model) {
			return false
		}
	}
	return true
}

func clauseSatisfied(clause []sat.Literal, model []sat.LBool) bool {
	for _, lit := range clause {
		v := lit.Var()
		if int(v) >= len(model) {
			continue
		}
		val := model[v]
		if val == sat.Unknown {
			continue
		}
		if (val == sat.True) == lit.IsPositive() {
			return true
		}
	}
	return false
}
