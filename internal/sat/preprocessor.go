package sat

// Preprocessor runs once before the solver proper is initialized: it
// exhaustively propagates unit clauses and renumbers the surviving
// variables densely from 1, recording enough to map a solution of the
// reduced problem back onto the original variable ids.
type Preprocessor struct {
	forced  []Literal       // original-numbering literals forced true
	mapping map[VarID]VarID // original var -> dense var, retained vars only
	reverse []VarID         // dense var -> original var, index 0 unused
}

func newPreprocessor() *Preprocessor {
	return &Preprocessor{mapping: make(map[VarID]VarID)}
}

// Process simplifies clauses (each a plain literal slice, as read from
// DIMACS) by exhaustive unit propagation, then renumbers the variables
// still appearing in some surviving clause. unsat is true if propagation
// derived the empty clause or a contradictory pair of forced units.
func (p *Preprocessor) Process(clauses [][]Literal, numVars int) (out [][]Literal, newNumVars int, unsat bool) {
	live := make([]bool, len(clauses))
	for i := range live {
		live[i] = true
	}
	forcedSet := make(map[Literal]bool)

	for changed := true; changed; {
		changed = false
		for i, c := range clauses {
			if !live[i] {
				continue
			}
			var kept []Literal
			satisfied := false
			for _, l := range c {
				switch {
				case forcedSet[l]:
					satisfied = true
				case forcedSet[l.Negate()]:
					// literal forced false: drop it, clause survives
				default:
					kept = append(kept, l)
				}
			}
			if satisfied {
				live[i] = false
				continue
			}
			switch len(kept) {
			case 0:
				return nil, 0, true
			case 1:
				lit := kept[0]
				if forcedSet[lit.Negate()] {
					return nil, 0, true
				}
				if !forcedSet[lit] {
					forcedSet[lit] = true
					p.forced = append(p.forced, lit)
					changed = true
				}
				live[i] = false
			default:
				clauses[i] = kept
			}
		}
	}

	p.reverse = make([]VarID, 1, numVars+1)
	nextID := VarID(1)
	for i, c := range clauses {
		if !live[i] {
			continue
		}
		newClause := make([]Literal, len(c))
		for j, l := range c {
			v := l.Var()
			nv, ok := p.mapping[v]
			if !ok {
				nv = nextID
				p.mapping[v] = nv
				p.reverse = append(p.reverse, v)
				nextID++
			}
			newClause[j] = NewLiteral(nv, l.IsPositive())
		}
		out = append(out, newClause)
	}
	return out, int(nextID) - 1, false
}

// Reconstruct builds a full assignment over the original numOriginalVars
// variables from solved, which is indexed by the dense variable ids
// Process produced, plus whatever units were forced away entirely.
func (p *Preprocessor) Reconstruct(numOriginalVars int, solved []LBool) []LBool {
	full := make([]LBool, numOriginalVars+1)
	for nv := 1; nv < len(solved) && nv < len(p.reverse); nv++ {
		full[p.reverse[nv]] = solved[nv]
	}
	for _, lit := range p.forced {
		full[lit.Var()] = Lift(lit.IsPositive())
	}
	return full
}
