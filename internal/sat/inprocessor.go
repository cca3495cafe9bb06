package sat

import "sort"

// variableElimination records one clause that was deleted while
// eliminating a variable by resolution, together with the polarity that
// variable held in it. The reconstruction stack is built from these so a
// satisfying assignment of the reduced formula can be extended back onto
// the eliminated variables (Järvisalo, Heule, Biere, "Inprocessing
// Rules", 2012).
type variableElimination struct {
	Literal Literal
	Clause  []Literal
}

// Inprocessor performs bounded variable elimination (§4.8): a variable is
// eliminated by resolving every clause containing it positively against
// every clause containing it negatively, but only when doing so strictly
// reduces the clause count. Only original clauses participate; learnt
// clauses are left untouched.
type Inprocessor struct {
	stack []variableElimination
}

func newInprocessor() *Inprocessor {
	return &Inprocessor{}
}

// Run attempts BVE on every variable, lowest occurrence count first,
// stopping as soon as deadline reports the time budget is spent. The
// caller is responsible for having fully backtracked the trail (including
// unassigning level-0 forced units) before calling Run, and for
// re-enqueuing those units afterward.
func (ip *Inprocessor) Run(s *State, pq *PropQueue, numVars int, deadline func() bool) {
	occurrences := func() (posOcc, negOcc map[VarID][]ClauseID) {
		posOcc = make(map[VarID][]ClauseID)
		negOcc = make(map[VarID][]ClauseID)
		for _, id := range s.DB.Originals() {
			if s.DB.IsFree(id) {
				continue
			}
			for _, lit := range s.DB.Get(id).Literals {
				if lit.IsPositive() {
					posOcc[lit.Var()] = append(posOcc[lit.Var()], id)
				} else {
					negOcc[lit.Var()] = append(negOcc[lit.Var()], id)
				}
			}
		}
		return posOcc, negOcc
	}
	posOcc, negOcc := occurrences()

	order := make([]VarID, numVars)
	for i := range order {
		order[i] = VarID(i + 1)
	}
	sort.Slice(order, func(i, j int) bool {
		ci := len(posOcc[order[i]]) + len(negOcc[order[i]])
		cj := len(posOcc[order[j]]) + len(negOcc[order[j]])
		return ci < cj
	})

	for _, v := range order {
		if deadline() || s.ConflictClause != noReason {
			return
		}
		recorded := len(ip.stack)
		ip.eliminate(v, s, pq, posOcc, negOcc)
		if len(ip.stack) != recorded {
			// Clauses were replaced by resolvents: rebuild the occurrence
			// lists so later variables see the current clause set.
			posOcc, negOcc = occurrences()
		}
	}
}

func (ip *Inprocessor) eliminate(v VarID, s *State, pq *PropQueue, posOcc, negOcc map[VarID][]ClauseID) {
	pos := posOcc[v]
	neg := negOcc[v]
	before := len(pos) + len(neg)
	if before == 0 {
		return
	}

	var resolvents [][]Literal
	for _, c1 := range pos {
		if s.DB.IsFree(c1) {
			continue
		}
		for _, c2 := range neg {
			if s.DB.IsFree(c2) {
				continue
			}
			resolvent, tautology := resolve(s.DB.Get(c1).Literals, s.DB.Get(c2).Literals, v)
			if tautology {
				continue
			}
			resolvents = append(resolvents, resolvent)
			if len(resolvents) >= before {
				return // no net reduction: abort without mutating anything
			}
		}
	}

	// Add (and log) the resolvents before deleting the clauses they
	// replace, so a proof checker can still derive them and the deleted
	// clauses' ids are not reused by the resolvents.
	for _, lits := range resolvents {
		s.DB.proof.LogAddition(lits)
		clause := &Clause{Literals: lits}
		id := s.DB.Add(clause, false)
		switch {
		case len(lits) == 0:
			s.ConflictClause = id
			return
		case len(lits) == 1:
			pq.Push(lits[0], id)
		default:
			s.Watcher.addClause(clause, id)
		}
	}

	for _, id := range pos {
		if !s.DB.IsFree(id) {
			ip.recordAndDelete(s, id, NewLiteral(v, true))
		}
	}
	for _, id := range neg {
		if !s.DB.IsFree(id) {
			ip.recordAndDelete(s, id, NewLiteral(v, false))
		}
	}
}

func (ip *Inprocessor) recordAndDelete(s *State, id ClauseID, litPolarity Literal) {
	clause := s.DB.Get(id)
	litsCopy := append([]Literal(nil), clause.Literals...)
	ip.stack = append(ip.stack, variableElimination{Literal: litPolarity, Clause: litsCopy})
	s.Watcher.deleteClause(clause, id)
	s.DB.Delete(id)
}

// resolve combines two clauses on variable v, dropping v itself and
// deduplicating. tautology is true (and resolvent nil) if the resolvent
// would be a tautology.
func resolve(a, b []Literal, v VarID) (resolvent []Literal, tautology bool) {
	present := make(map[Literal]bool, len(a)+len(b))
	consider := func(l Literal) bool {
		if l.Var() == v {
			return false
		}
		if present[l.Negate()] {
			return true
		}
		if !present[l] {
			present[l] = true
			resolvent = append(resolvent, l)
		}
		return false
	}
	for _, l := range a {
		if consider(l) {
			return nil, true
		}
	}
	for _, l := range b {
		if consider(l) {
			return nil, true
		}
	}
	return resolvent, false
}

// Reconstruct restores the value of every eliminated variable in
// candidate, processing the stack in LIFO order: a variable is only set
// to match its polarity in a deleted clause if that clause is not
// already satisfied by the rest of the assignment.
func (ip *Inprocessor) Reconstruct(candidate []LBool) {
	for i := len(ip.stack) - 1; i >= 0; i-- {
		e := ip.stack[i]
		if !anySatisfied(candidate, e.Clause) {
			candidate[e.Literal.Var()] = Lift(e.Literal.IsPositive())
		}
	}
}

func anySatisfied(candidate []LBool, lits []Literal) bool {
	for _, l := range lits {
		if litValue(candidate, l) == True {
			return true
		}
	}
	return false
}
