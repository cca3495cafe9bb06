package sat

// watchKind tags the result of Watcher.updateClause.
type watchKind int8

const (
	watchFoundNewWatch watchKind = iota
	watchUnit
	watchConflict
	watchSatisfied
)

// watchUpdate is the outcome of asserting a literal false against one
// watched clause. Literal is meaningful only for watchUnit (the forced
// literal) and watchSatisfied (the new blocking literal).
type watchUpdate struct {
	Kind    watchKind
	Literal Literal
}

// varWatch holds, for one variable, the clause ids currently watching its
// positive literal and the clause ids currently watching its negative
// literal.
type varWatch struct {
	Pos []ClauseID
	Neg []ClauseID
}

// Watcher implements two-watched-literal propagation: for each variable it
// maintains the set of clauses that have registered that variable's
// positive (or negative) literal as one of their two watched positions.
type Watcher struct {
	watches []varWatch
}

// newWatcher returns a Watcher with empty watch lists for numVars
// variables (ids 1..numVars).
func newWatcher(numVars int) *Watcher {
	return &Watcher{watches: make([]varWatch, numVars+1)}
}

// bucketFor returns the watch list keyed by the literal itself: the list
// of clauses that registered l as one of their two watched literals.
func (w *Watcher) bucketFor(l Literal) *[]ClauseID {
	vw := &w.watches[l.Var()]
	if l.IsPositive() {
		return &vw.Pos
	}
	return &vw.Neg
}

// watching returns the watch list that must be scanned when assignedTrue
// is newly assigned true, i.e. the list of clauses watching its negation
// (which has just become false).
func (w *Watcher) watching(assignedTrue Literal) *[]ClauseID {
	return w.bucketFor(assignedTrue.Negate())
}

// addWatch registers clause id as watching literal l.
func (w *Watcher) addWatch(l Literal, id ClauseID) {
	b := w.bucketFor(l)
	*b = append(*b, id)
}

// addClause registers the clause's two watched positions. Clauses with
// fewer than two literals (units) are never watched: they are handled by
// direct enqueue instead (§4.3).
func (w *Watcher) addClause(clause *Clause, id ClauseID) {
	if len(clause.Literals) < 2 {
		return
	}
	w.addWatch(clause.Literals[0], id)
	w.addWatch(clause.Literals[1], id)
}

// deleteClause unregisters the clause's two watched positions.
func (w *Watcher) deleteClause(clause *Clause, id ClauseID) {
	if len(clause.Literals) < 2 {
		return
	}
	w.removeWatch(clause.Literals[0], id)
	w.removeWatch(clause.Literals[1], id)
}

func (w *Watcher) removeWatch(l Literal, id ClauseID) {
	b := w.bucketFor(l)
	j := 0
	for i, cid := range *b {
		if cid != id {
			(*b)[j] = (*b)[i]
			j++
		}
	}
	*b = (*b)[:j]
}

// updateClause is called after invalidLiteral has just become false in
// clause. It restores the two-watched-literal invariant or reports why it
// could not: see §4.2 of the specification for the full contract.
func (w *Watcher) updateClause(clause *Clause, invalidLiteral Literal, vars []LBool) watchUpdate {
	lits := clause.Literals

	if lits[0] != invalidLiteral {
		lits[0], lits[1] = lits[1], lits[0]
	}

	if litValue(vars, lits[1]) == False {
		return watchUpdate{Kind: watchConflict}
	}

	for i := 2; i < len(lits); i++ {
		switch litValue(vars, lits[i]) {
		case True:
			return watchUpdate{Kind: watchSatisfied, Literal: lits[i]}
		case Unknown:
			lits[0], lits[i] = lits[i], lits[0]
			return watchUpdate{Kind: watchFoundNewWatch}
		}
	}

	return watchUpdate{Kind: watchUnit, Literal: lits[1]}
}
