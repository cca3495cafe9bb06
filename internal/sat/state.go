package sat

import "fmt"

// litValue reads a literal's value out of a per-variable assignment
// vector, accounting for polarity.
func litValue(vars []LBool, l Literal) LBool {
	v := vars[l.Var()]
	if l.IsPositive() {
		return v
	}
	return v.Opposite()
}

// deletedClauseID is the sentinel clause id written into a watch
// bucket slot whose clause either found a new watch elsewhere or is being
// compacted away; State.assign filters these out after each scan.
const deletedClauseID ClauseID = -1

// State is the mutable heart of the solver: the current assignment, the
// clause database and its watch lists. It owns the single entry point
// (assign) through which a literal becomes true and every watching clause
// reacts.
type State struct {
	Vars    []LBool // indexed by VarID; Vars[0] unused
	Phases  []bool  // last (or preferred) polarity, used by the solver to pick a decision's polarity
	NumVars int

	DB      *ClauseDatabase
	Watcher *Watcher

	// ConflictClause is the id of the clause that triggered the current
	// conflict, or noReason if none.
	ConflictClause ClauseID
}

func newState(numVars int, db *ClauseDatabase, watcher *Watcher) *State {
	return &State{
		Vars:           make([]LBool, numVars+1),
		Phases:         make([]bool, numVars+1),
		NumVars:        numVars,
		DB:             db,
		Watcher:        watcher,
		ConflictClause: noReason,
	}
}

// Value returns the current value of a literal.
func (s *State) Value(l Literal) LBool {
	return litValue(s.Vars, l)
}

// IsAssigned reports whether v currently has a value.
func (s *State) IsAssigned(v VarID) bool {
	return s.Vars[v] != Unknown
}

// assign makes lit true, then scans every clause watching its negation,
// restoring the two-watched-literal invariant clause by clause. It stops
// scanning as soon as a conflict is found, per the invariant that on
// conflict the remaining (unscanned) entries of the watch list are left
// untouched: the for-loop below simply breaks before reaching them, and
// the trailing compaction pass only ever removes entries explicitly
// marked deletedClauseID.
func (s *State) assign(lit Literal, pq *PropQueue) {
	v := lit.Var()
	if s.Vars[v] != Unknown {
		panic(fmt.Sprintf("sat: variable %d assigned twice", v))
	}
	s.Vars[v] = Lift(lit.IsPositive())
	s.Phases[v] = lit.IsPositive()

	bucket := s.Watcher.watching(lit)
	n := len(*bucket)
	for i := 0; i < n; i++ {
		if s.ConflictClause != noReason {
			break
		}
		id := (*bucket)[i]
		if id == deletedClauseID {
			continue
		}
		clause := s.DB.Get(id)
		if clause.checkBlockingLiteral(s.Vars) {
			continue
		}

		upd := s.Watcher.updateClause(clause, lit.Negate(), s.Vars)
		switch upd.Kind {
		case watchFoundNewWatch:
			(*bucket)[i] = deletedClauseID
			s.Watcher.addWatch(clause.Literals[0], id)
		case watchSatisfied:
			clause.BlockingLiteral = upd.Literal
		case watchUnit:
			pq.Push(upd.Literal, id)
		case watchConflict:
			s.ConflictClause = id
		}
	}

	j := 0
	for _, id := range *bucket {
		if id != deletedClauseID {
			(*bucket)[j] = id
			j++
		}
	}
	*bucket = (*bucket)[:j]
}

// unassign reverts lit's variable to Unknown. It does not touch watch
// lists: those remain valid regardless of assignment state.
func (s *State) unassign(lit Literal) {
	s.Vars[lit.Var()] = Unknown
}

// IsSatisfied reports whether every variable is currently assigned, given
// the trail's current length.
func (s *State) IsSatisfied(trailLen int) bool {
	return trailLen == s.NumVars
}
