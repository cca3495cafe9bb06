package sat

import "testing"

func litSet(lits []Literal) map[Literal]bool {
	out := make(map[Literal]bool, len(lits))
	for _, l := range lits {
		out[l] = true
	}
	return out
}

func TestResolve_DropsPivotAndDeduplicates(t *testing.T) {
	resolvent, tautology := resolve(lits(1, 2), lits(-1, 3), VarID(1))
	if tautology {
		t.Fatalf("unexpected tautology")
	}
	want := litSet(lits(2, 3))
	got := litSet(resolvent)
	if len(got) != len(want) {
		t.Fatalf("want resolvent %v, got %v", want, resolvent)
	}
	for l := range want {
		if !got[l] {
			t.Fatalf("resolvent %v missing literal %v", resolvent, l)
		}
	}
}

func TestResolve_DetectsTautology(t *testing.T) {
	_, tautology := resolve(lits(1, 2), lits(-1, -2), VarID(1))
	if !tautology {
		t.Fatalf("resolving on x1 leaves both 2 and -2: want tautology")
	}
}

func TestInprocessor_EliminateResolvesVariableAway(t *testing.T) {
	db := newClauseDatabase(NewProofLogger(nil))
	watcher := newWatcher(5)
	state := newState(5, db, watcher)
	pq := newPropQueue(5)

	c1 := db.Add(&Clause{Literals: lits(1, 2)}, false)
	c2 := db.Add(&Clause{Literals: lits(-2, 3)}, false)
	watcher.addClause(db.Get(c1), c1)
	watcher.addClause(db.Get(c2), c2)

	posOcc := map[VarID][]ClauseID{2: {c1}}
	negOcc := map[VarID][]ClauseID{2: {c2}}

	ip := newInprocessor()
	ip.eliminate(VarID(2), state, pq, posOcc, negOcc)

	if !db.IsFree(c1) || !db.IsFree(c2) {
		t.Fatalf("both clauses mentioning var 2 should have been deleted")
	}
	if len(ip.stack) != 2 {
		t.Fatalf("want 2 reconstruction entries, got %d", len(ip.stack))
	}

	var live []ClauseID
	for _, id := range db.Originals() {
		if !db.IsFree(id) {
			live = append(live, id)
		}
	}
	if len(live) != 1 {
		t.Fatalf("want exactly 1 surviving clause (the resolvent), got %d", len(live))
	}
	resolvent := db.Get(live[0]).Literals
	want := litSet(lits(1, 3))
	got := litSet(resolvent)
	if len(got) != len(want) || !got[Literal(1)] || !got[Literal(3)] {
		t.Fatalf("want resolvent {1,3}, got %v", resolvent)
	}
}

func TestInprocessor_Reconstruct_ExtendsAssignmentToEliminatedVariable(t *testing.T) {
	db := newClauseDatabase(NewProofLogger(nil))
	watcher := newWatcher(5)
	state := newState(5, db, watcher)
	pq := newPropQueue(5)

	c1 := db.Add(&Clause{Literals: lits(1, 2)}, false)
	c2 := db.Add(&Clause{Literals: lits(-2, 3)}, false)
	watcher.addClause(db.Get(c1), c1)
	watcher.addClause(db.Get(c2), c2)

	ip := newInprocessor()
	ip.eliminate(VarID(2), state, pq, map[VarID][]ClauseID{2: {c1}}, map[VarID][]ClauseID{2: {c2}})

	candidate := make([]LBool, 4) // vars 1..3
	candidate[1] = False
	candidate[3] = True

	ip.Reconstruct(candidate)

	if candidate[2] != True {
		t.Fatalf("want var 2 reconstructed to true (clause {1,2} is not otherwise satisfied), got %v", candidate[2])
	}
	if !verify([][]Literal{lits(1, 2), lits(-2, 3)}, candidate) {
		t.Fatalf("reconstructed assignment %v does not satisfy the original clauses", candidate)
	}
}
