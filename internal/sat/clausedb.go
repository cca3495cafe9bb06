package sat

// clauseSlot holds a clause plus its liveness: freed slots are recycled by
// Add so ids stay small even across heavy reduction.
type clauseSlot struct {
	clause *Clause
	free   bool
}

// ClauseDatabase owns every clause in the problem, original and learnt
// alike, addressed by ClauseID. It tracks which ids name original clauses
// (deleted only by inprocessing) separately from learnt ones (subject to
// reduction).
type ClauseDatabase struct {
	slots     []clauseSlot
	freeList  []ClauseID
	originals []ClauseID
	learnts   []ClauseID

	sinceReduction int
	reductions     int

	proof *ProofLogger
}

// newClauseDatabase returns an empty database that logs every learnt
// clause addition and every deletion to proof. proof may be an inactive
// logger (see NewProofLogger(nil)), in which case logging is a no-op.
func newClauseDatabase(proof *ProofLogger) *ClauseDatabase {
	return &ClauseDatabase{proof: proof}
}

// Get returns the clause stored under id. The id must name a live clause;
// callers that cannot guarantee this should check IsFree first.
func (db *ClauseDatabase) Get(id ClauseID) *Clause {
	return db.slots[id].clause
}

// IsFree reports whether id currently names no live clause.
func (db *ClauseDatabase) IsFree(id ClauseID) bool {
	return db.slots[id].free
}

// Add stores clause and returns the id it was assigned. learnt marks
// whether the clause counts toward the reduction budget.
func (db *ClauseDatabase) Add(clause *Clause, learnt bool) ClauseID {
	clause.Learnt = learnt

	var id ClauseID
	if n := len(db.freeList); n > 0 {
		id = db.freeList[n-1]
		db.freeList = db.freeList[:n-1]
		db.slots[id] = clauseSlot{clause: clause}
	} else {
		id = ClauseID(len(db.slots))
		db.slots = append(db.slots, clauseSlot{clause: clause})
	}

	if learnt {
		db.learnts = append(db.learnts, id)
		db.sinceReduction++
		// Only learnt clauses are logged as additions here: the checker a
		// DRAT proof is replayed against already has the original CNF, so
		// re-asserting an input clause would be redundant. The inprocessor
		// logs the resolvents it adds as originals itself.
		db.proof.LogAddition(clause.Literals)
	} else {
		db.originals = append(db.originals, id)
	}
	return id
}

// DueForReduction reports whether enough learnt clauses have accumulated
// since the last reduction to trigger another one.
func (db *ClauseDatabase) DueForReduction() bool {
	return db.sinceReduction >= reductionThreshold(db.reductions)
}

// Delete frees id's slot. It performs no checks of its own: the caller
// must have already checked that the clause is not locked (a live trail
// reason). Original clauses are deleted only by the inprocessor, which
// replaces them with their resolvents.
func (db *ClauseDatabase) Delete(id ClauseID) {
	db.proof.LogDeletion(db.slots[id].clause.Literals)
	db.slots[id] = clauseSlot{free: true}
	db.freeList = append(db.freeList, id)
}

// Originals returns the ids of every currently live original (non-learnt)
// clause.
func (db *ClauseDatabase) Originals() []ClauseID {
	db.originals = db.liveIDs(db.originals, false)
	return db.originals
}

// Learnts returns the ids of every currently live learnt clause.
func (db *ClauseDatabase) Learnts() []ClauseID {
	db.learnts = db.liveIDs(db.learnts, true)
	return db.learnts
}

// liveIDs compacts ids in place to the live clauses whose Learnt flag
// matches learnt, each listed once. A freed id stays in its list until the
// next compaction, and Add may meanwhile have reused it for another clause
// of either kind.
func (db *ClauseDatabase) liveIDs(ids []ClauseID, learnt bool) []ClauseID {
	live := ids[:0]
	listed := make(map[ClauseID]bool, len(ids))
	for _, id := range ids {
		slot := db.slots[id]
		if slot.free || slot.clause.Learnt != learnt || listed[id] {
			continue
		}
		listed[id] = true
		live = append(live, id)
	}
	return live
}

// reductionThreshold implements the clause-count budget that triggers a
// reduction pass: 2000 + 300*k after the k-th reduction.
func reductionThreshold(reductions int) int {
	return 2000 + 300*reductions
}

// medianLBD returns max(median, 2) of the LBDs among the given learnt
// clause ids, the retention threshold from §4.1.
func medianLBD(db *ClauseDatabase, ids []ClauseID) int {
	if len(ids) == 0 {
		return 2
	}
	lbds := make([]int, len(ids))
	for i, id := range ids {
		c := db.Get(id)
		lbds[i] = c.LBD
	}
	insertionSort(lbds)
	median := lbds[len(lbds)/2]
	if median < 2 {
		return 2
	}
	return median
}

func insertionSort(xs []int) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}

// Reduce deletes learnt clauses whose LBD exceeds max(median, 2), skipping
// any clause that is a live trail reason (Trail.isLocked). It returns the
// number of clauses
// actually removed and resets the reduction due-counter.
func (db *ClauseDatabase) Reduce(trail *Trail, vars []LBool, watcher *Watcher) int {
	ids := db.Learnts()
	db.sinceReduction = 0
	db.reductions++
	if len(ids) == 0 {
		return 0
	}
	threshold := medianLBD(db, ids)

	removed := 0
	for _, id := range ids {
		c := db.Get(id)
		if c.LBD <= threshold {
			continue
		}
		if trail.isLocked(vars, c, id) {
			continue
		}
		watcher.deleteClause(c, id)
		db.Delete(id)
		removed++
	}
	return removed
}
