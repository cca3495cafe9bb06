package sat

import (
	"io"
	"time"
)

// HeuristicKind names which branching heuristic a Solver should use.
type HeuristicKind int

const (
	VSIDSHeuristicKind HeuristicKind = iota
	VMTFHeuristicKind
	DecayHeuristicKind
	TrueFirstHeuristicKind
)

func newHeuristic(kind HeuristicKind) Heuristic {
	switch kind {
	case VMTFHeuristicKind:
		return newVMTFHeuristic()
	case DecayHeuristicKind:
		return newDecayHeuristic()
	case TrueFirstHeuristicKind:
		return newTrueFirstHeuristic()
	default:
		return newVSIDSHeuristic()
	}
}

// Config collects every knob the top-level search loop (§4.9) dispatches
// on: which heuristic and restart policy to run, whether inprocessing is
// enabled, and where proof and progress output go.
type Config struct {
	Heuristic        HeuristicKind
	RestartPolicy    RestartPolicy
	Inprocessing     bool
	ProofWriter      io.Writer
	ProgressWriter   io.Writer
	ProgressInterval int
}

// DefaultConfig mirrors the CLI's documented defaults (§6): VSIDS
// branching, the Glucose-EMA restart policy, inprocessing on, no proof or
// progress output.
func DefaultConfig() Config {
	return Config{
		Heuristic:        VSIDSHeuristicKind,
		RestartPolicy:    GlucoseEMA,
		Inprocessing:     true,
		ProgressInterval: 5000,
	}
}

// Status is the outcome of a completed search.
type Status int

const (
	Unsatisfiable Status = iota
	Satisfiable
)

func (st Status) String() string {
	if st == Satisfiable {
		return "SATISFIABLE"
	}
	return "UNSATISFIABLE"
}

// Solver composes every component described in §4 into the search loop of
// §4.9. It is constructed once per instance from the raw (1-indexed,
// possibly-original-numbering) clause list produced by the DIMACS reader.
type Solver struct {
	cfg Config

	origNumVars int
	numVars     int

	preprocessor *Preprocessor
	proof        *ProofLogger
	db           *ClauseDatabase
	watcher      *Watcher
	state        *State
	trail        *Trail
	pq           *PropQueue
	analyzer     *Analyzer
	heuristic    Heuristic
	restarter    *Restarter
	inprocessor  *Inprocessor
	Stats        *Stats

	immediateUnsat bool
	inprocessTime  time.Duration
	headerPrinted  bool
}

// NewSolver preprocesses rawClauses (unit propagation + dense
// renumbering, §5 "Supplemented features" / Preprocessor) and builds a
// Solver ready for Solve. numVars is the number of variables in the
// original (pre-preprocessing) numbering.
func NewSolver(numVars int, rawClauses [][]Literal, cfg Config) *Solver {
	sv := &Solver{
		cfg:          cfg,
		origNumVars:  numVars,
		preprocessor: newPreprocessor(),
		Stats:        newStats(),
	}

	reduced, newNumVars, unsat := sv.preprocessor.Process(rawClauses, numVars)
	if unsat {
		sv.immediateUnsat = true
		return sv
	}

	sv.numVars = newNumVars
	sv.proof = NewProofLogger(cfg.ProofWriter)
	sv.db = newClauseDatabase(sv.proof)
	sv.watcher = newWatcher(newNumVars)
	sv.state = newState(newNumVars, sv.db, sv.watcher)
	sv.trail = newTrail(newNumVars)
	sv.pq = newPropQueue(newNumVars)
	sv.analyzer = newAnalyzer(newNumVars)
	sv.inprocessor = newInprocessor()
	sv.heuristic = newHeuristic(cfg.Heuristic)
	sv.heuristic.Init(newNumVars)
	sv.restarter = newRestarter(cfg.RestartPolicy)

	for _, lits := range reduced {
		normalized, tautology := normalizeClause(lits)
		if tautology {
			continue
		}
		if len(normalized) == 0 {
			sv.immediateUnsat = true
			return sv
		}
		clause := &Clause{Literals: append([]Literal(nil), normalized...)}
		id := sv.db.Add(clause, false)
		if len(clause.Literals) == 1 {
			sv.pq.Push(clause.Literals[0], id)
		} else {
			sv.watcher.addClause(clause, id)
		}
	}
	return sv
}

// Solve runs the top-level search loop of §4.9 to completion and returns
// the outcome. On Satisfiable, the returned assignment is indexed by the
// *original* variable numbering (1..numVars passed to NewSolver) and has
// every variable set, including ones the preprocessor or inprocessor
// eliminated entirely.
func (sv *Solver) Solve() (Status, []LBool) {
	if sv.immediateUnsat {
		return Unsatisfiable, nil
	}

	for {
		sv.propagate()

		switch {
		case sv.state.ConflictClause != noReason:
			if !sv.handleConflict() {
				return Unsatisfiable, nil
			}
		case sv.state.IsSatisfied(sv.trail.Len()):
			return Satisfiable, sv.buildModel()
		case sv.restarter.ShouldRestart():
			sv.Stats.Restarts++
			sv.backtrack(0)
			sv.printProgress(true, false)
			if sv.cfg.Inprocessing {
				sv.runInprocessing()
			}
		default:
			sv.decide()
		}
	}
}

// propagate drains the unit-propagation queue (§4.3), stopping as soon as
// a conflict is recorded in sv.state.ConflictClause. An entry whose literal
// is already true is skipped: a clause whose other watched literal was
// already true reports that literal as its unit.
func (sv *Solver) propagate() {
	if sv.state.ConflictClause != noReason {
		return
	}
	for {
		e, ok := sv.pq.Pop()
		if !ok {
			return
		}
		if sv.state.Value(e.Literal) == True {
			continue
		}
		sv.trail.Assign(sv.state, sv.pq, e.Literal, e.Reason)
		sv.Stats.Propagations++
		if sv.state.ConflictClause != noReason {
			sv.pq.Clear()
			return
		}
	}
}

// decide picks the next branching literal from the heuristic and the
// saved phase, and opens a new decision level for it.
func (sv *Solver) decide() {
	v := sv.heuristic.Next(sv.state.Vars)
	lit := NewLiteral(v, sv.state.Phases[v])
	sv.Stats.Decisions++
	sv.trail.Assign(sv.state, sv.pq, lit, noReason)
}

// handleConflict runs conflict analysis, learns and installs the
// resulting clause, and backtracks to the assertion level. It returns
// false when the conflict is at decision level 0, i.e. the instance is
// unsatisfiable.
func (sv *Solver) handleConflict() bool {
	sv.Stats.Conflicts++
	if sv.trail.Level() == 0 {
		return false
	}

	justReduced := false
	if sv.db.DueForReduction() {
		sv.db.Reduce(sv.trail, sv.state.Vars, sv.watcher)
		sv.Stats.Reductions++
		justReduced = true
	}

	learned, assertionLevel, lbd := sv.analyzer.Analyze(sv.state, sv.trail)
	sv.heuristic.Conflict(learned)

	clause := &Clause{Literals: learned, HasLBD: true, LBD: lbd}
	id := sv.db.Add(clause, true)
	sv.Stats.LearntClauses++
	sv.restarter.Conflict(lbd, sv.trail.Len())

	sv.state.ConflictClause = noReason
	sv.backtrack(assertionLevel)

	if len(clause.Literals) >= 2 {
		sv.watcher.addClause(clause, id)
	}
	sv.pq.Push(clause.Literals[0], id)

	sv.printProgress(false, justReduced)
	return true
}

// backtrack unwinds the trail to level, unassigning every variable it
// removes and notifying the heuristic (§4.4).
func (sv *Solver) backtrack(level int) {
	sv.trail.BacktrackTo(level, func(lit Literal) {
		sv.state.unassign(lit)
		sv.heuristic.Unassign(lit.Var())
	})
}

// runInprocessing performs bounded variable elimination (§4.8), budgeted
// to at most 15% of the wall-clock time spent so far across the whole
// run. It must only be called with the trail already backtracked to
// level 0.
func (sv *Solver) runInprocessing() {
	budget := time.Duration(float64(sv.Stats.Elapsed())*0.15) - sv.inprocessTime
	if budget <= 0 {
		return
	}
	deadline := time.Now().Add(budget)

	saved := make([]Literal, 0, sv.trail.Len())
	for _, e := range sv.trail.Entries() {
		saved = append(saved, e.Literal)
	}
	sv.trail.Reset(func(lit Literal) {
		sv.state.unassign(lit)
		sv.heuristic.Unassign(lit.Var())
	})

	start := time.Now()
	sv.inprocessor.Run(sv.state, sv.pq, sv.numVars, func() bool {
		return time.Now().After(deadline)
	})
	sv.inprocessTime += time.Since(start)

	for _, lit := range saved {
		sv.pq.Push(lit, axiomReason)
	}
}

// buildModel reconstructs a full assignment over the original variable
// numbering. Per the open question recorded in §9, any variable still
// free after search (eliminated by inprocessing) is first filled true,
// and only then is the inprocessor's reconstruction stack replayed; the
// preprocessor's own reconstruction (dense numbering -> original, plus
// units forced away before the trail existed) runs last. A variable the
// preprocessor dropped entirely (every clause mentioning it became
// satisfied by other forced units, so it was never given a dense id, nor
// forced, nor eliminated) is unconstrained by the formula; it gets a final
// top-up to true once the model is back in the original numbering.
func (sv *Solver) buildModel() []LBool {
	candidate := make([]LBool, sv.numVars+1)
	copy(candidate, sv.state.Vars)
	for v := 1; v <= sv.numVars; v++ {
		if candidate[v] == Unknown {
			candidate[v] = True
		}
	}
	sv.inprocessor.Reconstruct(candidate)
	full := sv.preprocessor.Reconstruct(sv.origNumVars, candidate)
	for v := 1; v <= sv.origNumVars; v++ {
		if full[v] == Unknown {
			full[v] = True
		}
	}
	return full
}

// NumVars returns the number of variables in the original (pre-
// preprocessing) numbering, i.e. the size expected of Solve's returned
// model.
func (sv *Solver) NumVars() int {
	return sv.origNumVars
}

// FlushProof pushes any buffered DRAT proof output to the underlying
// writer. Safe to call even when no proof writer was configured, or when
// the instance was found trivially unsatisfiable before a proof logger
// was ever constructed.
func (sv *Solver) FlushProof() error {
	if sv.proof == nil {
		return nil
	}
	return sv.proof.Flush()
}

// printProgress writes one row of the periodic statistics table (§2
// component 13) when progress output is enabled, either because a
// restart/reduction just happened or the periodic interval elapsed.
func (sv *Solver) printProgress(justRestarted, justReduced bool) {
	if sv.cfg.ProgressWriter == nil {
		return
	}
	interval := sv.cfg.ProgressInterval
	if interval <= 0 {
		interval = 5000
	}
	due := justRestarted || justReduced || sv.Stats.Conflicts%interval == 0
	if !due {
		return
	}
	if !sv.headerPrinted {
		PrintHeader(sv.cfg.ProgressWriter)
		sv.headerPrinted = true
	}
	PrintRow(sv.cfg.ProgressWriter, sv.Stats, justRestarted, justReduced)
}
