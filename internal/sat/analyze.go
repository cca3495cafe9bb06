package sat

// Analyzer performs first-UIP conflict analysis (§4.5). It owns the
// scratch state (seen set) that needs to survive across calls only to
// avoid reallocating; logically each Analyze call is independent.
type Analyzer struct {
	seen *SeenSet
}

func newAnalyzer(numVars int) *Analyzer {
	return &Analyzer{seen: newSeenSet(numVars)}
}

// Analyze walks the implication graph backward from the current conflict
// clause to the first unique implication point, returning the learned
// clause (UIP at position 0, asserting literal at position 1) and the
// assertion level to backtrack to.
func (a *Analyzer) Analyze(s *State, trail *Trail) (learned []Literal, assertionLevel int, lbd int) {
	seen := a.seen
	seen.Reset()

	currentReason := s.ConflictClause
	var currentLiteral Literal
	hasCurrentLiteral := false
	trailPos := trail.Len() - 1
	count := 0
	var out []Literal

	for {
		clause := s.DB.Get(currentReason)
		for _, lit := range clause.Literals {
			if hasCurrentLiteral && lit == currentLiteral {
				continue
			}
			v := lit.Var()
			lvl := trail.LevelOf(v)
			if seen.Contains(v) || lvl == 0 {
				continue
			}
			seen.Add(v)
			if lvl == trail.Level() {
				count++
			} else {
				out = append(out, lit)
			}
		}

		for {
			e := trail.At(trailPos)
			if seen.Contains(e.Literal.Var()) {
				currentLiteral = e.Literal
				hasCurrentLiteral = true
				seen.Remove(e.Literal.Var())
				count--
				break
			}
			trailPos--
		}
		trailPos--

		if count == 0 {
			break
		}
		currentReason = trail.ReasonOf(currentLiteral.Var())
	}

	uip := currentLiteral.Negate()
	out = append(out, uip)
	out[0], out[len(out)-1] = out[len(out)-1], out[0]

	out = a.minimize(s, trail, out)

	assertionLevel = assertionLevelOf(trail, out)
	moveAssertingLiteral(trail, out, assertionLevel)

	lbd = distinctLevels(trail, out)
	return out, assertionLevel, lbd
}

// minimize implements MiniSat-style self-subsumption minimization: a
// non-UIP literal is redundant if every other literal of its antecedent
// is either already marked seen during analysis, or at decision level 0.
func (a *Analyzer) minimize(s *State, trail *Trail, learned []Literal) []Literal {
	seen := a.seen
	kept := learned[:1]
	for _, lit := range learned[1:] {
		if !a.isRedundant(s, trail, lit) {
			kept = append(kept, lit)
		}
	}
	_ = seen
	return kept
}

func (a *Analyzer) isRedundant(s *State, trail *Trail, lit Literal) bool {
	v := lit.Var()
	reason := trail.ReasonOf(v)
	if reason == noReason {
		return false
	}
	clause := s.DB.Get(reason)
	for _, l := range clause.Literals {
		if l == lit {
			continue
		}
		lv := l.Var()
		if trail.LevelOf(lv) == 0 {
			continue
		}
		if a.seen.Contains(lv) {
			continue
		}
		return false
	}
	return true
}

// assertionLevelOf returns the highest decision level among the learned
// clause's literals excluding the UIP at position 0 (the level the clause
// becomes unit at once the trail is cut back to it), or 0 if the clause is
// unit.
func assertionLevelOf(trail *Trail, learned []Literal) int {
	if len(learned) <= 1 {
		return 0
	}
	level := 0
	for _, lit := range learned[1:] {
		if lvl := trail.LevelOf(lit.Var()); lvl > level {
			level = lvl
		}
	}
	return level
}

// moveAssertingLiteral swaps the literal at the assertion level into
// position 1, so the clause's second watch is the asserting literal.
func moveAssertingLiteral(trail *Trail, learned []Literal, assertionLevel int) {
	if len(learned) <= 1 {
		return
	}
	for i := 1; i < len(learned); i++ {
		if trail.LevelOf(learned[i].Var()) == assertionLevel {
			learned[1], learned[i] = learned[i], learned[1]
			return
		}
	}
}

func distinctLevels(trail *Trail, lits []Literal) int {
	seen := make(map[int]struct{}, len(lits))
	for _, lit := range lits {
		seen[trail.LevelOf(lit.Var())] = struct{}{}
	}
	return len(seen)
}
