package sat

import "strings"

// ClauseID is a stable small integer used to cross-reference a clause from
// watch lists, a trail entry's reason, and the proof log. Ids of deleted
// clauses are recycled by the ClauseDatabase; the reduction pass (see
// ClauseDatabase.Reduce and Trail.isLocked) never frees an id that is
// still a live trail reason.
type ClauseID int32

// Clause is an ordered list of literals. Literals[0] and Literals[1] are
// the two watched positions; the watcher reads the remaining literals only
// when a watched one becomes false and a replacement watch is needed.
// BlockingLiteral is a literal last known to be true in this
// clause, a fast-path hint that lets State.assign skip a full scan. LBD is
// meaningful only when HasLBD is set (i.e. the clause was learned);
// original clauses carry no LBD.
type Clause struct {
	Literals        []Literal
	BlockingLiteral Literal
	LBD             int
	HasLBD          bool
	Learnt          bool
}

// checkBlockingLiteral reports whether the clause's blocking literal is
// currently true, letting the caller skip scanning the clause entirely.
func (c *Clause) checkBlockingLiteral(vars []LBool) bool {
	if c.BlockingLiteral == 0 {
		return false
	}
	return litValue(vars, c.BlockingLiteral) == True
}

func (c *Clause) String() string {
	if len(c.Literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.Literals[0].String())
	for _, l := range c.Literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// normalizeClause removes duplicate literals and reports whether the
// clause is a tautology (contains both a literal and its negation). The
// input slice is reordered in place; the returned slice is its (possibly
// shortened) prefix.
func normalizeClause(lits []Literal) ([]Literal, bool) {
	seen := make(map[Literal]struct{}, len(lits))
	size := len(lits)
	for i := size - 1; i >= 0; i-- {
		if _, ok := seen[lits[i].Negate()]; ok {
			return lits, true
		}
		if _, ok := seen[lits[i]]; ok {
			size--
			lits[i], lits[size] = lits[size], lits[i]
			continue
		}
		seen[lits[i]] = struct{}{}
	}
	return lits[:size], false
}
