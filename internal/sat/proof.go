package sat

import (
	"bufio"
	"fmt"
	"io"
)

// ProofLogger records clause additions and deletions in DRAT format as
// they happen, streaming to the underlying writer instead of buffering
// the whole proof in memory: a long-running search with heavy clause
// churn would otherwise grow the log unboundedly before ever touching
// disk.
type ProofLogger struct {
	w      *bufio.Writer
	active bool
}

// NewProofLogger returns a logger writing to w. If w is nil, logging
// calls are no-ops, which lets callers construct the solver uniformly
// whether or not proof logging was requested.
func NewProofLogger(w io.Writer) *ProofLogger {
	if w == nil {
		return &ProofLogger{}
	}
	return &ProofLogger{w: bufio.NewWriter(w), active: true}
}

// LogAddition records clause as added. It must be called before the
// clause can affect the search, so that a proof checker replaying the
// log in order never sees a clause used before it was introduced.
func (p *ProofLogger) LogAddition(lits []Literal) {
	if !p.active {
		return
	}
	p.writeLine("", lits)
}

// LogDeletion records clause as deleted. It must be called before the
// clause's id is returned to the free list, so the log reflects deletion
// before the slot can be reused by an unrelated clause.
func (p *ProofLogger) LogDeletion(lits []Literal) {
	if !p.active {
		return
	}
	p.writeLine("d ", lits)
}

func (p *ProofLogger) writeLine(prefix string, lits []Literal) {
	p.w.WriteString(prefix)
	for i, l := range lits {
		if i > 0 {
			p.w.WriteByte(' ')
		}
		fmt.Fprintf(p.w, "%d", int32(l))
	}
	p.w.WriteString(" 0\n")
}

// Flush pushes any buffered proof lines to the underlying writer. It must
// be called once the search has concluded.
func (p *ProofLogger) Flush() error {
	if !p.active {
		return nil
	}
	return p.w.Flush()
}
