package sat

import (
	"bytes"
	"testing"
)

func TestProofLogger_WritesAdditionsAndDeletionsInDRATFormat(t *testing.T) {
	var buf bytes.Buffer
	p := NewProofLogger(&buf)

	p.LogAddition(lits(1, -2, 3))
	p.LogDeletion(lits(1, -2, 3))
	if err := p.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := "1 -2 3 0\nd 1 -2 3 0\n"
	if got := buf.String(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestProofLogger_InactiveLoggerIsNoOp(t *testing.T) {
	p := NewProofLogger(nil)
	p.LogAddition(lits(1, 2))
	p.LogDeletion(lits(1, 2))
	if err := p.Flush(); err != nil {
		t.Fatalf("Flush on inactive logger should be a no-op, got error: %v", err)
	}
}
