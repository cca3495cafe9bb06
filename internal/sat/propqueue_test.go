package sat

import "testing"

func TestPropQueue_FIFOOrder(t *testing.T) {
	q := newPropQueue(5)
	q.Push(Literal(1), ClauseID(0))
	q.Push(Literal(2), ClauseID(1))

	e, ok := q.Pop()
	if !ok || e.Literal != Literal(1) {
		t.Fatalf("want literal 1 first, got %v ok=%v", e, ok)
	}
	e, ok = q.Pop()
	if !ok || e.Literal != Literal(2) {
		t.Fatalf("want literal 2 second, got %v ok=%v", e, ok)
	}
	if _, ok := q.Pop(); ok {
		t.Fatalf("queue should be empty")
	}
}

func TestPropQueue_DeduplicatesByVariable(t *testing.T) {
	q := newPropQueue(5)
	q.Push(Literal(1), ClauseID(0))
	q.Push(Literal(1), ClauseID(1)) // same variable, later reason: must be dropped
	q.Push(Literal(-1), ClauseID(2))

	e, ok := q.Pop()
	if !ok || e.Reason != ClauseID(0) {
		t.Fatalf("want the first reason to win, got %v ok=%v", e, ok)
	}
	if _, ok := q.Pop(); ok {
		t.Fatalf("second push for var 1 should have been dropped entirely")
	}
}

func TestPropQueue_PushAfterPopAllowsVariableAgain(t *testing.T) {
	q := newPropQueue(5)
	q.Push(Literal(1), ClauseID(0))
	q.Pop()
	q.Push(Literal(1), ClauseID(1))

	e, ok := q.Pop()
	if !ok || e.Reason != ClauseID(1) {
		t.Fatalf("want var 1 re-enqueueable after being popped, got %v ok=%v", e, ok)
	}
}

func TestPropQueue_Clear(t *testing.T) {
	q := newPropQueue(5)
	q.Push(Literal(1), ClauseID(0))
	q.Push(Literal(2), ClauseID(1))
	q.Clear()

	if !q.Empty() {
		t.Fatalf("queue should be empty after Clear")
	}
	// Variables must be eligible to be pushed again after Clear.
	q.Push(Literal(1), ClauseID(2))
	e, ok := q.Pop()
	if !ok || e.Reason != ClauseID(2) {
		t.Fatalf("want var 1 pushable again after Clear, got %v ok=%v", e, ok)
	}
}
