package sat

import (
	"math"

	"github.com/rhartert/yagh"
)

const vsidsBumpBasis = 1.1
const vsidsRescaleThreshold = 1e7

// VSIDSHeuristic is the classic activity-based branching heuristic: every
// variable touched by a learned clause has its activity bumped by an
// exponentially growing amount, so recently-involved variables dominate
// the branching order without an explicit periodic decay pass (§4.6).
type VSIDSHeuristic struct {
	order         *yagh.IntMap[float64]
	activity      []float64
	conflictIndex float64
}

func newVSIDSHeuristic() *VSIDSHeuristic {
	return &VSIDSHeuristic{order: yagh.New[float64](0)}
}

func (h *VSIDSHeuristic) Init(numVars int) {
	h.activity = make([]float64, numVars+1)
	h.order.GrowBy(numVars + 1)
	for v := 1; v <= numVars; v++ {
		h.activity[v] = 1
		h.order.Put(v, -1)
	}
}

func (h *VSIDSHeuristic) Unassign(v VarID) {
	h.order.Put(int(v), -h.activity[v])
}

func (h *VSIDSHeuristic) Conflict(learned []Literal) {
	h.conflictIndex++
	bump := math.Pow(vsidsBumpBasis, h.conflictIndex)
	for _, lit := range learned {
		v := lit.Var()
		newActivity := h.activity[v] + bump
		if newActivity > vsidsRescaleThreshold {
			h.rescale(vsidsRescaleThreshold)
			bump = math.Pow(vsidsBumpBasis, h.conflictIndex)
			newActivity = h.activity[v] + bump
		}
		h.activity[v] = newActivity
		if h.order.Contains(int(v)) {
			h.order.Put(int(v), -newActivity)
		}
	}
}

// rescale divides every activity by factor and adjusts conflictIndex so
// that bump_basis^conflict_index continues to land on the same relative
// scale: g^i_new = g^i_old / factor implies i_new = i_old - ln(factor)/ln(bump_basis).
func (h *VSIDSHeuristic) rescale(factor float64) {
	for v := range h.activity {
		h.activity[v] /= factor
	}
	h.conflictIndex -= math.Log(factor) / math.Log(vsidsBumpBasis)
	for v, a := range h.activity {
		if v == 0 {
			continue
		}
		if h.order.Contains(v) {
			h.order.Put(v, -a)
		}
	}
}

func (h *VSIDSHeuristic) Next(vars []LBool) VarID {
	for {
		entry, ok := h.order.Pop()
		if !ok {
			panic("sat: VSIDS heuristic ran out of variables before the assignment was complete")
		}
		if vars[entry.Elem] == Unknown {
			return VarID(entry.Elem)
		}
	}
}
