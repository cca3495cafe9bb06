package sat

import "fmt"

// VarID is a strictly positive variable identifier. Id 0 is reserved and
// never assigned to a variable.
type VarID int32

// Literal is a signed, nonzero representation of a variable or its
// negation: the sign encodes polarity, the absolute value is the VarID.
type Literal int32

// NewLiteral returns the literal of variable v with the given polarity.
func NewLiteral(v VarID, positive bool) Literal {
	if positive {
		return Literal(v)
	}
	return Literal(-v)
}

// Var returns the id of the literal's variable.
func (l Literal) Var() VarID {
	if l < 0 {
		return VarID(-l)
	}
	return VarID(l)
}

// IsPositive reports whether the literal represents the variable directly
// (as opposed to its negation).
func (l Literal) IsPositive() bool {
	return l > 0
}

// Negate returns the opposite literal.
func (l Literal) Negate() Literal {
	return -l
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.Var())
	}
	return fmt.Sprintf("-%d", l.Var())
}
