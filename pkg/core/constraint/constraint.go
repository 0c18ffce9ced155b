package constraint

import "fmt"

// Constraint is a linear relation between two region attributes, or between
// an attribute and a literal:
//
//	Item.Attribute  Relation  Multiplier * SecondItem.SecondAttribute + Constant
//	Item.Attribute  Relation  Constant
//
// A constraint is built once and not mutated after it is handed to the host
// engine. Priority and multiplier changes produce replacements ([WithPriority],
// [Constraint.WithMultiplier]).
type Constraint struct {
	Item            Region
	Attribute       Attribute
	Relation        Relation
	SecondItem      Region
	SecondAttribute Attribute
	Multiplier      float64
	Constant        float64
	Priority        Priority

	// Identifier is an optional label shown in diagnostics and exports.
	Identifier string
}

// FirstRef returns the left-hand side as an identity ref.
func (c *Constraint) FirstRef() Ref {
	return RefOf(c.Item, c.Attribute)
}

// SecondRef returns the right-hand side as a ref carrying the constraint's
// multiplier and constant. ok is false for literal constraints.
func (c *Constraint) SecondRef() (ref Ref, ok bool) {
	if c.SecondItem == nil {
		return Ref{}, false
	}
	return Ref{
		owner:      c.SecondItem,
		attr:       c.SecondAttribute,
		multiplier: c.Multiplier,
		constant:   c.Constant,
	}, true
}

// Literal returns the right-hand constant of a literal constraint. ok is
// false when the constraint relates to a second item.
func (c *Constraint) Literal() (value float64, ok bool) {
	if c.SecondItem != nil {
		return 0, false
	}
	return c.Constant, true
}

// IsLiteral reports whether the right-hand side is a bare number.
func (c *Constraint) IsLiteral() bool {
	return c.SecondItem == nil
}

// Clone returns a distinct constraint with the same fields.
func (c *Constraint) Clone() *Constraint {
	dup := *c
	return &dup
}

// WithMultiplier returns a replacement for c carrying factor as its
// multiplier. Every other field is preserved.
func (c *Constraint) WithMultiplier(factor float64) *Constraint {
	dup := c.Clone()
	dup.Multiplier = factor
	return dup
}

// WithPriority returns a replacement for c carrying priority p. Every other
// field is preserved.
//
// The replacement must be activated in place of c; calling WithPriority on
// an already active constraint leaves the active one untouched.
func WithPriority(c *Constraint, p Priority) *Constraint {
	dup := c.Clone()
	dup.Priority = p
	return dup
}

// String formats c as "card.left == root.left + 20".
func (c *Constraint) String() string {
	lhs := fmt.Sprintf("%s.%s", regionName(c.Item), c.Attribute)
	var rhs string
	if c.SecondItem == nil {
		rhs = fmt.Sprintf("%g", c.Constant)
	} else {
		rhs = fmt.Sprintf("%s.%s", regionName(c.SecondItem), c.SecondAttribute)
		if c.Multiplier != 1 {
			rhs = fmt.Sprintf("%g * %s", c.Multiplier, rhs)
		}
		rhs += formatConstant(c.Constant)
	}
	s := fmt.Sprintf("%s %s %s", lhs, c.Relation, rhs)
	if !c.Priority.IsRequired() {
		s += fmt.Sprintf(" @%g", c.Priority)
	}
	return s
}
