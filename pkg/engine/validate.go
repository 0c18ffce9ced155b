package engine

import (
	"math"

	"github.com/matzehuels/caliper/pkg/core/constraint"
	"github.com/matzehuels/caliper/pkg/errors"
)

// Validate reports whether c could be activated by a host engine.
func Validate(c *constraint.Constraint) error {
	if c == nil {
		return invalid("nil constraint")
	}
	if c.Item == nil {
		return invalid("%v: missing first item", c)
	}
	if !c.Attribute.Valid() {
		return invalid("%v: invalid first attribute", c)
	}
	if math.IsNaN(c.Multiplier) || math.IsInf(c.Multiplier, 0) {
		return invalid("%v: multiplier is not finite", c)
	}
	if math.IsNaN(c.Constant) || math.IsInf(c.Constant, 0) {
		return invalid("%v: constant is not finite", c)
	}
	if !c.Priority.Valid() {
		return invalid("%v: priority %v outside (0, 1000]", c, c.Priority)
	}

	if c.IsLiteral() {
		if !c.Attribute.IsDimension() {
			return invalid("%v: location attribute %s cannot be related to a constant", c, c.Attribute)
		}
		return nil
	}

	first, second := c.Attribute, c.SecondAttribute
	if !second.Valid() {
		return invalid("%v: invalid second attribute", c)
	}
	if first.IsDimension() != second.IsDimension() {
		return invalid("%v: cannot relate a size to a position", c)
	}
	if !first.IsDimension() {
		if first.Axis() != second.Axis() {
			return invalid("%v: attributes lie on different axes", c)
		}
		if isAbsoluteX(first) && second.IsDirectional() || first.IsDirectional() && isAbsoluteX(second) {
			return invalid("%v: cannot mix left/right with leading/trailing", c)
		}
		if c.Multiplier == 0 {
			return invalid("%v: zero multiplier on a location attribute", c)
		}
	}
	if constraint.CommonAncestor(c.Item, c.SecondItem) == nil {
		return invalid("%v: items have no common ancestor", c)
	}
	return nil
}

func isAbsoluteX(a constraint.Attribute) bool {
	return a == constraint.AttrLeft || a == constraint.AttrRight
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConstraint, format, args...)
}
