package constraint

import (
	"fmt"

	"github.com/matzehuels/caliper/pkg/errors"
)

// Ref is an immutable reference to one attribute of a region, scaled by a
// multiplier and shifted by a constant.
//
// The zero Ref has no owner and is not usable in a relation; obtain refs from
// [RefOf], the attribute functions ([Left], [Width], ...) or an [Anchored]
// region.
type Ref struct {
	owner      Region
	attr       Attribute
	multiplier float64
	constant   float64
}

// Owner returns the region the ref is anchored to.
func (r Ref) Owner() Region { return r.owner }

// Attribute returns the referenced attribute.
func (r Ref) Attribute() Attribute { return r.attr }

// Multiplier returns the scale factor applied to the attribute.
func (r Ref) Multiplier() float64 { return r.multiplier }

// Constant returns the offset added after scaling.
func (r Ref) Constant() float64 { return r.constant }

// ScaledBy returns a ref whose multiplier is r's multiplier times factor.
// The constant is unchanged.
func (r Ref) ScaledBy(factor float64) Ref {
	r.multiplier *= factor
	return r
}

// DividedBy returns a ref whose multiplier is r's multiplier divided by
// factor. A zero factor returns r unchanged together with a
// DIVISION_BY_ZERO error; the result is never infinite.
func (r Ref) DividedBy(factor float64) (Ref, error) {
	if factor == 0 {
		return r, errors.New(errors.ErrCodeDivisionByZero, "cannot divide %s by zero", r)
	}
	r.multiplier /= factor
	return r, nil
}

// OffsetBy returns a ref whose constant is r's constant plus delta.
func (r Ref) OffsetBy(delta float64) Ref {
	r.constant += delta
	return r
}

// Inset returns a ref whose constant is r's constant minus delta.
func (r Ref) Inset(delta float64) Ref {
	r.constant -= delta
	return r
}

// Relate builds the constraint "r rel other". The constraint's multiplier and
// constant are taken from other.
func (r Ref) Relate(rel Relation, other Ref) *Constraint {
	return &Constraint{
		Item:            r.owner,
		Attribute:       r.attr,
		Relation:        rel,
		SecondItem:      other.owner,
		SecondAttribute: other.attr,
		Multiplier:      other.multiplier,
		Constant:        other.constant,
		Priority:        PriorityRequired,
	}
}

// RelateConstant builds the literal constraint "r rel value".
func (r Ref) RelateConstant(rel Relation, value float64) *Constraint {
	return &Constraint{
		Item:            r.owner,
		Attribute:       r.attr,
		Relation:        rel,
		SecondAttribute: NotAnAttribute,
		Multiplier:      1,
		Constant:        value,
		Priority:        PriorityRequired,
	}
}

// EqualTo builds "r == other".
func (r Ref) EqualTo(other Ref) *Constraint { return r.Relate(Equal, other) }

// AtLeast builds "r >= other".
func (r Ref) AtLeast(other Ref) *Constraint { return r.Relate(GreaterOrEqual, other) }

// AtMost builds "r <= other".
func (r Ref) AtMost(other Ref) *Constraint { return r.Relate(LessOrEqual, other) }

// EqualToConstant builds "r == value".
func (r Ref) EqualToConstant(value float64) *Constraint { return r.RelateConstant(Equal, value) }

// AtLeastConstant builds "r >= value".
func (r Ref) AtLeastConstant(value float64) *Constraint {
	return r.RelateConstant(GreaterOrEqual, value)
}

// AtMostConstant builds "r <= value".
func (r Ref) AtMostConstant(value float64) *Constraint {
	return r.RelateConstant(LessOrEqual, value)
}

// String formats the ref as "owner.attr * m + c", omitting identity terms.
func (r Ref) String() string {
	s := fmt.Sprintf("%s.%s", regionName(r.owner), r.attr)
	if r.multiplier != 1 {
		s += fmt.Sprintf(" * %g", r.multiplier)
	}
	return s + formatConstant(r.constant)
}

func regionName(r Region) string {
	if r == nil {
		return "<nil>"
	}
	return r.Name()
}

func formatConstant(c float64) string {
	switch {
	case c > 0:
		return fmt.Sprintf(" + %g", c)
	case c < 0:
		return fmt.Sprintf(" - %g", -c)
	default:
		return ""
	}
}
