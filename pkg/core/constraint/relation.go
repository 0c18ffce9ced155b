package constraint

import "github.com/matzehuels/caliper/pkg/errors"

// Relation is the comparison tying the two sides of a constraint.
type Relation int

const (
	Equal Relation = iota
	GreaterOrEqual
	LessOrEqual
)

// String returns the relation's operator form.
func (r Relation) String() string {
	switch r {
	case Equal:
		return "=="
	case GreaterOrEqual:
		return ">="
	case LessOrEqual:
		return "<="
	default:
		return "?"
	}
}

// Keyword returns the relation name used in scene documents.
func (r Relation) Keyword() string {
	switch r {
	case GreaterOrEqual:
		return "atLeast"
	case LessOrEqual:
		return "atMost"
	default:
		return "equal"
	}
}

// ParseRelation accepts a keyword ("equal", "atLeast", "atMost") or an
// operator ("==", ">=", "<="). The empty string means Equal.
func ParseRelation(s string) (Relation, error) {
	switch s {
	case "", "equal", "eq", "==":
		return Equal, nil
	case "atLeast", "gte", ">=":
		return GreaterOrEqual, nil
	case "atMost", "lte", "<=":
		return LessOrEqual, nil
	}
	return Equal, errors.New(errors.ErrCodeInvalidInput, "unknown relation %q", s)
}
