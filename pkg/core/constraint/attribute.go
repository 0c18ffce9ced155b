package constraint

import (
	"strings"

	"github.com/matzehuels/caliper/pkg/errors"
)

// Attribute is a geometric property of a region usable in a relation.
type Attribute int

const (
	// NotAnAttribute marks the missing right-hand side of a literal constraint.
	NotAnAttribute Attribute = iota
	AttrLeft
	AttrRight
	AttrTop
	AttrBottom
	AttrLeading
	AttrTrailing
	AttrWidth
	AttrHeight
	AttrCenterX
	AttrCenterY
)

// Axis is the direction an attribute measures along.
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

// Attributes lists every selectable attribute in declaration order.
var Attributes = []Attribute{
	AttrLeft, AttrRight, AttrTop, AttrBottom,
	AttrLeading, AttrTrailing,
	AttrWidth, AttrHeight,
	AttrCenterX, AttrCenterY,
}

var attributeNames = map[Attribute]string{
	NotAnAttribute: "none",
	AttrLeft:       "left",
	AttrRight:      "right",
	AttrTop:        "top",
	AttrBottom:     "bottom",
	AttrLeading:    "leading",
	AttrTrailing:   "trailing",
	AttrWidth:      "width",
	AttrHeight:     "height",
	AttrCenterX:    "centerX",
	AttrCenterY:    "centerY",
}

// String returns the attribute name as used in scene documents.
func (a Attribute) String() string {
	if s, ok := attributeNames[a]; ok {
		return s
	}
	return "invalid"
}

// Valid reports whether a is one of the ten selectable attributes.
func (a Attribute) Valid() bool {
	return a >= AttrLeft && a <= AttrCenterY
}

// IsDimension reports whether a is a size attribute (width or height).
func (a Attribute) IsDimension() bool {
	return a == AttrWidth || a == AttrHeight
}

// IsDirectional reports whether a follows the layout direction
// (leading or trailing) rather than absolute left/right.
func (a Attribute) IsDirectional() bool {
	return a == AttrLeading || a == AttrTrailing
}

// Axis returns the axis a measures along.
func (a Attribute) Axis() Axis {
	switch a {
	case AttrLeft, AttrRight, AttrLeading, AttrTrailing, AttrCenterX, AttrWidth:
		return AxisHorizontal
	case AttrTop, AttrBottom, AttrCenterY, AttrHeight:
		return AxisVertical
	default:
		return AxisNone
	}
}

// ParseAttribute converts a name such as "centerX" to an Attribute.
// Matching is case-insensitive; "center_x" and "center-x" are accepted.
func ParseAttribute(s string) (Attribute, error) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(strings.TrimSpace(s)))
	for _, a := range Attributes {
		if strings.ToLower(a.String()) == key {
			return a, nil
		}
	}
	return NotAnAttribute, errors.New(errors.ErrCodeInvalidAttribute, "unknown attribute %q", s)
}
