package constraint

import (
	"testing"

	"github.com/matzehuels/caliper/pkg/errors"
)

// box is a minimal Region for tests.
type box struct {
	name   string
	parent *box
}

func (b *box) Name() string { return b.name }

func (b *box) Container() Region {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

func TestRefOfDefaults(t *testing.T) {
	root := &box{name: "root"}
	r := RefOf(root, AttrCenterX)

	if r.Owner() != Region(root) {
		t.Errorf("Owner() = %v, want root", r.Owner())
	}
	if r.Attribute() != AttrCenterX {
		t.Errorf("Attribute() = %v, want %v", r.Attribute(), AttrCenterX)
	}
	if r.Multiplier() != 1 || r.Constant() != 0 {
		t.Errorf("got multiplier %v constant %v, want 1 and 0", r.Multiplier(), r.Constant())
	}
}

func TestScaleComposition(t *testing.T) {
	r := Width(&box{name: "a"}).OffsetBy(3)
	tests := []struct{ a, b float64 }{
		{2, 3},
		{0.5, 4},
		{-1, 7},
		{1, 1},
	}
	for _, tt := range tests {
		twice := r.ScaledBy(tt.a).ScaledBy(tt.b)
		once := r.ScaledBy(tt.a * tt.b)
		if twice != once {
			t.Errorf("ScaledBy(%v).ScaledBy(%v) = %v, want %v", tt.a, tt.b, twice, once)
		}
		if twice.Constant() != 3 {
			t.Errorf("scaling changed constant to %v", twice.Constant())
		}
	}
}

func TestOffsetComposition(t *testing.T) {
	r := Left(&box{name: "a"}).ScaledBy(2)
	tests := []struct{ a, b float64 }{
		{8, 2},
		{-4, 4},
		{0.25, 0.5},
	}
	for _, tt := range tests {
		twice := r.OffsetBy(tt.a).OffsetBy(tt.b)
		once := r.OffsetBy(tt.a + tt.b)
		if twice != once {
			t.Errorf("OffsetBy(%v).OffsetBy(%v) = %v, want %v", tt.a, tt.b, twice, once)
		}
		if twice.Multiplier() != 2 {
			t.Errorf("offsetting changed multiplier to %v", twice.Multiplier())
		}
	}
	if got := r.OffsetBy(10).Inset(4).Constant(); got != 6 {
		t.Errorf("OffsetBy(10).Inset(4) constant = %v, want 6", got)
	}
}

func TestRefsAreValues(t *testing.T) {
	base := Top(&box{name: "a"})
	_ = base.ScaledBy(4).OffsetBy(9)
	if base.Multiplier() != 1 || base.Constant() != 0 {
		t.Errorf("base mutated: %v", base)
	}
}

func TestDividedBy(t *testing.T) {
	r := Height(&box{name: "a"}).ScaledBy(6)

	got, err := r.DividedBy(3)
	if err != nil {
		t.Fatalf("DividedBy(3) error: %v", err)
	}
	if got.Multiplier() != 2 {
		t.Errorf("DividedBy(3) multiplier = %v, want 2", got.Multiplier())
	}

	same, err := r.DividedBy(0)
	if !errors.Is(err, errors.ErrCodeDivisionByZero) {
		t.Fatalf("DividedBy(0) error = %v, want DIVISION_BY_ZERO", err)
	}
	if same != r {
		t.Errorf("DividedBy(0) returned %v, want original %v", same, r)
	}
}

func TestRelateTakesRightHandTerms(t *testing.T) {
	root := &box{name: "root"}
	card := &box{name: "card", parent: root}

	c := Left(card).ScaledBy(9).EqualTo(Left(root).ScaledBy(2).OffsetBy(20))

	if c.Item != Region(card) || c.Attribute != AttrLeft {
		t.Errorf("first side = %v.%v", c.Item, c.Attribute)
	}
	if c.SecondItem != Region(root) || c.SecondAttribute != AttrLeft {
		t.Errorf("second side = %v.%v", c.SecondItem, c.SecondAttribute)
	}
	if c.Multiplier != 2 || c.Constant != 20 {
		t.Errorf("multiplier/constant = %v/%v, want 2/20", c.Multiplier, c.Constant)
	}
	if c.Relation != Equal || c.Priority != PriorityRequired {
		t.Errorf("relation/priority = %v/%v", c.Relation, c.Priority)
	}
	if c.String() != "card.left == 2 * root.left + 20" {
		t.Errorf("String() = %q", c.String())
	}
}

func TestRelateConstant(t *testing.T) {
	a := &box{name: "a"}
	tests := []struct {
		name string
		c    *Constraint
		rel  Relation
		str  string
	}{
		{"equal", Width(a).EqualToConstant(100), Equal, "a.width == 100"},
		{"at least", Width(a).AtLeastConstant(44), GreaterOrEqual, "a.width >= 44"},
		{"at most", Height(a).AtMostConstant(-5), LessOrEqual, "a.height <= -5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.c.Relation != tt.rel {
				t.Errorf("Relation = %v, want %v", tt.c.Relation, tt.rel)
			}
			if !tt.c.IsLiteral() || tt.c.SecondAttribute != NotAnAttribute {
				t.Errorf("expected literal constraint, got %v", tt.c)
			}
			if _, ok := tt.c.SecondRef(); ok {
				t.Error("SecondRef() ok = true for literal")
			}
			if tt.c.Multiplier != 1 {
				t.Errorf("Multiplier = %v, want 1", tt.c.Multiplier)
			}
			if got := tt.c.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}

	v, ok := Width(a).EqualToConstant(100).Literal()
	if !ok || v != 100 {
		t.Errorf("Literal() = %v, %v; want 100, true", v, ok)
	}
}

func TestSecondRefRoundTrip(t *testing.T) {
	root := &box{name: "root"}
	card := &box{name: "card", parent: root}
	rhs := CenterY(root).ScaledBy(0.5).Inset(12)

	c := CenterY(card).AtMost(rhs)
	got, ok := c.SecondRef()
	if !ok {
		t.Fatal("SecondRef() ok = false")
	}
	if got != rhs {
		t.Errorf("SecondRef() = %v, want %v", got, rhs)
	}
	if _, ok := c.Literal(); ok {
		t.Error("Literal() ok = true for relational constraint")
	}
}

func TestWithPriority(t *testing.T) {
	root := &box{name: "root"}
	card := &box{name: "card", parent: root}

	tests := []struct {
		name string
		c    *Constraint
	}{
		{"relational", Top(card).EqualTo(Bottom(root).OffsetBy(4))},
		{"literal", Height(card).AtLeastConstant(30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.c.Identifier = "x"
			got := WithPriority(tt.c, PriorityDefaultLow)

			if got == tt.c {
				t.Fatal("WithPriority returned the same pointer")
			}
			if tt.c.Priority != PriorityRequired {
				t.Errorf("original priority changed to %v", tt.c.Priority)
			}
			if got.Priority != PriorityDefaultLow {
				t.Errorf("Priority = %v, want %v", got.Priority, PriorityDefaultLow)
			}
			want := *tt.c
			want.Priority = PriorityDefaultLow
			if *got != want {
				t.Errorf("WithPriority() = %+v, want %+v", *got, want)
			}
		})
	}
}

func TestWithMultiplier(t *testing.T) {
	root := &box{name: "root"}
	card := &box{name: "card", parent: root}
	c := WithPriority(Width(card).EqualTo(Width(root).OffsetBy(-8)), PriorityDefaultHigh)

	got := c.WithMultiplier(0.5)
	if got == c {
		t.Fatal("WithMultiplier returned the same pointer")
	}
	if got.Multiplier != 0.5 || c.Multiplier != 1 {
		t.Errorf("multipliers = %v (new) %v (old)", got.Multiplier, c.Multiplier)
	}
	if got.Constant != -8 || got.Priority != PriorityDefaultHigh || got.SecondItem != Region(root) {
		t.Errorf("WithMultiplier lost fields: %+v", *got)
	}
	if got.String() != "card.width == 0.5 * root.width - 8 @750" {
		t.Errorf("String() = %q", got.String())
	}
}

func TestCommonAncestor(t *testing.T) {
	root := &box{name: "root"}
	a := &box{name: "a", parent: root}
	b := &box{name: "b", parent: root}
	a1 := &box{name: "a1", parent: a}
	other := &box{name: "other"}

	tests := []struct {
		name string
		x, y Region
		want Region
	}{
		{"siblings", a, b, root},
		{"nested and uncle", a1, b, root},
		{"ancestor and descendant", a1, a, a},
		{"descendant and ancestor", a, a1, a},
		{"self", a, a, a},
		{"separate trees", a, other, nil},
		{"nil", a, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommonAncestor(tt.x, tt.y); got != tt.want {
				t.Errorf("CommonAncestor() = %v, want %v", got, tt.want)
			}
		})
	}
}
