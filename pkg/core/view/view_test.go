package view

import (
	"testing"

	"github.com/matzehuels/caliper/pkg/core/constraint"
	"github.com/matzehuels/caliper/pkg/errors"
)

func TestNewView(t *testing.T) {
	v := New("card")
	if v.Name() != "card" {
		t.Errorf("Name() = %q, want card", v.Name())
	}
	if v.Container() != nil {
		t.Errorf("Container() = %v, want nil", v.Container())
	}
	if !v.TranslatesAutoresizing() {
		t.Error("new view should translate autoresizing")
	}

	anon := New("")
	if len(anon.Name()) != len("view-")+8 {
		t.Errorf("generated name = %q", anon.Name())
	}
	if anon.ID() == v.ID() {
		t.Error("views share an ID")
	}
}

func TestAnchorsPointAtView(t *testing.T) {
	v := New("card")
	refs := map[constraint.Attribute]constraint.Ref{
		constraint.AttrLeft:     v.Left(),
		constraint.AttrRight:    v.Right(),
		constraint.AttrTop:      v.Top(),
		constraint.AttrBottom:   v.Bottom(),
		constraint.AttrLeading:  v.Leading(),
		constraint.AttrTrailing: v.Trailing(),
		constraint.AttrWidth:    v.Width(),
		constraint.AttrHeight:   v.Height(),
		constraint.AttrCenterX:  v.CenterX(),
		constraint.AttrCenterY:  v.CenterY(),
	}
	for attr, ref := range refs {
		if ref != constraint.RefOf(v, attr) {
			t.Errorf("%v accessor = %v", attr, ref)
		}
	}
}

func TestAddSubview(t *testing.T) {
	root, a, b := New("root"), New("a"), New("b")

	if err := root.AddSubview(a); err != nil {
		t.Fatal(err)
	}
	if err := a.AddSubview(b); err != nil {
		t.Fatal(err)
	}
	if b.Container() != constraint.Region(a) || b.Superview() != a {
		t.Errorf("b container = %v", b.Container())
	}

	tests := []struct {
		name   string
		parent *View
		child  *View
	}{
		{"nil child", root, nil},
		{"self", a, a},
		{"ancestor into descendant", b, root},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parent.AddSubview(tt.child)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("AddSubview() error = %v, want INVALID_INPUT", err)
			}
		})
	}

	// reparenting detaches from the old superview
	if err := root.AddSubview(b); err != nil {
		t.Fatal(err)
	}
	if len(a.Subviews()) != 0 || len(root.Subviews()) != 2 {
		t.Errorf("after reparent: a has %d, root has %d", len(a.Subviews()), len(root.Subviews()))
	}
}

func TestFindAndWalk(t *testing.T) {
	root, a, b, c := New("root"), New("a"), New("b"), New("c")
	_ = root.AddSubview(a)
	_ = root.AddSubview(b)
	_ = a.AddSubview(c)

	var order []string
	root.Walk(func(v *View) bool {
		order = append(order, v.Name())
		return true
	})
	want := []string{"root", "a", "c", "b"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Walk order = %v, want %v", order, want)
		}
	}

	if root.Find("c") != c {
		t.Error("Find(c) failed")
	}
	if root.Find("missing") != nil {
		t.Error("Find(missing) should be nil")
	}
}

func TestGuide(t *testing.T) {
	root := New("root")
	g := root.AddGuide("safe")

	if g.Container() != constraint.Region(root) || g.Owner() != root {
		t.Errorf("guide container = %v", g.Container())
	}
	if g.Top() != constraint.RefOf(g, constraint.AttrTop) {
		t.Error("guide anchors do not point at the guide")
	}
	if g.ConstraintStore() != g.ConstraintStore() {
		t.Error("guide store not stable")
	}
	if len(root.Guides()) != 1 {
		t.Errorf("Guides() = %d, want 1", len(root.Guides()))
	}
}

func TestDestroy(t *testing.T) {
	root, a, b := New("root"), New("a"), New("b")
	_ = root.AddSubview(a)
	_ = a.AddSubview(b)

	store := a.ConstraintStore()
	if a.ConstraintStore() != store {
		t.Fatal("store not stable before destroy")
	}

	a.Destroy()

	if !a.IsDestroyed() || !b.IsDestroyed() {
		t.Error("subtree not destroyed")
	}
	if len(root.Subviews()) != 0 || a.Container() != nil {
		t.Error("destroyed view still attached")
	}
	if a.ConstraintStore() == store {
		t.Error("store survived destroy")
	}
	if err := root.AddSubview(a); err == nil {
		t.Error("re-adding a destroyed view succeeded")
	}
}
