package maker

import (
	"testing"

	"github.com/matzehuels/caliper/pkg/core/constraint"
)

type region struct{ name string }

func (r *region) Name() string                  { return r.name }
func (r *region) Container() constraint.Region { return nil }

func TestStoreIdentitySemantics(t *testing.T) {
	r := &region{name: "a"}
	c1 := constraint.Width(r).EqualToConstant(10)
	c2 := constraint.Width(r).EqualToConstant(10) // structurally equal, distinct

	s := NewStore()
	if got := s.Add(c1, c1, c2, nil); got != 2 {
		t.Errorf("Add() = %d, want 2", got)
	}
	if got := s.Add(c1); got != 0 {
		t.Errorf("re-Add() = %d, want 0", got)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains(c1) || !s.Contains(c2) {
		t.Error("store lost a member")
	}

	all := s.All()
	if all[0] != c1 || all[1] != c2 {
		t.Errorf("All() order = %v", all)
	}
	all[0] = nil
	if s.All()[0] != c1 {
		t.Error("All() exposed internal slice")
	}
}

func TestStoreRemoveAndClear(t *testing.T) {
	r := &region{name: "a"}
	cs := []*constraint.Constraint{
		constraint.Width(r).EqualToConstant(1),
		constraint.Width(r).EqualToConstant(2),
		constraint.Width(r).EqualToConstant(3),
	}

	var s Store // zero value is usable
	s.Add(cs...)

	other := constraint.Height(r).EqualToConstant(4)
	if got := s.Remove(cs[1], other); got != 1 {
		t.Errorf("Remove() = %d, want 1", got)
	}
	if s.Contains(cs[1]) {
		t.Error("removed constraint still present")
	}
	all := s.All()
	if len(all) != 2 || all[0] != cs[0] || all[1] != cs[2] {
		t.Errorf("All() after Remove = %v", all)
	}

	// index stays consistent after compaction
	s.Add(cs[1])
	if got := s.Remove(cs[2]); got != 1 {
		t.Errorf("Remove() after re-add = %d, want 1", got)
	}

	cleared := s.Clear()
	if len(cleared) != 2 || s.Len() != 0 {
		t.Errorf("Clear() returned %d, Len() = %d", len(cleared), s.Len())
	}
	if s.Contains(cs[0]) {
		t.Error("cleared store still contains member")
	}
}
