package scene

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/caliper/pkg/core/constraint"
	"github.com/matzehuels/caliper/pkg/core/maker"
	"github.com/matzehuels/caliper/pkg/core/view"
	"github.com/matzehuels/caliper/pkg/engine"
	"github.com/matzehuels/caliper/pkg/errors"
)

// Scene is a built document: the live view tree, the engine holding its
// active constraints, and the DSL that made them.
type Scene struct {
	Name   string
	Root   *view.View
	Engine *engine.Memory
	DSL    *maker.DSL

	elements map[string]maker.Element
	order    []string
	logger   *log.Logger
}

// Build creates the view tree declared by doc and applies its rules and
// remakes. The first failing rule aborts the build.
func Build(doc *Document, logger *log.Logger) (*Scene, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nil document")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	eng := engine.New(logger)
	s := &Scene{
		Name:     doc.Name,
		Root:     view.New(RootName),
		Engine:   eng,
		DSL:      maker.New(eng, logger),
		elements: make(map[string]maker.Element),
		logger:   logger,
	}
	s.elements[RootName] = s.Root
	s.order = append(s.order, RootName)

	for _, spec := range doc.Views {
		v := view.New(spec.Name)
		parent := s.Root
		if spec.Parent != "" {
			parent = s.elements[spec.Parent].(*view.View)
		}
		if err := parent.AddSubview(v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "view %q", spec.Name)
		}
		s.add(spec.Name, v)
	}
	for _, spec := range doc.Guides {
		owner := s.Root
		if spec.Owner != "" {
			owner = s.elements[spec.Owner].(*view.View)
		}
		s.add(spec.Name, owner.AddGuide(spec.Name))
	}

	for _, spec := range doc.Views {
		if err := s.apply(spec.Name, spec.Rules, false); err != nil {
			return nil, err
		}
	}
	for _, spec := range doc.Guides {
		if err := s.apply(spec.Name, spec.Rules, false); err != nil {
			return nil, err
		}
	}
	for _, spec := range doc.Remakes {
		if err := s.apply(spec.View, spec.Rules, true); err != nil {
			return nil, err
		}
	}

	logger.Debug("scene built", "name", s.Name, "elements", len(s.order), "active", eng.Len())
	return s, nil
}

func (s *Scene) add(name string, el maker.Element) {
	s.elements[name] = el
	s.order = append(s.order, name)
}

func (s *Scene) apply(name string, rules []Rule, remake bool) error {
	if len(rules) == 0 && !remake {
		return nil
	}
	steps := make([]func(*maker.Maker), 0, len(rules))
	for i, r := range rules {
		step, err := s.compile(r)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "%s: rules[%d]", name, i)
		}
		steps = append(steps, step)
	}

	configure := func(m *maker.Maker) {
		for _, step := range steps {
			step(m)
		}
	}
	el := s.elements[name]
	var err error
	if remake {
		_, err = s.DSL.Remake(el, configure)
	} else {
		_, err = s.DSL.Make(el, configure)
	}
	if err != nil {
		return errors.Wrap(errors.GetCode(err), err, "apply rules for %s", name)
	}
	return nil
}

// Element returns the view or guide with the given name.
func (s *Scene) Element(name string) (maker.Element, bool) {
	el, ok := s.elements[name]
	return el, ok
}

// View returns the named view, or nil if name is unknown or a guide.
func (s *Scene) View(name string) *view.View {
	v, _ := s.elements[name].(*view.View)
	return v
}

// Names returns element names in declaration order, root first.
func (s *Scene) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Constraints returns every active constraint in activation order.
func (s *Scene) Constraints() []*constraint.Constraint {
	return s.Engine.Active()
}

// Remake replaces the rules of a named element after the scene is built.
func (s *Scene) Remake(name string, rules []Rule) error {
	if _, ok := s.elements[name]; !ok || name == RootName {
		return errors.New(errors.ErrCodeNotFound, "unknown element %q", name)
	}
	return s.apply(name, rules, true)
}

// Close tears down every element and destroys the view tree.
func (s *Scene) Close() error {
	for i := len(s.order) - 1; i >= 0; i-- {
		if err := s.DSL.Teardown(s.elements[s.order[i]]); err != nil {
			return err
		}
	}
	s.Root.Destroy()
	return nil
}

// compile turns a rule into a maker step. Everything that can be checked
// without running the maker is checked here.
func (s *Scene) compile(r Rule) (func(*maker.Maker), error) {
	selects := make([]func(*maker.Maker) *maker.Maker, 0, len(r.Select))
	for _, name := range r.Select {
		sel, err := selector(name)
		if err != nil {
			return nil, err
		}
		selects = append(selects, sel)
	}

	rel, err := constraint.ParseRelation(r.Relation)
	if err != nil {
		return nil, err
	}
	terminal, err := s.terminal(r, rel)
	if err != nil {
		return nil, err
	}

	var priority constraint.Priority
	if r.Priority != nil {
		priority = constraint.Priority(*r.Priority)
		if !priority.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidInput, "priority %v outside (0, 1000]", *r.Priority)
		}
	}

	return func(m *maker.Maker) {
		for _, sel := range selects {
			sel(m)
		}
		terminal(m)
		if r.Offset != 0 {
			m.Offset(r.Offset)
		}
		if r.Multiplier != nil {
			m.Multiplier(*r.Multiplier)
		}
		if r.Priority != nil {
			m.Priority(priority)
		}
		if r.ID != "" {
			m.Labeled(r.ID)
		}
	}, nil
}

func selector(name string) (func(*maker.Maker) *maker.Maker, error) {
	switch strings.ToLower(name) {
	case "edges":
		return (*maker.Maker).Edges, nil
	case "size":
		return (*maker.Maker).Size, nil
	case "center":
		return (*maker.Maker).Center, nil
	case "horizontal":
		return (*maker.Maker).Horizontal, nil
	case "vertical":
		return (*maker.Maker).Vertical, nil
	}
	attr, err := constraint.ParseAttribute(name)
	if err != nil {
		return nil, err
	}
	return func(m *maker.Maker) *maker.Maker { return m.Attribute(attr) }, nil
}

func (s *Scene) terminal(r Rule, rel constraint.Relation) (func(*maker.Maker), error) {
	refAdjusted := r.Scale != nil || r.Divide != nil || r.Plus != 0

	switch {
	case r.To == "":
		if r.Constant == nil {
			return nil, errors.New(errors.ErrCodeInvalidScene, "rule needs either to or constant")
		}
		if refAdjusted {
			return nil, errors.New(errors.ErrCodeInvalidScene, "scale, divide and plus need a region.attribute target")
		}
		v := *r.Constant
		return func(m *maker.Maker) {
			switch rel {
			case constraint.GreaterOrEqual:
				m.AtLeastConstant(v)
			case constraint.LessOrEqual:
				m.AtMostConstant(v)
			default:
				m.EqualToConstant(v)
			}
		}, nil

	case r.Constant != nil:
		return nil, errors.New(errors.ErrCodeInvalidScene, "constant cannot be combined with to %q", r.To)

	case r.To == "container" || r.To == "superview":
		if refAdjusted {
			return nil, errors.New(errors.ErrCodeInvalidScene, "scale, divide and plus need a region.attribute target")
		}
		return func(m *maker.Maker) {
			switch rel {
			case constraint.GreaterOrEqual:
				m.AtLeastContainer()
			case constraint.LessOrEqual:
				m.AtMostContainer()
			default:
				m.EqualToContainer()
			}
		}, nil

	case strings.Contains(r.To, "."):
		ref, err := s.resolveRef(r)
		if err != nil {
			return nil, err
		}
		return func(m *maker.Maker) {
			switch rel {
			case constraint.GreaterOrEqual:
				m.AtLeast(ref)
			case constraint.LessOrEqual:
				m.AtMost(ref)
			default:
				m.EqualTo(ref)
			}
		}, nil
	}

	if refAdjusted {
		return nil, errors.New(errors.ErrCodeInvalidScene, "scale, divide and plus need a region.attribute target")
	}
	target, ok := s.elements[r.To]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "unknown region %q", r.To)
	}
	return func(m *maker.Maker) {
		switch rel {
		case constraint.GreaterOrEqual:
			m.AtLeastRegion(target)
		case constraint.LessOrEqual:
			m.AtMostRegion(target)
		default:
			m.EqualToRegion(target)
		}
	}, nil
}

func (s *Scene) resolveRef(r Rule) (constraint.Ref, error) {
	regionName, attrName, _ := strings.Cut(r.To, ".")
	target, ok := s.elements[regionName]
	if !ok {
		return constraint.Ref{}, errors.New(errors.ErrCodeNotFound, "unknown region %q", regionName)
	}
	attr, err := constraint.ParseAttribute(attrName)
	if err != nil {
		return constraint.Ref{}, err
	}

	ref := constraint.RefOf(target, attr)
	if r.Scale != nil {
		ref = ref.ScaledBy(*r.Scale)
	}
	if r.Divide != nil {
		if ref, err = ref.DividedBy(*r.Divide); err != nil {
			return constraint.Ref{}, err
		}
	}
	if r.Plus != 0 {
		ref = ref.OffsetBy(r.Plus)
	}
	return ref, nil
}
