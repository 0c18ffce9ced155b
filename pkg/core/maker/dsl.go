package maker

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/caliper/pkg/core/constraint"
	"github.com/matzehuels/caliper/pkg/errors"
	"github.com/matzehuels/caliper/pkg/observability"
)

// DSL is the entry point for declaring constraints against a host engine.
type DSL struct {
	engine Engine
	logger *log.Logger
}

// New returns a DSL submitting to engine. A nil logger discards output.
func New(engine Engine, logger *log.Logger) *DSL {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &DSL{engine: engine, logger: logger}
}

// Make disables el's autoresizing translation, runs configure against a fresh
// maker, activates the produced constraints as one batch and records them in
// el's store. It returns the activated constraints.
//
// If configure records an error, nothing is activated and the error is
// returned.
func (d *DSL) Make(el Element, configure func(*Maker)) ([]*constraint.Constraint, error) {
	cs, err := d.make(el, configure)
	d.report(el, cs, false, err)
	return cs, err
}

// Remake replaces every constraint previously declared for el with the set
// produced by configure. On success el's store holds exactly the new set and
// the old set is inactive.
//
// The new set is built before anything is torn down: if configure fails, or
// the engine refuses the new batch, the previous set stays active.
func (d *DSL) Remake(el Element, configure func(*Maker)) ([]*constraint.Constraint, error) {
	cs, err := d.remake(el, configure)
	d.report(el, cs, true, err)
	return cs, err
}

// Teardown deactivates and forgets every constraint stored for el. Call it
// before discarding an element.
func (d *DSL) Teardown(el Element) error {
	if el == nil {
		return errors.New(errors.ErrCodeInvalidInput, "teardown: nil element")
	}
	store := el.ConstraintStore()
	old := store.All()
	if err := d.engine.Deactivate(old); err != nil {
		return fmt.Errorf("teardown %s: %w", el.Name(), err)
	}
	store.Clear()
	d.logger.Debug("teardown", "target", el.Name(), "released", len(old))
	observability.Maker().OnTeardown(el.Name(), len(old))
	return nil
}

func (d *DSL) make(el Element, configure func(*Maker)) ([]*constraint.Constraint, error) {
	cs, err := d.build(el, configure)
	if err != nil {
		return nil, err
	}
	if err := d.engine.Activate(cs); err != nil {
		return nil, fmt.Errorf("make %s: %w", el.Name(), err)
	}
	el.ConstraintStore().Add(cs...)
	return cs, nil
}

func (d *DSL) remake(el Element, configure func(*Maker)) ([]*constraint.Constraint, error) {
	cs, err := d.build(el, configure)
	if err != nil {
		return nil, err
	}

	store := el.ConstraintStore()
	old := store.All()
	if err := d.engine.Deactivate(old); err != nil {
		return nil, fmt.Errorf("remake %s: deactivate: %w", el.Name(), err)
	}
	store.Clear()

	if err := d.engine.Activate(cs); err != nil {
		if rerr := d.engine.Activate(old); rerr != nil {
			d.logger.Error("restore previous constraints", "target", el.Name(), "err", rerr)
		} else {
			store.Add(old...)
		}
		return nil, fmt.Errorf("remake %s: %w", el.Name(), err)
	}
	store.Add(cs...)
	d.logger.Debug("remake replaced constraints", "target", el.Name(), "old", len(old), "new", len(cs))
	return cs, nil
}

// build runs configure and returns the produced constraints without
// touching the engine.
func (d *DSL) build(el Element, configure func(*Maker)) ([]*constraint.Constraint, error) {
	if el == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "make: nil element")
	}
	el.SetTranslatesAutoresizing(false)

	m := newMaker(el, d.logger)
	if configure != nil {
		configure(m)
	}
	m.finish()
	if m.err != nil {
		return nil, fmt.Errorf("configure %s: %w", el.Name(), m.err)
	}
	return m.produced, nil
}

func (d *DSL) report(el Element, cs []*constraint.Constraint, remake bool, err error) {
	name := "<nil>"
	if el != nil {
		name = el.Name()
	}
	if err != nil {
		d.logger.Debug("make failed", "target", name, "remake", remake, "err", err)
	} else {
		d.logger.Debug("made constraints", "target", name, "remake", remake, "count", len(cs))
	}
	observability.Maker().OnMake(name, len(cs), remake, err)
}
