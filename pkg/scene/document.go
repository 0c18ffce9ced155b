package scene

import (
	"bytes"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/caliper/pkg/errors"
)

// RootName is the name of the implicit root view.
const RootName = "root"

// Document is the decoded form of a scene file.
type Document struct {
	Name    string       `toml:"name"`
	Views   []ViewSpec   `toml:"views"`
	Guides  []GuideSpec  `toml:"guides"`
	Remakes []RemakeSpec `toml:"remakes"`
}

// ViewSpec declares one view and the rules made for it.
type ViewSpec struct {
	Name   string `toml:"name"`
	Parent string `toml:"parent"`
	Rules  []Rule `toml:"rules"`
}

// GuideSpec declares a layout guide owned by a view.
type GuideSpec struct {
	Name  string `toml:"name"`
	Owner string `toml:"owner"`
	Rules []Rule `toml:"rules"`
}

// RemakeSpec replaces every rule previously made for an element.
type RemakeSpec struct {
	View  string `toml:"view"`
	Rules []Rule `toml:"rules"`
}

// Rule is one selection plus one terminal call, with optional
// post-adjustments.
type Rule struct {
	// Select lists attribute names, or the groups "edges", "size",
	// "center", "horizontal" and "vertical".
	Select []string `toml:"select"`

	// Relation is "equal" (default), "atLeast" or "atMost".
	Relation string `toml:"relation"`

	// To is "container", a region name, or "<region>.<attribute>".
	// When empty the rule relates to Constant.
	To       string   `toml:"to"`
	Constant *float64 `toml:"constant"`

	// Scale, Divide and Plus adjust a "<region>.<attribute>" target ref.
	Scale  *float64 `toml:"scale"`
	Divide *float64 `toml:"divide"`
	Plus   float64  `toml:"plus"`

	// Offset, Multiplier and Priority adjust the produced constraints.
	Offset     float64  `toml:"offset"`
	Multiplier *float64 `toml:"multiplier"`
	Priority   *float64 `toml:"priority"`

	ID string `toml:"id"`
}

// Parse decodes a TOML scene document and validates its structure.
// Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	meta, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode scene")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidScene, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "scene file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read scene %s", path)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load %s", path)
	}
	return doc, nil
}

// Validate checks names and references. Rule contents are checked when the
// scene is built.
func (d *Document) Validate() error {
	declared := map[string]string{RootName: "view"}

	for i, v := range d.Views {
		if err := checkName(v.Name, declared); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "views[%d]", i)
		}
		if v.Parent != "" && declared[v.Parent] != "view" {
			return errors.New(errors.ErrCodeInvalidScene, "view %q: parent %q is not a view declared before it", v.Name, v.Parent)
		}
		if err := checkRules(v.Name, v.Rules); err != nil {
			return err
		}
		declared[v.Name] = "view"
	}

	for i, g := range d.Guides {
		if err := checkName(g.Name, declared); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "guides[%d]", i)
		}
		owner := g.Owner
		if owner == "" {
			owner = RootName
		}
		if declared[owner] != "view" {
			return errors.New(errors.ErrCodeInvalidScene, "guide %q: owner %q is not a view", g.Name, g.Owner)
		}
		if err := checkRules(g.Name, g.Rules); err != nil {
			return err
		}
		declared[g.Name] = "guide"
	}

	for i, r := range d.Remakes {
		if r.View == RootName || declared[r.View] == "" {
			return errors.New(errors.ErrCodeInvalidScene, "remakes[%d]: unknown element %q", i, r.View)
		}
		if err := checkRules(r.View, r.Rules); err != nil {
			return err
		}
	}
	return nil
}

func checkName(name string, declared map[string]string) error {
	if err := errors.ValidateRegionName(name); err != nil {
		return err
	}
	if _, dup := declared[name]; dup {
		return errors.New(errors.ErrCodeInvalidName, "duplicate region name %q", name)
	}
	return nil
}

func checkRules(owner string, rules []Rule) error {
	for i, r := range rules {
		if len(r.Select) == 0 {
			return errors.New(errors.ErrCodeInvalidScene, "%s: rules[%d]: select is empty", owner, i)
		}
	}
	return nil
}
