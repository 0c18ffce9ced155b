package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/caliper/pkg/core/constraint"
)

// Record is the serialized form of one constraint.
type Record struct {
	ID         string  `json:"id,omitempty"`
	First      string  `json:"first"`
	Relation   string  `json:"relation"`
	Second     string  `json:"second,omitempty"`
	Multiplier float64 `json:"multiplier"`
	Constant   float64 `json:"constant"`
	Priority   float32 `json:"priority"`
	Text       string  `json:"text"`
}

type document struct {
	Scene       string   `json:"scene,omitempty"`
	Count       int      `json:"count"`
	Constraints []Record `json:"constraints"`
}

// Snapshot converts constraints to records, preserving order. Nil entries
// are skipped.
func Snapshot(cs []*constraint.Constraint) []Record {
	out := make([]Record, 0, len(cs))
	for _, c := range cs {
		if c == nil {
			continue
		}
		r := Record{
			ID:         c.Identifier,
			First:      qualified(c.Item, c.Attribute),
			Relation:   c.Relation.Keyword(),
			Multiplier: c.Multiplier,
			Constant:   c.Constant,
			Priority:   float32(c.Priority),
			Text:       c.String(),
		}
		if !c.IsLiteral() {
			r.Second = qualified(c.SecondItem, c.SecondAttribute)
		}
		out = append(out, r)
	}
	return out
}

func qualified(r constraint.Region, a constraint.Attribute) string {
	if r == nil {
		return ""
	}
	return r.Name() + "." + a.String()
}

// WriteJSON encodes cs as an indented JSON document named after scene.
func WriteJSON(w io.Writer, scene string, cs []*constraint.Constraint) error {
	records := Snapshot(cs)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Scene: scene, Count: len(records), Constraints: records}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalJSON returns the document [WriteJSON] would write.
func MarshalJSON(scene string, cs []*constraint.Constraint) ([]byte, error) {
	records := Snapshot(cs)
	return json.MarshalIndent(document{Scene: scene, Count: len(records), Constraints: records}, "", "  ")
}

// WriteJSONFile writes the JSON document to path.
func WriteJSONFile(path, scene string, cs []*constraint.Constraint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, scene, cs)
}
