package state

import "fmt"

// Kind tags an entity in its serialised form.
type Kind string

const (
	KindStroke Kind = "stroke"
	KindGlyph  Kind = "glyph"
)

// Record is the serialised form of an Entity, used by board files and the
// live mirror.
type Record struct {
	Kind   Kind    `json:"kind"`
	Stroke *Stroke `json:"stroke,omitempty"`
	Glyph  *Glyph  `json:"glyph,omitempty"`
}

// RecordOf wraps e for serialisation.
func RecordOf(e Entity) Record {
	switch v := e.(type) {
	case *Stroke:
		return Record{Kind: KindStroke, Stroke: v}
	case *Glyph:
		return Record{Kind: KindGlyph, Glyph: v}
	default:
		panic(fmt.Sprintf("state: unknown entity %T", e))
	}
}

// Entity unwraps the record.
func (r Record) Entity() (Entity, error) {
	switch r.Kind {
	case KindStroke:
		if r.Stroke == nil || len(r.Stroke.Points) == 0 {
			return nil, fmt.Errorf("stroke record without points")
		}
		return r.Stroke, nil
	case KindGlyph:
		if r.Glyph == nil {
			return nil, fmt.Errorf("glyph record without glyph")
		}
		if r.Glyph.Digit < 0 || r.Glyph.Digit > 9 {
			return nil, fmt.Errorf("glyph digit %d out of range", r.Glyph.Digit)
		}
		return r.Glyph, nil
	default:
		return nil, fmt.Errorf("unknown entity kind %q", r.Kind)
	}
}

// Records wraps every entity of es.
func Records(es []Entity) []Record {
	out := make([]Record, len(es))
	for i, e := range es {
		out[i] = RecordOf(e)
	}
	return out
}
