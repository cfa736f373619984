package state

import (
	"encoding/json"
	"fmt"
	"io"
)

const fileVersion = 1

type file struct {
	Version  int      `json:"version"`
	Entities []Record `json:"entities"`
}

// Save writes es as an indented JSON board document.
func Save(w io.Writer, es []Entity) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file{Version: fileVersion, Entities: Records(es)}); err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	return nil
}

// Load reads a board document written by Save.
func Load(r io.Reader) ([]Entity, error) {
	var f file
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	if f.Version != fileVersion {
		return nil, fmt.Errorf("unsupported board version %d", f.Version)
	}
	es := make([]Entity, 0, len(f.Entities))
	for i, rec := range f.Entities {
		e, err := rec.Entity()
		if err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
		es = append(es, e)
	}
	return es, nil
}
