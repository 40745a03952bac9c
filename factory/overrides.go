/*
Package factory converts stored JSON configuration into engine types.

PURPOSE:
  Calendar override layers and fringe settings live as JSON documents
  (in the database and on disk respectively) so production managers
  can adjust them without code changes. This package is the boundary
  where those documents become typed award structures.

JSON SCHEMA (calendar overrides, one document per layer):
  {
    "shoot": {
      "inherit": false,
      "defaultHours": 12,
      "dates": ["2026-05-11", "2026-05-12"]
    },
    "postProd": {"inherit": true}
  }

  Phase absence means "no override for that phase". An override only
  takes effect when "inherit" is explicitly false.

SEE ALSO:
  - award/calendar.go: The resolver consuming OverrideSets
  - settings.go: Fringe settings file handling
*/
package factory

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/callsheet/budget-engine/award"
)

// PhaseOverrideJSON is the stored form of one phase's override.
type PhaseOverrideJSON struct {
	Inherit      *bool    `json:"inherit,omitempty"`
	DefaultHours *float64 `json:"defaultHours,omitempty"`
	Dates        []string `json:"dates,omitempty"`
}

// OverridesJSON is a whole override layer keyed by phase name.
type OverridesJSON map[string]PhaseOverrideJSON

// ParseOverrides decodes an override layer document. Unknown phase
// keys are ignored (forward compatibility with documents written by
// newer schema versions). An empty or "null" document is a valid
// empty layer.
func ParseOverrides(raw []byte) (award.OverrideSet, error) {
	if len(raw) == 0 {
		return award.OverrideSet{}, nil
	}

	var doc OverridesJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse calendar overrides: %w", err)
	}

	return FromOverridesJSON(doc), nil
}

// FromOverridesJSON converts a decoded document to an OverrideSet.
func FromOverridesJSON(doc OverridesJSON) award.OverrideSet {
	set := award.OverrideSet{}
	for _, phase := range award.Phases() {
		ov, ok := doc[string(phase)]
		if !ok {
			continue
		}
		set[phase] = award.PhaseOverride{
			Inherit:      ov.Inherit,
			DefaultHours: ov.DefaultHours,
			Dates:        ov.Dates,
		}
	}
	return set
}

// ToOverridesJSON converts an OverrideSet back to its stored form.
func ToOverridesJSON(set award.OverrideSet) OverridesJSON {
	doc := OverridesJSON{}
	for phase, ov := range set {
		doc[string(phase)] = PhaseOverrideJSON{
			Inherit:      ov.Inherit,
			DefaultHours: ov.DefaultHours,
			Dates:        ov.Dates,
		}
	}
	return doc
}
