// Package normalize enforces precision and content-shape rules on a QuakeML
// tree just before serialization. Locations and magnitudes are computed, not
// measured; rounding keeps downstream consumers from reading floating-point
// representation noise as precision.
package normalize

import (
	"fmt"
	"math"

	"qmlutil/tree"
)

// RoundSpec names a numeric sub-field and the decimal places to keep.
// Negative places round to powers of ten: -2 rounds to the nearest hundred.
type RoundSpec struct {
	Field  string
	Places int
}

// roundingRules maps element names to the rounding applied to their
// sub-fields. Depth is in meters, hence the coarse hundreds.
var roundingRules = map[string][]RoundSpec{
	"depth":     {{"value", -2}, {"uncertainty", -2}},
	"latitude":  {{"uncertainty", 4}},
	"longitude": {{"uncertainty", 4}},
	"time":      {{"uncertainty", 6}},
	"originUncertainty": {
		{"horizontalUncertainty", -1},
		{"minHorizontalUncertainty", -1},
		{"maxHorizontalUncertainty", -1},
	},
	"mag": {{"value", 1}, {"uncertainty", 2}},
}

// Rounder is a serialization preprocessor applying the rounding table plus a
// few QuakeML conformance edits. Returning keep=false suppresses the node.
type Rounder struct{}

// NewRounder returns the standard QuakeML rounder.
func NewRounder() *Rounder {
	return &Rounder{}
}

// Process handles one (key, value) pair as the tree is walked for emission.
func (r *Rounder) Process(key string, v any) (string, any, bool) {
	// never serialize empty stuff
	if v == nil {
		return key, nil, false
	}

	switch key {
	case "nodalPlanes":
		// schema wants the selector attribute as a string even though the
		// value is numerically derived
		if m, ok := v.(map[string]any); ok {
			if p, ok := m["@preferredPlane"]; ok && p != nil {
				m["@preferredPlane"] = scalarText(p)
			}
		}
	case "waveformID":
		// no text content allowed on waveformID, attributes only
		if m, ok := v.(map[string]any); ok {
			delete(m, tree.TextKey)
		}
	case "arrival":
		// every arrival must carry a phase
		if seq, ok := v.([]any); ok {
			kept := make([]any, 0, len(seq))
			for _, el := range seq {
				if m, ok := el.(map[string]any); ok && m["phase"] != nil {
					kept = append(kept, el)
				}
			}
			v = kept
		}
	default:
		if specs, ok := roundingRules[key]; ok {
			if m, ok := v.(map[string]any); ok {
				for _, spec := range specs {
					roundField(m, spec.Field, spec.Places)
				}
			}
		}
	}
	return key, v, true
}

// roundField rounds a numeric field in place; absent or non-numeric fields
// are left alone.
func roundField(m map[string]any, field string, places int) {
	switch n := m[field].(type) {
	case float64:
		m[field] = Round(n, places)
	case int64:
		m[field] = Round(float64(n), places)
	case int:
		m[field] = Round(float64(n), places)
	}
}

// Round rounds half away from zero to the given number of decimal places.
// Negative places divide by an exact power of ten first so coarse results
// like 100.0 come out exact.
func Round(v float64, places int) float64 {
	if places < 0 {
		factor := math.Pow(10, float64(-places))
		return math.Round(v/factor) * factor
	}
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}

func scalarText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
