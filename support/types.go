package support

import (
	"encoding/json"
	"os"

	"github.com/voidshard/slasupport/geom"
	"github.com/voidshard/slasupport/sample"
)

// SupportPoint is one placed support, expressed in millimeters for
// external consumption (§6's output boundary) — the scaled internal
// geom.Coord representation never leaks past this package, matching the
// teacher's own citygraph.go/structs.go convention of a plain exported
// DTO with a JSON()/SaveJSON() pair for serialization.
type SupportPoint struct {
	X, Y, Z float64
	Type    string
	Radius  float64 `json:"radius,omitempty"`
}

func newSupportPoint(pt geom.Point, z geom.Coord, t sample.Type, radiusMM float64) SupportPoint {
	return SupportPoint{
		X:      geom.UnscaleMM(pt.X),
		Y:      geom.UnscaleMM(pt.Y),
		Z:      geom.UnscaleMM(z),
		Type:   t.String(),
		Radius: radiusMM,
	}
}

// Result is everything Generate produces for a stack of layers.
type Result struct {
	Points []SupportPoint
}

// JSON marshals the result (indented, matching citygraph.go's
// human-readable SaveJSON convention).
func (r *Result) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// SaveJSON writes the result's JSON encoding to path.
func (r *Result) SaveJSON(path string) error {
	data, err := r.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
