package filtering

import (
	"github.com/ktane-web/filter-server/internal/enum"
)

type size int

const (
	sizeTiny size = iota
	sizeSmall
	sizeMedium
	sizeLarge
	sizeHuge
)

var sizes = enum.Table[size]{
	{Value: sizeTiny, Name: "Tiny", Filter: &enum.Marker{Label: "sizeTiny", Accel: 't'}},
	{Value: sizeSmall, Name: "Small", Filter: &enum.Marker{Label: "sizeSmall", Explain: "sizeSmallExplain", Accel: 's'}},
	{Value: sizeMedium, Name: "Medium", Filter: &enum.Marker{Label: "sizeMedium", Accel: 'm'}},
	{Value: sizeLarge, Name: "Large", Filter: &enum.Marker{Label: "sizeLarge"}},
	{Value: sizeHuge, Name: "Huge", Filter: &enum.Marker{Label: "sizeHuge", Accel: 'h'}},
}

type shape int

const (
	shapeCircle shape = iota
	shapeSquare
	shapeTriangle
)

var shapes = enum.Table[shape]{
	{Value: shapeCircle, Name: "Circle", Filter: &enum.Marker{Label: "shapeCircle", Accel: 'c'}},
	{Value: shapeSquare, Name: "Square"},
	{Value: shapeTriangle, Name: "Triangle", Filter: &enum.Marker{Label: "shapeTriangle", Accel: 'r'}},
}

type trait int

const (
	traitA trait = 1 << iota
	traitB
	traitC
)

var traits = enum.Table[trait]{
	{Value: traitA, Name: "A", Filter: &enum.Marker{Label: "traitA", Explain: "traitAExplain"}},
	{Value: traitB, Name: "B", Filter: &enum.Marker{Label: "traitB"}},
	{Value: traitC, Name: "C", Filter: &enum.Marker{Label: "traitC"}},
}

// thing is the item type the tests filter.
type thing struct {
	size   *size
	shape  *shape
	traits trait
}

func sizeOf(t thing) (size, bool) {
	if t.size == nil {
		return 0, false
	}
	return *t.size, true
}

func shapeOf(t thing) (shape, bool) {
	if t.shape == nil {
		return 0, false
	}
	return *t.shape, true
}

func traitsOf(t thing) trait {
	return t.traits
}

func ptr[V any](v V) *V {
	return &v
}

func newSizeFilter() Filter[thing] {
	return Slider("size", "filterSize", sizes, sizeOf, "t=>t.size")
}

func newShapeFilter() Filter[thing] {
	return Checkboxes("shape", "filterShape", shapes, shapeOf, "t=>t.shape")
}

func newTraitsFilter() Filter[thing] {
	return Flags("traits", "filterTraits", traits, traitsOf, "t=>t.traits||''")
}

// mapLocalizer resolves references from a map and echoes unknown ones.
type mapLocalizer map[string]string

func (m mapLocalizer) Lookup(ref string) string {
	if s, ok := m[ref]; ok {
		return s
	}
	return ref
}

var english = mapLocalizer{
	"filterSize":       "Size",
	"filterShape":      "Shape",
	"filterTraits":     "Traits",
	"sizeTiny":         "Tiny",
	"sizeSmall":        "Small",
	"sizeSmallExplain": "Fits in a pocket",
	"sizeMedium":       "Medium",
	"sizeLarge":        "Large",
	"sizeHuge":         "Huge",
	"shapeCircle":      "Circle",
	"shapeTriangle":    "Triangle",
	"traitA":           "Alpha",
	"traitAExplain":    "Has the alpha trait",
	"traitB":           "Beta",
	"traitC":           "Gamma",
	FlagYesRef:         "Yes",
	FlagNoRef:          "No",
	FlagEitherRef:      "Either",
}

var german = mapLocalizer{
	"filterShape":   "Form",
	"shapeCircle":   "Kreis",
	"shapeTriangle": "Dreieck",
	"filterTraits":  "Eigenschaften",
	"traitA":        "Alpha",
	FlagYesRef:      "Ja",
	FlagNoRef:       "Nein",
	FlagEitherRef:   "Egal",
}
