package colorwheel

import "strings"

// Color is an HSV color. Hue is in degrees, saturation and value are
// percentages. Color is a plain value; operations return new colors.
type Color struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
}

// HSV builds a Color from its three components.
func HSV(h, s, v float64) Color { return Color{Hue: h, Saturation: s, Value: v} }

// HarmonyKind identifies one of the supported color harmonies.
type HarmonyKind string

// The six supported harmonies.
const (
	Complementary      HarmonyKind = "complementary"
	Monochromatic      HarmonyKind = "monochromatic"
	Analogous          HarmonyKind = "analogous"
	SplitComplementary HarmonyKind = "split-complementary"
	Triadic            HarmonyKind = "triadic"
	Tetradic           HarmonyKind = "tetradic"
)

type kindInfo struct {
	selector string
	name     string
	count    int
}

// menu order
var kindOrder = []HarmonyKind{
	Complementary,
	Monochromatic,
	Analogous,
	SplitComplementary,
	Triadic,
	Tetradic,
}

var kindTable = map[HarmonyKind]kindInfo{
	Complementary:      {selector: "c", name: "complementary", count: 1},
	Monochromatic:      {selector: "m", name: "monochromatic", count: 1},
	Analogous:          {selector: "a", name: "analogous", count: 2},
	SplitComplementary: {selector: "sp", name: "split-complementary", count: 2},
	Triadic:            {selector: "tri", name: "triadic", count: 2},
	Tetradic:           {selector: "tet", name: "tetradic", count: 3},
}

// Kinds returns all harmony kinds in menu order.
func Kinds() []HarmonyKind { return append([]HarmonyKind(nil), kindOrder...) }

// Valid reports whether k is one of the six supported kinds.
func (k HarmonyKind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

// Selector returns the short code used to pick k at the prompt ("c", "sp", ...).
func (k HarmonyKind) Selector() string { return kindTable[k].selector }

// Name returns the human readable name of k.
func (k HarmonyKind) Name() string { return kindTable[k].name }

// Len returns how many colors Calculate produces for k, or 0 for an unknown kind.
func (k HarmonyKind) Len() int { return kindTable[k].count }

// ParseSelector resolves an exact selector code ("c", "m", "a", "sp", "tri",
// "tet") to a HarmonyKind.
func ParseSelector(s string) (HarmonyKind, error) {
	for _, k := range kindOrder {
		if s == kindTable[k].selector {
			return k, nil
		}
	}
	return "", &SelectionError{Field: "harmony", Input: s}
}

// ParseHarmonyKind resolves a selector code ("c", "m", "a", "sp", "tri", "tet")
// or a kind name ("split complementary", "Triadic") to a HarmonyKind.
func ParseHarmonyKind(s string) (HarmonyKind, error) {
	in := strings.TrimSpace(s)
	if k, err := ParseSelector(in); err == nil {
		return k, nil
	}
	norm := strings.ReplaceAll(strings.ToLower(in), " ", "-")
	norm = strings.ReplaceAll(norm, "_", "-")
	if norm == "splitcomplementary" {
		norm = string(SplitComplementary)
	}
	if k := HarmonyKind(norm); k.Valid() {
		return k, nil
	}
	return "", &SelectionError{Field: "harmony", Input: s}
}

// Palette is a base color together with one of its harmonies.
type Palette struct {
	Base   Color       `json:"base"`
	Kind   HarmonyKind `json:"kind"`
	Colors []Color     `json:"colors"`
}

// NewPalette computes the harmony of base selected by kind.
func NewPalette(base Color, kind HarmonyKind) (Palette, error) {
	colors, err := Calculate(base, kind)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Base: base, Kind: kind, Colors: colors}, nil
}
