package colorwheel

import "math"

// hue offsets per kind, in output order
var (
	analogousOffsets          = [...]float64{25, -25}
	splitComplementaryOffsets = [...]float64{155, -155}
	triadicOffsets            = [...]float64{-120, 120}
	tetradicOffsets           = [...]float64{60, 120, -120}
)

// Calculate returns the colors that form the harmony kind with base, in the
// documented order for that kind. The base itself is not included.
func Calculate(base Color, kind HarmonyKind) ([]Color, error) {
	switch kind {
	case Complementary:
		return []Color{base.AdjustHue(180)}, nil
	case Monochromatic:
		return []Color{monochromatic(base)}, nil
	case Analogous:
		return rotate(base, analogousOffsets[:]), nil
	case SplitComplementary:
		return rotate(base, splitComplementaryOffsets[:]), nil
	case Triadic:
		return rotate(base, triadicOffsets[:]), nil
	case Tetradic:
		return rotate(base, tetradicOffsets[:]), nil
	default:
		return nil, &SelectionError{Field: "harmony", Input: string(kind)}
	}
}

// CalculateHarmony is Calculate for a base given as separate HSV components.
func CalculateHarmony(h, s, v float64, kind HarmonyKind) ([]Color, error) {
	return Calculate(HSV(h, s, v), kind)
}

func rotate(base Color, offsets []float64) []Color {
	out := make([]Color, len(offsets))
	for i, off := range offsets {
		out[i] = base.AdjustHue(off)
	}
	return out
}

// monochromatic moves saturation by 20 and value by 10 toward the middle of
// their range. The comparisons are strict, so 50 moves up.
func monochromatic(c Color) Color {
	if c.Saturation > 50 {
		c.Saturation = math.Max(0, c.Saturation-20)
	} else {
		c.Saturation = math.Min(100, c.Saturation+20)
	}
	if c.Value > 50 {
		c.Value = math.Max(0, c.Value-10)
	} else {
		c.Value = math.Min(100, c.Value+10)
	}
	return c
}
