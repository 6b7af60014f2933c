package benchmarks

import colorwheel "github.com/euforicio/colorwheel-go"

// BaseGrid returns a deterministic spread of base colors covering every hue
// sector and both sides of the monochromatic thresholds.
func BaseGrid() []colorwheel.Color {
	var out []colorwheel.Color
	for h := 0.0; h < 360; h += 15 {
		for _, sv := range [...]float64{10, 50, 75, 100} {
			out = append(out, colorwheel.HSV(h, sv, 100-sv/2))
		}
	}
	return out
}

// HexGrid returns BaseGrid rendered as hex strings.
func HexGrid() []string {
	bases := BaseGrid()
	out := make([]string, len(bases))
	for i, c := range bases {
		out[i] = c.Hex()
	}
	return out
}
