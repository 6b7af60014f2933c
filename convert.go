package colorwheel

import (
	"math"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// WrapHue normalizes a hue in degrees into [0,360).
func WrapHue(h float64) float64 { return wrap(h, 0) }

func wrap(h, offset float64) float64 {
	w := math.Mod(h+offset+360, 360)
	if w < 0 {
		w += 360
	}
	// -tiny + 360 rounds to exactly 360
	if w >= 360 {
		w = 0
	}
	return w
}

func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	return math.Max(lo, math.Min(hi, x))
}

// AdjustHue returns c with its hue rotated by offset degrees and wrapped into [0,360).
func (c Color) AdjustHue(offset float64) Color {
	c.Hue = wrap(c.Hue, offset)
	return c
}

// Hex renders c as "#RRGGBB" with uppercase digits.
func (c Color) Hex() string { return HSVToHex(c.Hue, c.Saturation, c.Value) }

// HSVToHex converts a hue in degrees and saturation/value percentages to an
// uppercase "#RRGGBB" string. The hue is wrapped and saturation/value are
// clamped to [0,100] first, so every finite input yields a valid string.
func HSVToHex(h, s, v float64) string {
	if math.IsInf(h, 0) || math.IsNaN(h) {
		h = 0
	}
	h = WrapHue(h)
	sn := clamp(s, 0, 100) / 100
	vn := clamp(v, 0, 100) / 100

	c := vn * sn
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := vn - c

	var r, g, b float64
	switch {
	case h >= 0 && h < 60:
		r, g, b = c, x, 0
	case h >= 60 && h < 120:
		r, g, b = x, c, 0
	case h >= 120 && h < 180:
		r, g, b = 0, c, x
	case h >= 180 && h < 240:
		r, g, b = 0, x, c
	case h >= 240 && h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	var sb strings.Builder
	sb.Grow(7)
	sb.WriteByte('#')
	writeHexComponent(&sb, r+m)
	writeHexComponent(&sb, g+m)
	writeHexComponent(&sb, b+m)
	return sb.String()
}

// writeHexComponent scales a [0,1] channel to 0-255, rounding half up, and
// writes it as two uppercase hex digits.
func writeHexComponent(sb *strings.Builder, comp float64) {
	n := int(math.Floor(comp*255 + 0.5))
	if n < 0 {
		n = 0
	} else if n > 255 {
		n = 255
	}
	sb.WriteByte(hexDigits[n>>4])
	sb.WriteByte(hexDigits[n&0x0F])
}

// HexToHSV parses a 6-digit RGB hex string, with or without a leading '#',
// into an HSV Color. Malformed input yields an error matching ErrInvalidFormat.
func HexToHSV(hex string) (Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return Color{}, &FormatError{Input: hex, Reason: "expected 6 hex digits"}
	}
	var rgb [3]float64
	for i := range rgb {
		hi, ok1 := hexNibble(digits[2*i])
		lo, ok2 := hexNibble(digits[2*i+1])
		if !ok1 || !ok2 {
			return Color{}, &FormatError{Input: hex, Reason: "non-hex digit"}
		}
		rgb[i] = float64(hi<<4|lo) / 255
	}
	return rgbToHSV(rgb[0], rgb[1], rgb[2]), nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// rgbToHSV expects channels normalized to [0,1].
func rgbToHSV(r, g, b float64) Color {
	cMax := math.Max(r, math.Max(g, b))
	cMin := math.Min(r, math.Min(g, b))
	chroma := cMax - cMin

	var h float64
	if chroma > 0 {
		switch cMax {
		case r:
			h = 60*((g-b)/chroma) + 360
		case g:
			h = 60*((b-r)/chroma) + 120
		default:
			h = 60*((r-g)/chroma) + 240
		}
		h = WrapHue(h)
	}
	var s float64
	if cMax > 0 {
		s = chroma / cMax * 100
	}
	return Color{Hue: h, Saturation: s, Value: cMax * 100}
}
