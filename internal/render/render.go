// Package render writes colors and harmonies as plain text, JSON, or
// terminal color swatches.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	colorwheel "github.com/euforicio/colorwheel-go"
	"github.com/euforicio/colorwheel-go/internal/config"
)

// Entry is the JSON shape of a single color.
type Entry struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
	Hex        string  `json:"hex"`
}

// PaletteEntry is the JSON shape of a harmony.
type PaletteEntry struct {
	Base   Entry                  `json:"base"`
	Kind   colorwheel.HarmonyKind `json:"kind"`
	Colors []Entry                `json:"colors"`
}

func entry(c colorwheel.Color) Entry {
	return Entry{Hue: c.Hue, Saturation: c.Saturation, Value: c.Value, Hex: c.Hex()}
}

// Renderer writes to a single destination in one output format.
type Renderer struct {
	w      io.Writer
	format string
	lg     *lipgloss.Renderer
}

// New returns a Renderer for format (config.OutputText, OutputJSON or
// OutputSwatch). colorMode decides whether swatches carry ANSI colors:
// config.ColorAuto detects a color terminal on w.
func New(w io.Writer, format, colorMode string) (*Renderer, error) {
	switch format {
	case config.OutputText, config.OutputJSON, config.OutputSwatch:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	lg := lipgloss.NewRenderer(w)
	switch colorMode {
	case config.ColorAlways:
		lg.SetColorProfile(termenv.TrueColor)
	case config.ColorNever:
		lg.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{w: w, format: format, lg: lg}, nil
}

// FormatFloat prints a component with up to six significant digits, the way
// an iostream prints a double by default.
func FormatFloat(f float64) string { return strconv.FormatFloat(f, 'g', 6, 64) }

// FormatHSV renders c as "(h, s, v)".
func FormatHSV(c colorwheel.Color) string {
	return "(" + FormatFloat(c.Hue) + ", " + FormatFloat(c.Saturation) + ", " + FormatFloat(c.Value) + ")"
}

// Color writes a single color.
func (r *Renderer) Color(c colorwheel.Color) error {
	switch r.format {
	case config.OutputJSON:
		return r.json(entry(c))
	case config.OutputSwatch:
		_, err := fmt.Fprintln(r.w, r.swatchLine(c))
		return err
	default:
		_, err := fmt.Fprintf(r.w, "HSV: %s\nHex: %s\n", FormatHSV(c), c.Hex())
		return err
	}
}

// Palette writes every derived color of p, in order. JSON output also carries
// the base color and kind.
func (r *Renderer) Palette(p colorwheel.Palette) error {
	switch r.format {
	case config.OutputJSON:
		out := PaletteEntry{Base: entry(p.Base), Kind: p.Kind, Colors: make([]Entry, len(p.Colors))}
		for i, c := range p.Colors {
			out.Colors[i] = entry(c)
		}
		return r.json(out)
	case config.OutputSwatch:
		title := r.lg.NewStyle().Bold(true).Render(p.Kind.Name())
		if _, err := fmt.Fprintf(r.w, "%s of %s\n", title, r.swatchLine(p.Base)); err != nil {
			return err
		}
		for _, c := range p.Colors {
			if _, err := fmt.Fprintln(r.w, r.swatchLine(c)); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, c := range p.Colors {
			if _, err := fmt.Fprintf(r.w, "\nHSV: %s\nHex: %s\n", FormatHSV(c), c.Hex()); err != nil {
				return err
			}
		}
		return nil
	}
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) swatchLine(c colorwheel.Color) string {
	hex := c.Hex()
	block := r.lg.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(contrastText(hex))).
		Padding(0, 1).
		Render(hex)
	return block + "  HSV: " + FormatHSV(c)
}

// contrastText picks black or white text for a background, by CIE L*.
func contrastText(hex string) string {
	bg, err := colorful.Hex(hex)
	if err != nil {
		return "#FFFFFF"
	}
	if l, _, _ := bg.Lab(); l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}
