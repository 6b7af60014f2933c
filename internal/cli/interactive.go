package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	colorwheel "github.com/euforicio/colorwheel-go"
	"github.com/euforicio/colorwheel-go/internal/logger"
	"github.com/euforicio/colorwheel-go/internal/prompt"
)

const (
	modeHSV = "hsv"
	modeHex = "hex"

	questionMode = "\nDo you want to input the colour in HSV or RGB hex? (Enter 'hsv' or 'hex'):"
	questionHSV  = "Enter HSV values (H S V) - separate with space:"
	questionHex  = "Enter RGB hex colour (e.g. #992e99):"
	questionKind = "Choose a harmony:"

	msgInvalidMode = "Invalid input mode!"
	msgInvalidKind = "Invalid harmony choice!"
)

func interactiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Ask for a base color and a harmony, then print the result",
		Args:  cobra.NoArgs,
		RunE:  a.runInteractive,
	}
}

// shownError is an error whose message the session already printed.
type shownError struct{ err error }

func (e shownError) Error() string { return e.err.Error() }
func (e shownError) Unwrap() error { return e.err }

func (a *app) runInteractive(cmd *cobra.Command, _ []string) error {
	err := a.interactive()
	var shown shownError
	if errors.As(err, &shown) {
		cmd.Root().SilenceErrors = true
	}
	return err
}

// interactive runs one question-and-answer session. An unrecognized input
// mode or harmony choice ends the session with a message; there is no retry.
func (a *app) interactive() error {
	r, err := a.renderer()
	if err != nil {
		return err
	}
	tok := prompt.NewTokens(a.newPrompter(a.in, a.out), a.out)

	base, err := a.askBase(tok)
	if err != nil {
		return err
	}

	if err := writeMenu(a.out); err != nil {
		return err
	}
	choice, err := tok.Word(questionKind)
	if err != nil {
		return err
	}
	kind, err := colorwheel.ParseSelector(choice)
	if err != nil {
		fmt.Fprintln(a.out, msgInvalidKind)
		return shownError{err}
	}
	logger.L().Debug("harmony.selected", "kind", kind)

	pal, err := colorwheel.NewPalette(base, kind)
	if err != nil {
		return err
	}
	return r.Palette(pal)
}

func (a *app) askBase(tok *prompt.Tokens) (colorwheel.Color, error) {
	mode, err := tok.Word(questionMode)
	if err != nil {
		return colorwheel.Color{}, err
	}
	switch mode {
	case modeHSV:
		fields, err := tok.Fields(questionHSV, 3)
		if err != nil {
			return colorwheel.Color{}, err
		}
		return parseHSV(fields)
	case modeHex:
		hex, err := tok.Word(questionHex)
		if err != nil {
			return colorwheel.Color{}, err
		}
		c, err := colorwheel.HexToHSV(hex)
		if err != nil {
			return colorwheel.Color{}, err
		}
		logger.L().Debug("hex.decoded", "input", hex, "hue", c.Hue, "saturation", c.Saturation, "value", c.Value)
		return c, nil
	default:
		fmt.Fprintln(a.out, msgInvalidMode)
		return colorwheel.Color{}, shownError{&colorwheel.SelectionError{Field: "input mode", Input: mode}}
	}
}

func writeMenu(w io.Writer) error {
	for i, k := range colorwheel.Kinds() {
		if _, err := fmt.Fprintf(w, "%d - %s - input '%s'\n", i+1, k.Name(), k.Selector()); err != nil {
			return err
		}
	}
	return nil
}

// parseHSV reads hue, saturation and value from three decimal fields.
func parseHSV(fields []string) (colorwheel.Color, error) {
	if len(fields) != 3 {
		return colorwheel.Color{}, fmt.Errorf("expected 3 HSV components, got %d", len(fields))
	}
	var v [3]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return colorwheel.Color{}, fmt.Errorf("invalid HSV component %q", f)
		}
		v[i] = x
	}
	return colorwheel.HSV(v[0], v[1], v[2]), nil
}
