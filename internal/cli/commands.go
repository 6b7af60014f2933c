package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	colorwheel "github.com/euforicio/colorwheel-go"
	"github.com/euforicio/colorwheel-go/internal/buildinfo"
	"github.com/euforicio/colorwheel-go/internal/logger"
)

func harmonyCmd(a *app) *cobra.Command {
	var hsv, hex, kind string

	c := &cobra.Command{
		Use:   "harmony",
		Short: "Compute a harmony of a base color",
		Example: "  colorwheel harmony --hex '#992e99' --kind tri\n" +
			"  colorwheel harmony --hsv 350,100,100 --kind c -o json",
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			var base colorwheel.Color
			var err error
			if hex != "" {
				base, err = colorwheel.HexToHSV(hex)
			} else {
				base, err = parseHSV(splitHSV(hsv))
			}
			if err != nil {
				return err
			}

			sel := kind
			if sel == "" {
				sel = a.cfg.Kind
			}
			if sel == "" {
				return errors.New("no harmony given: use --kind or set kind in the config file")
			}
			k, err := colorwheel.ParseHarmonyKind(sel)
			if err != nil {
				return err
			}
			logger.L().Debug("harmony.selected", "kind", k, "base", base.Hex())

			pal, err := colorwheel.NewPalette(base, k)
			if err != nil {
				return err
			}
			r, err := a.renderer()
			if err != nil {
				return err
			}
			return r.Palette(pal)
		},
	}

	c.Flags().StringVar(&hsv, "hsv", "", "base color as H,S,V")
	c.Flags().StringVar(&hex, "hex", "", "base color as RRGGBB, '#' optional")
	c.Flags().StringVarP(&kind, "kind", "k", "", "harmony: c, m, a, sp, tri, tet (or its name)")
	c.MarkFlagsMutuallyExclusive("hsv", "hex")
	c.MarkFlagsOneRequired("hsv", "hex")
	return c
}

// splitHSV accepts "h,s,v", "h s v" or any mix of the two separators.
func splitHSV(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
}

func hexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "hex H S V",
		Short:   "Convert HSV components to an RGB hex color",
		Example: "  colorwheel hex 120 100 100\n  colorwheel hex -- -30 50 50",
		Args:    cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := parseHSV(args)
			if err != nil {
				return err
			}
			r, err := a.renderer()
			if err != nil {
				return err
			}
			return r.Color(c.AdjustHue(0))
		},
	}
}

func hsvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "hsv RRGGBB",
		Short:   "Convert an RGB hex color to HSV components",
		Example: "  colorwheel hsv '#992e99'",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := colorwheel.HexToHSV(args[0])
			if err != nil {
				return err
			}
			r, err := a.renderer()
			if err != nil {
				return err
			}
			return r.Color(c)
		},
	}
}

func kindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the harmony selectors",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, k := range colorwheel.Kinds() {
				if _, err := fmt.Fprintf(a.out, "%-4s %-20s %d\n", k.Selector(), k.Name(), k.Len()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(a.out, buildinfo.String())
			return err
		},
	}
}
