// Package cli wires the colorwheel commands together.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/euforicio/colorwheel-go/internal/config"
	"github.com/euforicio/colorwheel-go/internal/logger"
	"github.com/euforicio/colorwheel-go/internal/prompt"
	"github.com/euforicio/colorwheel-go/internal/render"
)

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd(newApp(os.Stdin, os.Stdout, os.Stderr))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the resolved flags and settings shared by every command.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	output     string
	debug      bool
	noColor    bool

	cfg         config.Config
	restoreLog  func()
	newPrompter func(io.Reader, io.Writer) prompt.Prompter
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{in: in, out: out, errOut: errOut, newPrompter: prompt.New}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colorwheel",
		Short: "Convert HSV and hex colors and compute color harmonies",
		Long: "colorwheel converts colors between HSV and RGB hex and derives the\n" +
			"complementary, monochromatic, analogous, split-complementary, triadic\n" +
			"and tetradic harmonies of a base color. Run without a command for an\n" +
			"interactive session.",
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) { a.teardown() },
		RunE:              a.runInteractive,
	}
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/colorwheel/config.yaml)")
	pf.StringVarP(&a.output, "output", "o", "", "output format: text, json or swatch")
	pf.BoolVar(&a.debug, "debug", false, "log debug details to stderr")
	pf.BoolVar(&a.noColor, "no-color", false, "disable ANSI colors in swatch output")

	cmd.AddCommand(
		interactiveCmd(a),
		harmonyCmd(a),
		hexCmd(a),
		hsvCmd(a),
		kindsCmd(a),
		versionCmd(a),
	)
	return cmd
}

func (a *app) setup(_ *cobra.Command, _ []string) error {
	a.restoreLog = logger.Setup(logger.Config{Writer: a.errOut, Debug: a.debug})

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output = a.output
	}
	if a.noColor {
		cfg.Color = config.ColorNever
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	logger.L().Debug("config.loaded", "path", cfg.Path, "output", cfg.Output, "color", cfg.Color, "kind", cfg.Kind)
	return nil
}

func (a *app) teardown() {
	if a.restoreLog != nil {
		a.restoreLog()
		a.restoreLog = nil
	}
}

func (a *app) renderer() (*render.Renderer, error) {
	return render.New(a.out, a.cfg.Output, a.cfg.Color)
}
