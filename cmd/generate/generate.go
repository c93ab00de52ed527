package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/mandelbrot/pkg/config"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/imageio"
	"github.com/willbeason/mandelbrot/pkg/render"
)

const (
	exitFailure     = 1
	exitInputError  = 2
	exitOutputError = 3
)

var errConfig = errors.New("invalid configuration")

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <output>",
		Short: "Render the Mandelbrot set to a PNG",
		Long: `Colors each pixel by the number of iterations of z² + c, starting from zero,
before z leaves the unit disk. Settings are read from --config when given and
overridden by any flags set explicitly.`,
		Args: cobra.ExactArgs(1),
		RunE: runCmd,
	}

	flags := cmd.Flags()
	flags.String("config", "", "YAML file with generator settings")
	flags.Int("width", 0, "image width in pixels")
	flags.Int("height", 0, "image height in pixels")
	flags.String("palette", "", fmt.Sprintf("one of %v", escape.PaletteNames))
	flags.Float64("re", 0, "real part of the viewport center")
	flags.Float64("im", 0, "imaginary part of the viewport center")
	flags.Float64("radius", 0, "distance from the viewport center to its edges")
	flags.Int("workers", 0, "goroutines computing rows")
	flags.BoolP("verbose", "v", false, "log progress to stderr")

	return cmd
}

func runCmd(cmd *cobra.Command, args []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	palette, err := escape.ParsePalette(cfg.Image.Palette)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	bounds := cfg.Bounds()
	cb := cfg.ComplexBounds()
	logger.Printf("rendering %dx%d over %g%+gi to %g%+gi with %d workers",
		bounds.Width, bounds.Height,
		cb.TopLeft.Re, cb.TopLeft.Im, cb.BottomRight.Re, cb.BottomRight.Im,
		cfg.Processing.Workers)

	start := time.Now()
	assembler := render.Assembler{Workers: cfg.Processing.Workers, Palette: palette}
	img, err := assembler.Assemble(cmd.Context(), bounds, cb)
	if err != nil {
		return err
	}
	logger.Printf("rendered in %v", time.Since(start))

	if err := imageio.Write(args[0], img); err != nil {
		return err
	}
	logger.Printf("wrote %s", args[0])

	_, err = fmt.Fprintln(cmd.OutOrStdout(), "done")
	return err
}

// loadConfig reads the config file, if any, and applies flags set on the
// command line over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	var err error
	cfg := config.DefaultConfig()
	if path, _ := flags.GetString("config"); path != "" {
		// LoadConfig falls back to defaults for missing files; a path given
		// explicitly must exist.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %w", errConfig, err)
		}

		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errConfig, err)
		}
	}

	if flags.Changed("width") {
		cfg.Image.Width, err = flags.GetInt("width")
	}
	if err == nil && flags.Changed("height") {
		cfg.Image.Height, err = flags.GetInt("height")
	}
	if err == nil && flags.Changed("palette") {
		cfg.Image.Palette, err = flags.GetString("palette")
	}
	if err == nil && flags.Changed("re") {
		cfg.Viewport.Re, err = flags.GetFloat64("re")
	}
	if err == nil && flags.Changed("im") {
		cfg.Viewport.Im, err = flags.GetFloat64("im")
	}
	if err == nil && flags.Changed("radius") {
		cfg.Viewport.Radius, err = flags.GetFloat64("radius")
	}
	if err == nil && flags.Changed("workers") {
		cfg.Processing.Workers, err = flags.GetInt("workers")
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}

	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, "", log.Ldate|log.Ltime|log.Lshortfile)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, errConfig):
		return exitInputError
	case imageio.IsOutputError(err):
		return exitOutputError
	default:
		return exitFailure
	}
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(exitCode(err))
	}
}
