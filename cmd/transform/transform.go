package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/willbeason/mandelbrot/pkg/imageio"
	"github.com/willbeason/mandelbrot/pkg/warp"
)

const (
	exitFailure     = 1
	exitInputError  = 2
	exitOutputError = 3
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform <input> <output>",
		Short: "Rotate and scale an image through the complex plane",
		Long: `Reads each pixel of the input image as a point of the complex plane centered
on the image, multiplies it by 1+0.1i, and writes the moved pixels as a PNG
sized to fit them.`,
		Args: cobra.ExactArgs(2),
		RunE: runCmd,
	}

	cmd.Flags().BoolP("verbose", "v", false, "log progress to stderr")

	return cmd
}

func runCmd(cmd *cobra.Command, args []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	input, output := args[0], args[1]

	img, err := imageio.Load(input)
	if err != nil {
		return err
	}
	logger.Printf("loaded %s: %dx%d, %d pixels", input, img.Bounds.Width, img.Bounds.Height, len(img.Pixels))

	warped, cb := warp.Warper{}.Warp(img)
	logger.Printf("moved pixels span %g%+gi to %g%+gi", cb.TopLeft.Re, cb.TopLeft.Im, cb.BottomRight.Re, cb.BottomRight.Im)

	if err := imageio.Write(output, warped); err != nil {
		return err
	}
	logger.Printf("wrote %s: %dx%d", output, warped.Bounds.Width, warped.Bounds.Height)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), "done")
	return err
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, "", log.Ldate|log.Ltime|log.Lshortfile)
}

func exitCode(err error) int {
	switch {
	case imageio.IsInputError(err):
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
