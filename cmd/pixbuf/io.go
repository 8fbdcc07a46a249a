package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/dyn"
	"github.com/gogpu/pixbuf/imageio"
	"github.com/gogpu/pixbuf/scale"
)

const stdFilename = "-"

// imageArgs requires exactly n positional arguments.
func imageArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return newExitCodeError(err, ExitCodeInvalidArguments)
		}
		return nil
	}
}

func loadImage(cmd *cobra.Command, path string) (*dyn.Image, error) {
	var (
		img *dyn.Image
		err error
	)
	if path == stdFilename {
		img, err = dyn.Decode(cmd.InOrStdin())
	} else {
		img, err = dyn.Load(path)
	}
	if err != nil {
		return nil, newExitCodeError(fmt.Errorf("could not read input %s: %w", path, err), ExitCodeInvalidInput)
	}
	return img, nil
}

func saveImage(cmd *cobra.Command, img *dyn.Image, path string) error {
	var err error
	if path == stdFilename {
		err = img.Encode(cmd.OutOrStdout(), imageio.PNG)
	} else {
		err = img.Save(path)
	}
	if err != nil {
		return newExitCodeError(fmt.Errorf("could not write output %s: %w", path, err), ExitCodeInvalidOutput)
	}
	return nil
}

// preconditions are the operation errors reported as ExitCodeUnsupported.
var preconditions = []error{
	pixbuf.ErrOutOfBounds,
	pixbuf.ErrNotSquare,
	pixbuf.ErrSizeMismatch,
	pixbuf.ErrUnsupportedBlend,
	pixbuf.ErrEmptyImage,
	scale.ErrInvalidSize,
}

// transform loads args[0], applies op and writes the result to args[1].
// Errors from op that carry no exit code exit with ExitCodeUnsupported when
// they are a failed precondition and ExitCodeUnknownError otherwise.
func transform(cmd *cobra.Command, args []string, op func(*dyn.Image) (*dyn.Image, error)) error {
	img, err := loadImage(cmd, args[0])
	if err != nil {
		return err
	}
	out, err := op(img)
	if err != nil {
		exitCodeError := &ExitCodeError{}
		if errors.As(err, &exitCodeError) {
			return err
		}
		for _, target := range preconditions {
			if errors.Is(err, target) {
				return newExitCodeError(err, ExitCodeUnsupported)
			}
		}
		return newExitCodeError(err, ExitCodeUnknownError)
	}
	return saveImage(cmd, out, args[1])
}

// parseInts parses n comma separated integers, as in "10,20".
func parseInts(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, newExitCodeError(fmt.Errorf("expected %d comma separated integers, got %q", n, s), ExitCodeInvalidArguments)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, newExitCodeError(fmt.Errorf("invalid integer %q in %q", p, s), ExitCodeInvalidArguments)
		}
		out[i] = v
	}
	return out, nil
}
