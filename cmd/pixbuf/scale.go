package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixbuf/dyn"
	"github.com/gogpu/pixbuf/scale"
)

func newScaleCmd() *cobra.Command {
	var (
		width, height int
		filterName    string
	)

	cmd := &cobra.Command{
		Use:   "scale [input] [output]",
		Short: "Resize an image",
		Long: "Resize an image to --width x --height. When only one of them is given the\n" +
			"other follows from the aspect ratio. Filters: nearest, box, bilinear, hamming,\n" +
			"catmullrom, mitchell and lanczos3.",
		Args: imageArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := scale.ParseFilter(filterName)
			if err != nil {
				return newExitCodeError(err, ExitCodeInvalidArguments)
			}
			if width < 0 || height < 0 || (width == 0 && height == 0) {
				return newExitCodeError(errors.New("--width or --height must be positive"), ExitCodeInvalidArguments)
			}
			return transform(cmd, args, func(img *dyn.Image) (*dyn.Image, error) {
				return img.Scale(width, height, f)
			})
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "Target width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "Target height in pixels")
	cmd.Flags().StringVar(&filterName, "filter", scale.FilterLanczos3.String(), "Resampling filter")
	return cmd
}
