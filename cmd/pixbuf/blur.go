package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixbuf/dyn"
	"github.com/gogpu/pixbuf/filter"
)

func newBlurCmd() *cobra.Command {
	var (
		radius float64
		kind   string
	)

	cmd := &cobra.Command{
		Use:   "blur [input] [output]",
		Short: "Blur an image",
		Long: "Blur an image. --kind gaussian weights colors by alpha, box averages a square\n" +
			"window and fast is a separable Gaussian over each channel independently.",
		Args: imageArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var op func(*dyn.Image) (*dyn.Image, error)
			switch kind {
			case "gaussian":
				op = func(img *dyn.Image) (*dyn.Image, error) { return img.BlurGaussian(radius) }
			case "box":
				op = func(img *dyn.Image) (*dyn.Image, error) { return img.BlurBox(radius) }
			case "fast":
				op = func(img *dyn.Image) (*dyn.Image, error) { img.Blur(radius); return img, nil }
			default:
				return newExitCodeError(fmt.Errorf("unknown blur kind %q", kind), ExitCodeInvalidArguments)
			}
			return transform(cmd, args, op)
		},
	}
	cmd.Flags().Float64Var(&radius, "radius", 2, "Blur radius in pixels")
	cmd.Flags().StringVar(&kind, "kind", "gaussian", "Blur kind: gaussian, box or fast")
	return cmd
}

func newAdjustCmd() *cobra.Command {
	var (
		brightness, contrast, saturation, hue, opacity float64
		grayscale, sepia, invert                       bool
	)

	cmd := &cobra.Command{
		Use:   "adjust [input] [output]",
		Short: "Adjust the colors of an image",
		Long: "Adjust the colors of an image. Factors of 1 and a hue rotation of 0 leave the\n" +
			"image unchanged. Adjustments apply in the order of the flags listed in help.",
		Args: imageArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := filter.Brightness(float32(brightness)).
				Then(filter.Contrast(float32(contrast))).
				Then(filter.Saturation(float32(saturation))).
				Then(filter.HueRotate(hue)).
				Then(filter.Opacity(float32(opacity)))
			if grayscale {
				m = m.Then(filter.Grayscale())
			}
			if sepia {
				m = m.Then(filter.Sepia())
			}
			if invert {
				m = m.Then(filter.Invert())
			}
			return transform(cmd, args, func(img *dyn.Image) (*dyn.Image, error) {
				img.Adjust(m)
				return img, nil
			})
		},
	}
	cmd.Flags().Float64Var(&brightness, "brightness", 1, "Brightness factor")
	cmd.Flags().Float64Var(&contrast, "contrast", 1, "Contrast factor")
	cmd.Flags().Float64Var(&saturation, "saturation", 1, "Saturation factor")
	cmd.Flags().Float64Var(&hue, "hue", 0, "Hue rotation in degrees")
	cmd.Flags().Float64Var(&opacity, "opacity", 1, "Alpha factor")
	cmd.Flags().BoolVar(&grayscale, "grayscale", false, "Convert to gray")
	cmd.Flags().BoolVar(&sepia, "sepia", false, "Apply a sepia tone")
	cmd.Flags().BoolVar(&invert, "invert", false, "Invert colors")
	return cmd
}
