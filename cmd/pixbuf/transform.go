package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixbuf/dyn"
)

func newFlipCmd() *cobra.Command {
	var vertical, horizontal bool

	cmd := &cobra.Command{
		Use:   "flip [input] [output]",
		Short: "Mirror an image",
		Long:  "Mirror an image top to bottom with --vertical, left to right with --horizontal, or both.",
		Args:  imageArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !vertical && !horizontal {
				return newExitCodeError(errors.New("one of --vertical or --horizontal is required"), ExitCodeInvalidArguments)
			}
			return transform(cmd, args, func(img *dyn.Image) (*dyn.Image, error) {
				if vertical {
					img.FlipV()
				}
				if horizontal {
					img.FlipH()
				}
				return img, nil
			})
		},
	}
	cmd.Flags().BoolVar(&vertical, "vertical", false, "Flip top to bottom")
	cmd.Flags().BoolVar(&horizontal, "horizontal", false, "Flip left to right")
	return cmd
}

func newRotateCmd() *cobra.Command {
	var degrees int

	cmd := &cobra.Command{
		Use:   "rotate [input] [output]",
		Short: "Rotate an image clockwise",
		Long:  "Rotate an image clockwise by 90, 180 or 270 degrees. Quarter turns need a square image.",
		Args:  imageArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var op func(*dyn.Image) error
			switch degrees {
			case 90:
				op = (*dyn.Image).Rot90
			case 180:
				op = func(img *dyn.Image) error { img.Rot180(); return nil }
			case 270:
				op = (*dyn.Image).Rot270
			default:
				return newExitCodeError(fmt.Errorf("--degrees must be 90, 180 or 270, got %d", degrees), ExitCodeInvalidArguments)
			}
			return transform(cmd, args, func(img *dyn.Image) (*dyn.Image, error) {
				return img, op(img)
			})
		},
	}
	cmd.Flags().IntVar(&degrees, "degrees", 90, "Angle: 90, 180 or 270")
	return cmd
}

func newTransposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose [input] [output]",
		Short: "Swap the rows and columns of a square image",
		Args:  imageArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transform(cmd, args, func(img *dyn.Image) (*dyn.Image, error) {
				return img, img.Transpose()
			})
		},
	}
}

func newConvertCmd() *cobra.Command {
	var channels int

	cmd := &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Change the pixel layout of an image",
		Long:  "Change the pixel layout of an image: 1 is luma, 2 luma with alpha, 3 RGB and 4 RGBA.",
		Args:  imageArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := dyn.FormatFor(channels)
			if err != nil {
				return newExitCodeError(err, ExitCodeInvalidArguments)
			}
			return transform(cmd, args, func(img *dyn.Image) (*dyn.Image, error) {
				return img.Convert(format)
			})
		},
	}
	cmd.Flags().IntVar(&channels, "channels", 4, "Number of channels, 1 to 4")
	return cmd
}
