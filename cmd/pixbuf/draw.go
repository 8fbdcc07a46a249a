package main

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixbuf/drawing"
	"github.com/gogpu/pixbuf/dyn"
	"github.com/gogpu/pixbuf/pixel"
)

func newOverlayCmd() *cobra.Command {
	var (
		at    string
		blend bool
	)

	cmd := &cobra.Command{
		Use:   "overlay [base] [top] [output]",
		Short: "Place one image on top of another",
		Long: "Place [top] on [base] with its top-left corner at --at. Without --blend, top\n" +
			"pixels are copied when their alpha is at least half; with --blend they are\n" +
			"alpha composited.",
		Args: imageArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseInts(at, 2)
			if err != nil {
				return err
			}
			top, err := loadImage(cmd, args[1])
			if err != nil {
				return err
			}
			return transform(cmd, []string{args[0], args[2]}, func(base *dyn.Image) (*dyn.Image, error) {
				return base, base.Overlay(top, pos[0], pos[1], blend)
			})
		},
	}
	cmd.Flags().StringVar(&at, "at", "0,0", "Position of the top image as x,y")
	cmd.Flags().BoolVar(&blend, "blend", false, "Alpha composite instead of copying")
	return cmd
}

func newDrawCmd() *cobra.Command {
	var (
		text, colorName, at, fontPath string
		size                          float64
		box, circle, line             string
		fill                          bool
	)

	cmd := &cobra.Command{
		Use:   "draw [input] [output]",
		Short: "Draw shapes and text on an image",
		Long: "Draw shapes and text on an image in --color. Shapes are drawn before text:\n" +
			"--box x,y,w,h, --circle x,y,r and --line x0,y0,x1,y1. --fill fills boxes and\n" +
			"circles. --text is drawn with its top-left corner at --at.",
		Args: imageArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := drawing.ParseColor(colorName)
			if err != nil {
				return newExitCodeError(err, ExitCodeInvalidArguments)
			}
			opts := drawing.TextOptions{Size: size}
			if fontPath != "" {
				data, err := os.ReadFile(fontPath) // #nosec G304 -- user-supplied font file
				if err != nil {
					return newExitCodeError(fmt.Errorf("could not read font %s: %w", fontPath, err), ExitCodeInvalidInput)
				}
				if opts.Face, err = drawing.ParseFace(data); err != nil {
					return newExitCodeError(err, ExitCodeInvalidInput)
				}
			}

			var ops []func(*dyn.Image)
			if box != "" {
				v, err := parseInts(box, 4)
				if err != nil {
					return err
				}
				ops = append(ops, func(img *dyn.Image) {
					if fill {
						img.FilledBox(v[0], v[1], v[2], v[3], c)
					} else {
						img.Box(v[0], v[1], v[2], v[3], c)
					}
				})
			}
			if circle != "" {
				v, err := parseInts(circle, 3)
				if err != nil {
					return err
				}
				ops = append(ops, func(img *dyn.Image) {
					if fill {
						img.Circle(image.Pt(v[0], v[1]), v[2], c)
					} else {
						img.BorderCircle(image.Pt(v[0], v[1]), v[2], c)
					}
				})
			}
			if line != "" {
				v, err := parseInts(line, 4)
				if err != nil {
					return err
				}
				ops = append(ops, func(img *dyn.Image) {
					img.Line(image.Pt(v[0], v[1]), image.Pt(v[2], v[3]), c)
				})
			}
			if text != "" {
				pos, err := parseInts(at, 2)
				if err != nil {
					return err
				}
				ops = append(ops, func(img *dyn.Image) {
					img.Text(pos[0], pos[1], text, pixel.RGB{c[0], c[1], c[2]}, opts)
				})
			}
			if len(ops) == 0 {
				return newExitCodeError(errors.New("nothing to draw: give --text, --box, --circle or --line"), ExitCodeInvalidArguments)
			}

			return transform(cmd, args, func(img *dyn.Image) (*dyn.Image, error) {
				for _, op := range ops {
					op(img)
				}
				return img, nil
			})
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "Text to draw")
	cmd.Flags().Float64Var(&size, "size", drawing.DefaultTextSize, "Font size in pixels")
	cmd.Flags().StringVar(&fontPath, "font", "", "TrueType or OpenType font file (default Go Regular)")
	cmd.Flags().StringVar(&colorName, "color", "white", "Color name or hex value")
	cmd.Flags().StringVar(&at, "at", "0,0", "Text position as x,y")
	cmd.Flags().StringVar(&box, "box", "", "Rectangle as x,y,w,h")
	cmd.Flags().StringVar(&circle, "circle", "", "Circle as x,y,r")
	cmd.Flags().StringVar(&line, "line", "", "Line as x0,y0,x1,y1")
	cmd.Flags().BoolVar(&fill, "fill", false, "Fill boxes and circles")
	return cmd
}
