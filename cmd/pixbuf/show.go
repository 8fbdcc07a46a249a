package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixbuf/scale"
	"github.com/gogpu/pixbuf/term"
)

func newShowCmd() *cobra.Command {
	var (
		protocolName  string
		width, height int
		colors        int
	)

	cmd := &cobra.Command{
		Use:   "show [input]",
		Short: "Display an image in the terminal",
		Long: "Display an image in the terminal with the kitty, iterm2, sixel or bloc protocol.\n" +
			"auto picks one from the environment. Bloc output is fitted to the terminal\n" +
			"unless --width or --height is given.",
		Args: imageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proto, err := term.ParseProtocol(protocolName)
			if err != nil {
				return newExitCodeError(err, ExitCodeInvalidArguments)
			}
			img, err := loadImage(cmd, args[0])
			if err != nil {
				return err
			}
			opts := term.Options{
				Protocol:  proto,
				MaxWidth:  width,
				MaxHeight: height,
				Filter:    scale.FilterCatmullRom,
				Colors:    colors,
			}

			out := cmd.OutOrStdout()
			if f, ok := out.(*os.File); ok {
				err = img.WriteTerminal(f, opts)
			} else {
				err = img.Write(out, opts)
			}
			if err != nil {
				return newExitCodeError(fmt.Errorf("could not display %s: %w", args[0], err), ExitCodeTerminal)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&protocolName, "protocol", term.Auto.String(), "Protocol: auto, kitty, iterm2, sixel or bloc")
	cmd.Flags().IntVar(&width, "width", 0, "Maximum width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "Maximum height in pixels")
	cmd.Flags().IntVar(&colors, "colors", term.DefaultColors, "Sixel palette size")
	return cmd
}
