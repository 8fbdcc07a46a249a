package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixbuf"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "pixbuf",
		Short: "Transform, filter and display images",
		Long: "pixbuf reads an image, applies one operation and writes the result.\n" +
			"[input] can be a file path or - for stdin. [output] can be a file path, whose\n" +
			"extension selects the format, or - for PNG on stdout.",
		Version:      pixbuf.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				pixbuf.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			} else {
				pixbuf.SetLogger(nil)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		newFlipCmd(),
		newRotateCmd(),
		newTransposeCmd(),
		newConvertCmd(),
		newScaleCmd(),
		newBlurCmd(),
		newAdjustCmd(),
		newOverlayCmd(),
		newDrawCmd(),
		newShowCmd(),
	)
	return rootCmd
}
