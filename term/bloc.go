package term

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

// WriteBloc draws src with upper half blocks: each character cell shows the
// pixel of an even row in the foreground and the pixel below it in the
// background. The bottom half of an odd last row is black. Alpha is
// discarded.
func WriteBloc[P pixel.Pixel](w io.Writer, src pixbuf.View[P]) error {
	bw := bufio.NewWriter(w)
	width, height := src.Width(), src.Height()
	for y := 0; y < height; y += 2 {
		for x := range width {
			fg := pixel.ToRGB(src.PixelUnchecked(x, y))
			var bg pixel.RGB
			if y+1 < height {
				bg = pixel.ToRGB(src.PixelUnchecked(x, y+1))
			}
			fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%d;48;2;%d;%d;%dm▀",
				fg[0], fg[1], fg[2], bg[0], bg[1], bg[2])
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("\x1b[0m")
	return bw.Flush()
}
