package term

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/imageio"
	"github.com/gogpu/pixbuf/pixel"
)

// WriteIterm2 writes src as an inline PNG with the iTerm2 image protocol,
// followed by a newline.
func WriteIterm2[P pixel.Pixel](w io.Writer, src pixbuf.View[P]) error {
	data, err := imageio.EncodePNG(src)
	if err != nil {
		return fmt.Errorf("term: iterm2: %w", err)
	}
	_, err = fmt.Fprintf(w, "\x1b]1337;File=inline=1;preserveAspectRatio=1;size=%d:%s\a\n",
		len(data), base64.StdEncoding.EncodeToString(data))
	return err
}
