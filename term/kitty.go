package term

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

// kittyChunk is the largest base64 payload the kitty protocol accepts in a
// single escape sequence.
const kittyChunk = 4096

// kittyData returns the raw pixel data sent to kitty and its format code:
// 32 for RGBA, 24 for RGB. Luma layouts are sent as RGB.
func kittyData[P pixel.Pixel](src pixbuf.View[P]) ([]byte, int) {
	switch pixel.Channels[P]() {
	case 4:
		return src.Bytes(), 32
	case 3:
		return src.Bytes(), 24
	default:
		return pixbuf.Convert[pixel.RGB](src).Bytes(), 24
	}
}

// WriteKitty writes src with the kitty graphics protocol. The payload is
// split into chunks; every chunk but the last carries m=1.
func WriteKitty[P pixel.Pixel](w io.Writer, src pixbuf.View[P]) error {
	data, format := kittyData(src)
	payload := base64.StdEncoding.EncodeToString(data)

	bw := bufio.NewWriter(w)
	first := true
	for len(payload) > 0 || first {
		n := min(len(payload), kittyChunk)
		chunk := payload[:n]
		payload = payload[n:]
		more := 0
		if len(payload) > 0 {
			more = 1
		}
		if first {
			fmt.Fprintf(bw, "\x1b_Gf=%d,a=T,t=d,s=%d,v=%d,m=%d;%s\x1b\\",
				format, src.Width(), src.Height(), more, chunk)
			first = false
		} else {
			fmt.Fprintf(bw, "\x1b_Gm=%d;%s\x1b\\", more, chunk)
		}
	}
	return bw.Flush()
}
