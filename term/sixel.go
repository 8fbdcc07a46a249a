package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

// DefaultColors is the palette size used for sixel output when none is
// given.
const DefaultColors = 255

// maxColors is the number of color registers sixel terminals commonly
// provide.
const maxColors = 256

// Quantize reduces src to an indexed image with a median cut palette of at
// most colors entries, 1 to 256. Alpha is discarded.
func Quantize[P pixel.Pixel](src pixbuf.View[P], colors int) *pixbuf.Indexed[pixel.RGB] {
	colors = max(1, min(colors, maxColors))
	rgb := make([]pixel.RGB, 0, src.Width()*src.Height())
	for p := range src.Chunked() {
		rgb = append(rgb, pixel.ToRGB(p))
	}
	pal := MedianCut(rgb, colors)

	index := pixbuf.Alloc[pixel.Y](src.Width(), src.Height())
	for i, c := range rgb {
		index.Bytes()[i] = byte(pal.Index(c)) // #nosec G115 -- at most 256 colors
	}
	ix, err := pixbuf.NewIndexed(index, pal.colors)
	if err != nil {
		panic(err) // every index comes from the palette
	}
	return ix
}

// WriteSixel writes src as DEC sixel graphics with a palette of at most
// colors entries. Alpha is discarded.
func WriteSixel[P pixel.Pixel](w io.Writer, src pixbuf.View[P], colors int) error {
	if colors <= 0 {
		colors = DefaultColors
	}
	colors = min(colors, maxColors)

	width, height := src.Width(), src.Height()
	ix := Quantize(src, colors)
	pal, idx := ix.Palette(), ix.Indices()
	pixbuf.Logger().Debug("term: sixel palette", "colors", len(pal), "limit", colors)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\x1bPq\"1;1;%d;%d", width, height)
	for i, c := range pal {
		fmt.Fprintf(bw, "#%d;2;%d;%d;%d", i,
			int(c[0])*100/255, int(c[1])*100/255, int(c[2])*100/255)
	}

	line := make([]byte, width)
	used := make([]bool, len(pal))
	for top := 0; top < height; top += 6 {
		rows := min(6, height-top)
		clear(used)
		for y := top; y < top+rows; y++ {
			for _, i := range idx[y*width : (y+1)*width] {
				used[i] = true
			}
		}
		for color, ok := range used {
			if !ok {
				continue
			}
			for x := range width {
				var bits byte
				for r := range rows {
					if int(idx[(top+r)*width+x]) == color {
						bits |= 1 << r
					}
				}
				line[x] = '?' + bits
			}
			fmt.Fprintf(bw, "#%d", color)
			writeSixelRun(bw, line)
			bw.WriteByte('$')
		}
		bw.WriteByte('-')
	}
	bw.WriteString("\x1b\\")
	return bw.Flush()
}

// writeSixelRun writes one color's sixel characters for a band. Runs of
// four or more identical characters use the !n repeat introducer and empty
// sixels at the end of the line are dropped.
func writeSixelRun(bw *bufio.Writer, line []byte) {
	end := len(line)
	for end > 0 && line[end-1] == '?' {
		end--
	}
	for i := 0; i < end; {
		j := i + 1
		for j < end && line[j] == line[i] {
			j++
		}
		if n := j - i; n >= 4 {
			fmt.Fprintf(bw, "!%d%c", n, line[i])
		} else {
			bw.WriteString(strings.Repeat(string(line[i]), n))
		}
		i = j
	}
}
