package term

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
	"github.com/gogpu/pixbuf/scale"
)

// ErrNotTerminal is returned by [Size] when the descriptor is not a
// terminal.
var ErrNotTerminal = errors.New("term: not a terminal")

// Options controls [Write].
type Options struct {
	// Protocol selects the encoder. Auto runs [Detect].
	Protocol Protocol

	// MaxWidth and MaxHeight bound the written size in pixels. The image
	// is scaled down, keeping its aspect ratio, when it exceeds them. Zero
	// means unbounded.
	MaxWidth, MaxHeight int

	// Filter is used when scaling down.
	Filter scale.Filter

	// Colors is the sixel palette size. Zero means DefaultColors.
	Colors int
}

// Write encodes src to w with the protocol in opts.
func Write[P pixel.Pixel](w io.Writer, src pixbuf.View[P], opts Options) error {
	proto := opts.Protocol
	if proto == Auto {
		proto = Detect()
	}

	src, err := fitMax(src, opts)
	if err != nil {
		return err
	}
	pixbuf.Logger().Debug("term: write",
		"protocol", proto, "width", src.Width(), "height", src.Height())

	switch proto {
	case Kitty:
		return WriteKitty(w, src)
	case Iterm2:
		return WriteIterm2(w, src)
	case Sixel:
		return WriteSixel(w, src, opts.Colors)
	case Bloc:
		return WriteBloc(w, src)
	default:
		return fmt.Errorf("term: unknown protocol %v", proto)
	}
}

// WriteTerminal is [Write] for a terminal file such as os.Stdout. With the
// bloc protocol and no explicit bounds, the image is fitted to the terminal
// window, one pixel per column and two per row.
func WriteTerminal[P pixel.Pixel](f *os.File, src pixbuf.View[P], opts Options) error {
	if opts.Protocol == Auto {
		opts.Protocol = Detect()
	}
	if opts.Protocol == Bloc && opts.MaxWidth == 0 && opts.MaxHeight == 0 {
		cols, rows, err := Size(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
		if err != nil {
			pixbuf.Logger().Warn("term: cannot query terminal size, writing unscaled", "err", err)
		} else {
			opts.MaxWidth, opts.MaxHeight = cols, 2*rows
		}
	}
	return Write(f, src, opts)
}

// Size returns the size of the terminal on fd in character cells.
func Size(fd int) (cols, rows int, err error) {
	if !term.IsTerminal(fd) {
		return 0, 0, ErrNotTerminal
	}
	cols, rows, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("term: size: %w", err)
	}
	return cols, rows, nil
}

func fitMax[P pixel.Pixel](src pixbuf.View[P], opts Options) (pixbuf.View[P], error) {
	if opts.MaxWidth <= 0 && opts.MaxHeight <= 0 {
		return src, nil
	}
	maxW, maxH := opts.MaxWidth, opts.MaxHeight
	if maxW <= 0 {
		maxW = src.Width()
	}
	if maxH <= 0 {
		maxH = src.Height()
	}
	w, h := scale.Fit(src.Width(), src.Height(), maxW, maxH)
	if w == src.Width() && h == src.Height() {
		return src, nil
	}
	out, err := scale.Resize(src, w, h, opts.Filter)
	if err != nil {
		return src, fmt.Errorf("term: fit: %w", err)
	}
	return out.View(), nil
}
