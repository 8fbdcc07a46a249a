// Package pixbuf provides fixed-layout pixel buffers with in-place affine
// transforms and layer compositing.
//
// # Overview
//
// An [Image] is a row-major, channel-interleaved byte buffer with no padding.
// The pixel layout is a type parameter ([pixel.Y], [pixel.YA], [pixel.RGB]
// or [pixel.RGBA]), so the channel count is known at compile time. Pixel
// (x, y) starts at byte offset (y*width + x) * channels.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/pixbuf"
//	    "github.com/gogpu/pixbuf/pixel"
//	)
//
//	// Wrap caller memory (panics if the length does not match)
//	img := pixbuf.Build[pixel.RGB](640, 480).Buf(data)
//
//	// Transform in place
//	img.FlipH()
//	if err := img.Rot90(); err != nil {
//	    // not square
//	}
//
//	// Paste a logo at (10, 10), skipping its transparent pixels
//	err := pixbuf.OverlayAt(img, logo.View(), 10, 10)
//
// # Ownership
//
// An Image either owns its memory (Alloc, Fill, Clone and every cloning
// operation) or is an exclusive borrow of caller memory (Buf). A [View] is a
// shared, read-only borrow. Any number of views may coexist; none may be used
// across a mutation of the image it came from.
//
// # Checked and Unchecked Operations
//
// Every operation with a precondition comes in two tiers. The default tier
// validates and returns a sentinel error ([ErrOutOfBounds], [ErrNotSquare],
// [ErrSizeMismatch], [ErrUnsupportedBlend]) without touching the
// destination. The Unchecked tier skips validation; violating its
// preconditions may panic or write the wrong pixels.
//
// # Compositing
//
// Overlay copies source pixels whose alpha reaches [AlphaThreshold] and
// ignores the rest. BlendOverlay applies the "over" operator. Both have "At"
// variants that place the source at an offset, and "Cloned" variants that
// leave the destination untouched.
//
// # Related Packages
//
//   - pixel: pixel types, conversion and blend arithmetic
//   - drawing: lines, shapes and shaped text
//   - scale, filter: resampling, blur and color matrices
//   - imageio: file codecs
//   - term: kitty, iTerm2, sixel and half-block terminal output
//   - gpu: texture upload and readback layouts
//   - dyn: images whose layout is known only at run time
//
// # Concurrency
//
// Images are not safe for concurrent mutation. Views may be read from any
// number of goroutines while no one writes the underlying buffer.
package pixbuf

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
