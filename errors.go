package pixbuf

import "errors"

// Precondition errors returned by the checked operations.
var (
	// ErrOutOfBounds is returned when a coordinate or placed region falls
	// outside the image.
	ErrOutOfBounds = errors.New("pixbuf: out of bounds")

	// ErrNotSquare is returned by 90 degree rotations and transposition of
	// non-square images.
	ErrNotSquare = errors.New("pixbuf: image is not square")

	// ErrSizeMismatch is returned when two images must have related
	// dimensions and do not.
	ErrSizeMismatch = errors.New("pixbuf: size mismatch")

	// ErrUnsupportedBlend is returned when no blend function exists for a
	// destination/source layout pair.
	ErrUnsupportedBlend = errors.New("pixbuf: unsupported blend")

	// ErrEmptyImage is returned when importing an image with no pixels.
	ErrEmptyImage = errors.New("pixbuf: empty image")
)
