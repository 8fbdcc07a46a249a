package drawing

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/pixel"
)

// DefaultTextSize is the size in pixels per em used when TextOptions.Size
// is zero.
const DefaultTextSize = 16

// Face is a parsed font usable for shaping and rasterization.
// A Face is safe for concurrent use.
type Face struct {
	shaping *gotext.Font
	outline *sfnt.Font
}

// ParseFace parses TrueType or OpenType font data.
func ParseFace(data []byte) (*Face, error) {
	f, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("drawing: parse font: %w", err)
	}
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("drawing: parse font outlines: %w", err)
	}
	return &Face{shaping: f.Font, outline: sf}, nil
}

var defaultFace = sync.OnceValue(func() *Face {
	f, err := ParseFace(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
})

// DefaultFace returns the built-in Go Regular face.
func DefaultFace() *Face { return defaultFace() }

// TextOptions configures text rendering.
type TextOptions struct {
	// Face is the font. Nil selects DefaultFace.
	Face *Face

	// Size is the font size in pixels per em. Zero selects DefaultTextSize.
	Size float64
}

func (o TextOptions) resolve() (*Face, float64) {
	face, size := o.Face, o.Size
	if face == nil {
		face = DefaultFace()
	}
	if size <= 0 {
		size = DefaultTextSize
	}
	return face, size
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

type placedGlyph struct {
	id   sfnt.GlyphIndex
	x, y float64
}

// layout shapes text into glyphs positioned relative to the start of the
// baseline, in visual order. It returns the total advance.
func (f *Face) layout(text string, size float64) ([]placedGlyph, float64) {
	runes := []rune(norm.NFC.String(text))
	if len(runes) == 0 {
		return nil, 0
	}

	type run struct {
		start, end int
		dir        di.Direction
	}
	runs := []run{{0, len(runes), di.DirectionLTR}}

	var p bidi.Paragraph
	if _, err := p.SetString(string(runes), bidi.DefaultDirection(bidi.LeftToRight)); err == nil {
		if ordering, err := p.Order(); err == nil && ordering.NumRuns() > 0 {
			runs = runs[:0]
			for i := range ordering.NumRuns() {
				r := ordering.Run(i)
				// Pos reports inclusive rune indices.
				start, end := r.Pos()
				dir := di.DirectionLTR
				if r.Direction() == bidi.RightToLeft {
					dir = di.DirectionRTL
				}
				runs = append(runs, run{start, min(end+1, len(runes)), dir})
			}
		}
	}

	face := gotext.NewFace(f.shaping)
	var shaper shaping.HarfbuzzShaper
	var glyphs []placedGlyph
	pen := 0.0

	for _, r := range runs {
		if r.start >= r.end {
			continue
		}
		out := shaper.Shape(shaping.Input{
			Text:      runes,
			RunStart:  r.start,
			RunEnd:    r.end,
			Direction: r.dir,
			Face:      face,
			Size:      fixed.Int26_6(size * 64),
			Script:    language.LookupScript(runes[r.start]),
			Language:  language.NewLanguage("en"),
		})
		for _, g := range out.Glyphs {
			glyphs = append(glyphs, placedGlyph{
				id: sfnt.GlyphIndex(g.GlyphID), // #nosec G115 -- sfnt glyph indices are 16-bit
				x:  pen + fixedToFloat(g.XOffset),
				y:  fixedToFloat(g.YOffset),
			})
			pen += fixedToFloat(g.Advance)
		}
	}
	return glyphs, pen
}

// Mask renders text to a coverage mask whose height spans the face's ascent
// and descent. It returns nil when the text has no extent.
func Mask(text string, opts TextOptions) *pixbuf.Image[pixel.Y] {
	face, size := opts.resolve()
	glyphs, advance := face.layout(text, size)

	var buf sfnt.Buffer
	ppem := fixed.Int26_6(size * 64)
	m, err := face.outline.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		pixbuf.Logger().Warn("drawing: font metrics", "err", err)
		return nil
	}
	ascent := fixedToFloat(m.Ascent)
	w := int(math.Ceil(advance))
	h := int(math.Ceil(ascent + fixedToFloat(m.Descent)))
	if w <= 0 || h <= 0 {
		return nil
	}

	r := vector.NewRasterizer(w, h)
	for _, g := range glyphs {
		segs, err := face.outline.LoadGlyph(&buf, g.id, ppem, nil)
		if err != nil {
			pixbuf.Logger().Warn("drawing: skipped glyph", "glyph", g.id, "err", err)
			continue
		}
		ox, oy := float32(g.x), float32(ascent+g.y)
		open := false
		for _, s := range segs {
			a := s.Args
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				if open {
					r.ClosePath()
				}
				r.MoveTo(ox+f32(a[0].X), oy+f32(a[0].Y))
				open = true
			case sfnt.SegmentOpLineTo:
				r.LineTo(ox+f32(a[0].X), oy+f32(a[0].Y))
			case sfnt.SegmentOpQuadTo:
				r.QuadTo(ox+f32(a[0].X), oy+f32(a[0].Y), ox+f32(a[1].X), oy+f32(a[1].Y))
			case sfnt.SegmentOpCubeTo:
				r.CubeTo(ox+f32(a[0].X), oy+f32(a[0].Y), ox+f32(a[1].X), oy+f32(a[1].Y), ox+f32(a[2].X), oy+f32(a[2].Y))
			}
		}
		if open {
			r.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return pixbuf.Build[pixel.Y](w, h).Buf(dst.Pix)
}

func f32(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Text draws text onto an RGBA image with its top-left corner at (x, y),
// blending the color over the image with glyph coverage as alpha.
// Text outside the image is clipped.
func Text(img *pixbuf.Image[pixel.RGBA], x, y int, text string, color pixel.RGB, opts TextOptions) {
	mask := Mask(text, opts)
	if mask == nil {
		return
	}
	for my := range mask.Height() {
		for mx, a := range mask.Row(my) {
			tx, ty := x+mx, y+my
			if a == 0 || tx < 0 || ty < 0 || tx >= img.Width() || ty >= img.Height() {
				continue
			}
			d := img.PixelUnchecked(tx, ty)
			pixel.BlendRGBA(&d, pixel.RGBA{color[0], color[1], color[2], a})
			img.SetPixelUnchecked(tx, ty, d)
		}
	}
}

// TextRGB draws text onto an RGB image with its top-left corner at (x, y),
// interpolating towards the color by glyph coverage.
// Text outside the image is clipped.
func TextRGB(img *pixbuf.Image[pixel.RGB], x, y int, text string, color pixel.RGB, opts TextOptions) {
	mask := Mask(text, opts)
	if mask == nil {
		return
	}
	if err := pixbuf.BlendAlphaAndColorAt(img, mask.View(), color, x, y); err == nil {
		return
	}
	for my := range mask.Height() {
		for mx, a := range mask.Row(my) {
			tx, ty := x+mx, y+my
			if tx < 0 || ty < 0 || tx >= img.Width() || ty >= img.Height() {
				continue
			}
			d := img.PixelUnchecked(tx, ty)
			pixel.BlendAlphaAndColor(a, color, &d)
			img.SetPixelUnchecked(tx, ty, d)
		}
	}
}
