// Package drawing rasterizes primitives and text directly into pixbuf
// images.
//
// Every primitive is generic over the pixel layout and clips to the image:
// points outside it are skipped rather than reported. Rectangles are
// inclusive, so Box(img, x, y, w, h, p) touches columns x through x+w.
//
// Text is shaped with HarfBuzz (go-text/typesetting), split into
// bidirectional runs, and rasterized from the font's outlines into a
// coverage mask that is then blended onto the image.
package drawing
