package present

import (
	"image"
	"image/color"
)

// ToImage wraps w*h canonical RGBA8888 pixels as a stdlib image.Image,
// grounded on cmd/texconv/encoder.go's imageToRGBA conversion run in
// reverse: a zero-copy view rather than a second buffer, since callers
// that want a *image.RGBA for a third-party decoder/encoder (PNG, the
// draw package) can build one directly from the same bytes.
func ToImage(pixels []byte, w, h int) image.Image {
	return &image.RGBA{
		Pix:    pixels[:4*w*h],
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// FromImage copies img's pixels into a canonical RGBA8888 buffer,
// generalizing cmd/texconv/encoder.go's imageToRGBA beyond its
// *image.RGBA assumption to any image.Image (source for a mip level
// loaded from a lossless format like PNG).
func FromImage(img image.Image) (pixels []byte, w, h int) {
	bounds := img.Bounds()
	w, h = bounds.Dx(), bounds.Dy()
	pixels = make([]byte, 4*w*h)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			pixels[i+0] = c.R
			pixels[i+1] = c.G
			pixels[i+2] = c.B
			pixels[i+3] = c.A
			i += 4
		}
	}
	return pixels, w, h
}
