// Package blockcodec is the adapter described in spec §4.C: a thin,
// swappable front end over a mature block-compression library. The
// production wiring (Default, built with cgo) delegates to
// internal/squish, a cgo binding to libsquish grounded on the
// teacher's cmd/texconv encoder; the Compressor interface exists so
// pkg/pixel's sub-4-pixel skip rule and buffer-sizing logic can be
// tested without linking it, and so the rest of pkg/pixel builds and
// runs without a C toolchain or libsquish installed.
package blockcodec

import "fmt"

// Flags enumerates the compression mode and quality bits spec §4.C
// names. Mode bits (DXT1/DXT3/DXT5/BC4/BC5) are mutually exclusive;
// the rest compose freely.
type Flags uint32

const (
	DXT1 Flags = 1 << iota
	DXT3
	DXT5
	BC4
	BC5
	ForceOpaque
	ClusterFit
	RangeFit
	IterativeClusterFit
	WeightColourByAlpha
	SourceBGRA
)

// Compressor is the surface blockcodec needs from an underlying block
// codec library.
type Compressor interface {
	// StorageSize returns the number of bytes a w x h image needs when
	// compressed with flags.
	StorageSize(w, h int, flags Flags) int
	// Compress encodes srcRGBA (w*h*4 bytes) into dst.
	Compress(dst, srcRGBA []byte, w, h int, flags Flags) error
	// Decompress decodes src into dstRGBA (w*h*4 bytes).
	Decompress(dstRGBA, src []byte, w, h int, flags Flags) error
}

// StorageSize returns c.StorageSize(w, h, flags).
func StorageSize(c Compressor, w, h int, flags Flags) int {
	return c.StorageSize(w, h, flags)
}

// Compress encodes srcRGBA into dst using c. When flags has
// ForceOpaque set, the alpha channel of the source is treated as 255
// throughout, which is how DXT1 (always fully opaque) differs from
// DXT1_ONEBITALPHA at the adapter boundary, without requiring the
// underlying library to know about that distinction.
func Compress(c Compressor, dst, srcRGBA []byte, w, h int, flags Flags) error {
	if len(srcRGBA) < w*h*4 {
		return fmt.Errorf("blockcodec: source too short: have %d bytes, need %d", len(srcRGBA), w*h*4)
	}
	src := srcRGBA
	if flags&ForceOpaque != 0 {
		opaque := make([]byte, w*h*4)
		copy(opaque, srcRGBA[:w*h*4])
		for i := 3; i < len(opaque); i += 4 {
			opaque[i] = 255
		}
		src = opaque
	}
	return c.Compress(dst, src, w, h, flags)
}

// Decompress decodes src into dstRGBA using c.
func Decompress(c Compressor, dstRGBA, src []byte, w, h int, flags Flags) error {
	if len(dstRGBA) < w*h*4 {
		return fmt.Errorf("blockcodec: destination too short: have %d bytes, need %d", len(dstRGBA), w*h*4)
	}
	return c.Decompress(dstRGBA, src, w, h, flags)
}
