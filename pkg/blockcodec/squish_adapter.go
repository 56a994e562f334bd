//go:build cgo

package blockcodec

import "github.com/goopsie/vtfpix/internal/squish"

// Default is the production Compressor: a cgo binding to libsquish.
// This file only builds with cgo enabled; see stub.go for the
// non-cgo fallback that keeps the rest of pkg/pixel's 20 plain
// byte-shuffling codecs buildable and testable without libsquish
// installed.
var Default Compressor = squishAdapter{}

// squishAdapter translates blockcodec's Flags vocabulary into
// internal/squish's and forwards to the cgo libsquish binding.
type squishAdapter struct{}

func (squishAdapter) translate(flags Flags) squish.Flag {
	var out squish.Flag
	if flags&DXT1 != 0 {
		out |= squish.FlagDXT1
	}
	if flags&DXT3 != 0 {
		out |= squish.FlagDXT3
	}
	if flags&DXT5 != 0 {
		out |= squish.FlagDXT5
	}
	if flags&BC4 != 0 {
		out |= squish.FlagBC4
	}
	if flags&BC5 != 0 {
		out |= squish.FlagBC5
	}
	if flags&ClusterFit != 0 {
		out |= squish.FlagColourClusterFit
	}
	if flags&RangeFit != 0 {
		out |= squish.FlagColourRangeFit
	}
	if flags&IterativeClusterFit != 0 {
		out |= squish.FlagColourIterativeClusterFit
	}
	if flags&WeightColourByAlpha != 0 {
		out |= squish.FlagWeightColourByAlpha
	}
	if flags&SourceBGRA != 0 {
		out |= squish.FlagSourceBGRA
	}
	return out
}

func (a squishAdapter) StorageSize(w, h int, flags Flags) int {
	return squish.Codec{}.StorageSize(w, h, a.translate(flags))
}

func (a squishAdapter) Compress(dst, srcRGBA []byte, w, h int, flags Flags) error {
	return squish.Codec{}.Compress(dst, srcRGBA, w, h, a.translate(flags))
}

func (a squishAdapter) Decompress(dstRGBA, src []byte, w, h int, flags Flags) error {
	return squish.Codec{}.Decompress(dstRGBA, src, w, h, a.translate(flags))
}
