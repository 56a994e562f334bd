//go:build cgo

// Package squish is a thin cgo binding to libsquish, the S3TC/BCn
// block-compression library. It exists so pkg/blockcodec never has to
// reimplement cluster-fit color matching: squish.Codec does exactly
// what the teacher's cmd/texconv encoder did with libsquish, widened
// to the full flag set the block-compression adapter needs.
package squish

/*
#cgo LDFLAGS: -lsquish -lstdc++
#cgo CXXFLAGS: -std=c++11
#include "squish_wrapper.h"
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// Flag mirrors libsquish's compression-mode and quality bits.
type Flag int

const (
	FlagDXT1 Flag = 1 << iota
	FlagDXT3
	FlagDXT5
	FlagBC4
	FlagBC5
	FlagColourClusterFit
	FlagColourRangeFit
	FlagColourIterativeClusterFit
	FlagWeightColourByAlpha
	FlagSourceBGRA
)

func (f Flag) squish() C.int {
	var out C.int
	if f&FlagDXT1 != 0 {
		out |= C.SQUISH_DXT1
	}
	if f&FlagDXT3 != 0 {
		out |= C.SQUISH_DXT3
	}
	if f&FlagDXT5 != 0 {
		out |= C.SQUISH_DXT5
	}
	if f&FlagBC4 != 0 {
		out |= C.SQUISH_BC4
	}
	if f&FlagBC5 != 0 {
		out |= C.SQUISH_BC5
	}
	if f&FlagColourClusterFit != 0 {
		out |= C.SQUISH_COLOUR_CLUSTER_FIT
	}
	if f&FlagColourRangeFit != 0 {
		out |= C.SQUISH_COLOUR_RANGE_FIT
	}
	if f&FlagColourIterativeClusterFit != 0 {
		out |= C.SQUISH_COLOUR_ITERATIVE_CLUSTER_FIT
	}
	if f&FlagWeightColourByAlpha != 0 {
		out |= C.SQUISH_WEIGHT_COLOUR_BY_ALPHA
	}
	if f&FlagSourceBGRA != 0 {
		out |= C.SQUISH_SOURCE_BGRA
	}
	return out
}

// Codec calls into libsquish for both directions of block compression.
// The zero value is ready to use; it carries no state of its own.
type Codec struct{}

// StorageSize returns the number of bytes libsquish needs to store a
// w x h image compressed with the given flags.
func (Codec) StorageSize(w, h int, flags Flag) int {
	return int(C.squish_get_storage_requirements(C.int(w), C.int(h), flags.squish()))
}

// Compress encodes srcRGBA (w*h*4 bytes, R,G,B,A per pixel) into dst,
// which must be at least StorageSize(w, h, flags) bytes long.
func (c Codec) Compress(dst, srcRGBA []byte, w, h int, flags Flag) error {
	if len(srcRGBA) < w*h*4 {
		return fmt.Errorf("squish: source too short: have %d bytes, need %d", len(srcRGBA), w*h*4)
	}
	need := c.StorageSize(w, h, flags)
	if len(dst) < need {
		return fmt.Errorf("squish: destination too short: have %d bytes, need %d", len(dst), need)
	}
	C.squish_compress_image(
		(*C.uchar)(unsafe.Pointer(&srcRGBA[0])),
		C.int(w),
		C.int(h),
		unsafe.Pointer(&dst[0]),
		flags.squish(),
	)
	return nil
}

// Decompress decodes src (block-compressed bytes) into dstRGBA, which
// must be at least w*h*4 bytes long.
func (Codec) Decompress(dstRGBA, src []byte, w, h int, flags Flag) error {
	if len(dstRGBA) < w*h*4 {
		return fmt.Errorf("squish: destination too short: have %d bytes, need %d", len(dstRGBA), w*h*4)
	}
	C.squish_decompress_image(
		(*C.uchar)(unsafe.Pointer(&dstRGBA[0])),
		C.int(w),
		C.int(h),
		unsafe.Pointer(&src[0]),
		flags.squish(),
	)
	return nil
}
