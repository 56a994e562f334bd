package mipmap

import (
	"fmt"

	"github.com/goopsie/vtfpix/internal/parallel"
	"github.com/goopsie/vtfpix/pkg/vtferr"
)

// Filter selects which of the four candidate source pixels a
// downscaled output pixel draws from, or whether it averages all four.
type Filter int

const (
	FilterUpperLeft  Filter = 0
	FilterUpperRight Filter = 1
	FilterLowerLeft  Filter = 2
	FilterLowerRight Filter = 3
	FilterBilinear   Filter = 4
)

// offsets holds the per-axis stride/base pair ScaleDown precomputes
// once before the per-pixel loop: perCol/perRow give the stride in
// canonical pixels between adjacent output columns/rows, and
// horizOff/vertOff give the extra stride to the halved dimension's
// second sample.
type offsets struct {
	horizOff, vertOff int
	perCol, perRow    int
}

func computeOffsets(srcW, srcH, dstW, dstH int) offsets {
	var o offsets
	if dstW != srcW {
		o.horizOff, o.perCol = 4, 2
	} else {
		o.horizOff, o.perCol = 0, 1
	}
	if dstH != srcH {
		o.vertOff, o.perRow = 4*o.perCol*dstW, 2*o.perCol*dstW
	} else {
		o.vertOff, o.perRow = 0, o.perCol*dstW
	}
	return o
}

// ScaleDown writes one mip level of src (srcW x srcH canonical
// RGBA8888 pixels) into dst (dstW x dstH). Each of dstW, dstH must
// equal the matching source dimension or exactly half of it; any
// other ratio is undefined.
//
// dst must hold at least 4*dstW*dstH bytes; src must hold at least
// 4*srcW*srcH bytes.
func ScaleDown(filter Filter, srcW, srcH, dstW, dstH int, src, dst []byte) error {
	if filter < FilterUpperLeft || filter > FilterBilinear {
		return &vtferr.InvalidArgument{Msg: fmt.Sprintf("filter %d out of range [0, 4]", int(filter))}
	}
	if need := 4 * dstW * dstH; len(dst) < need {
		return &vtferr.InvalidArgument{Msg: fmt.Sprintf("dst too short: have %d bytes, need %d", len(dst), need)}
	}
	if need := 4 * srcW * srcH; len(src) < need {
		return &vtferr.InvalidArgument{Msg: fmt.Sprintf("src too short: have %d bytes, need %d", len(src), need)}
	}

	o := computeOffsets(srcW, srcH, dstW, dstH)

	run := func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < dstW; x++ {
				base := 4 * (o.perRow*y + o.perCol*x)
				s0 := base
				s1 := base + o.horizOff
				s2 := base + o.vertOff
				s3 := base + o.vertOff + o.horizOff
				out := 4 * (y*dstW + x)
				if filter == FilterBilinear {
					for c := 0; c < 4; c++ {
						sum := int(src[s0+c]) + int(src[s1+c]) + int(src[s2+c]) + int(src[s3+c])
						dst[out+c] = byte(sum / 4)
					}
					continue
				}
				var pick int
				switch filter {
				case FilterUpperLeft:
					pick = s0
				case FilterUpperRight:
					pick = s1
				case FilterLowerLeft:
					pick = s2
				case FilterLowerRight:
					pick = s3
				}
				copy(dst[out:out+4], src[pick:pick+4])
			}
		}
	}

	parallel.Run(dstH, run)
	return nil
}
