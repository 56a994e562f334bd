package present

import (
	"fmt"

	"github.com/goopsie/vtfpix/internal/parallel"
	"github.com/goopsie/vtfpix/pkg/vtferr"
)

// Background is an opaque color an alpha-channel composite is drawn
// over. A nil *Background tells PPM/AlphaFlatten to drop the alpha
// channel outright rather than composite.
type Background struct {
	R, G, B byte
}

// PPM renders pixels (w*h canonical RGBA8888 bytes) as a netpbm P6
// stream: an ASCII header, "P6 <w> <h> 255\n", followed by 3*w*h bytes
// of top-to-bottom, row-major RGB.
func PPM(pixels []byte, w, h int, bg *Background) ([]byte, error) {
	if need := 4 * w * h; len(pixels) < need {
		return nil, &vtferr.InvalidArgument{Msg: fmt.Sprintf("pixels too short: have %d bytes, need %d", len(pixels), need)}
	}
	header := []byte(fmt.Sprintf("P6 %d %d 255\n", w, h))
	out := make([]byte, len(header)+3*w*h)
	copy(out, header)
	if err := flatten(pixels, out[len(header):], w, h, bg); err != nil {
		return nil, err
	}
	return out, nil
}

// AlphaFlatten writes 3*w*h bytes of composited (or alpha-dropped) RGB
// into dst, a caller-owned buffer.
func AlphaFlatten(pixels, dst []byte, w, h int, bg *Background) error {
	if need := 4 * w * h; len(pixels) < need {
		return &vtferr.InvalidArgument{Msg: fmt.Sprintf("pixels too short: have %d bytes, need %d", len(pixels), need)}
	}
	if need := 3 * w * h; len(dst) < need {
		return &vtferr.InvalidArgument{Msg: fmt.Sprintf("dst too short: have %d bytes, need %d", len(dst), need)}
	}
	return flatten(pixels, dst, w, h, bg)
}

func flatten(pixels, dst []byte, w, h int, bg *Background) error {
	run := func(start, end int) {
		for i := start; i < end; i++ {
			src := pixels[4*i : 4*i+4]
			out := dst[3*i : 3*i+3]
			if bg == nil {
				out[0], out[1], out[2] = src[0], src[1], src[2]
				continue
			}
			a := int(src[3])
			out[0] = compositeByte(src[0], bg.R, a)
			out[1] = compositeByte(src[1], bg.G, a)
			out[2] = compositeByte(src[2], bg.B, a)
		}
	}
	parallel.Run(w*h, run)
	return nil
}

// compositeByte computes src*a/255 + bg*(255-a)/255, truncated.
func compositeByte(src, bg byte, a int) byte {
	return byte((int(src)*a + int(bg)*(255-a)) / 255)
}
