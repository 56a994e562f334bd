package pixel

import "github.com/goopsie/vtfpix/internal/parallel"

// loadRGB888Bluescreen treats pure blue (R=0,G=0,B=255) as the
// transparency sentinel: it decodes to fully transparent black, and
// every other color decodes opaque.
func loadRGB888Bluescreen(dst, src []byte, w, h int) error {
	return loadBluescreen(dst, src, w, h, false)
}

func saveRGB888Bluescreen(dst, src []byte, w, h int) error {
	return saveBluescreen(dst, src, w, h, false)
}

func loadBGR888Bluescreen(dst, src []byte, w, h int) error {
	return loadBluescreen(dst, src, w, h, true)
}

func saveBGR888Bluescreen(dst, src []byte, w, h int) error {
	return saveBluescreen(dst, src, w, h, true)
}

func loadBluescreen(dst, src []byte, w, h int, bgrOrder bool) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*3, i*4
			var r, g, b byte
			if bgrOrder {
				b, g, r = src[so+0], src[so+1], src[so+2]
			} else {
				r, g, b = src[so+0], src[so+1], src[so+2]
			}
			if r == 0 && g == 0 && b == 255 {
				dst[do+0], dst[do+1], dst[do+2], dst[do+3] = 0, 0, 0, 0
				continue
			}
			dst[do+0], dst[do+1], dst[do+2], dst[do+3] = r, g, b, 255
		}
	})
	return nil
}

func saveBluescreen(dst, src []byte, w, h int, bgrOrder bool) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*4, i*3
			r, g, b, a := src[so+0], src[so+1], src[so+2], src[so+3]
			if a < 128 {
				r, g, b = 0, 0, 255
			}
			if bgrOrder {
				dst[do+0], dst[do+1], dst[do+2] = b, g, r
			} else {
				dst[do+0], dst[do+1], dst[do+2] = r, g, b
			}
		}
	})
	return nil
}
