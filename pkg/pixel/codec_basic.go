package pixel

import "github.com/goopsie/vtfpix/internal/parallel"

// loadRGBA8888 and saveRGBA8888 are a straight memcpy: canonical and
// encoded share the same R,G,B,A byte order.
func loadRGBA8888(dst, src []byte, w, h int) error {
	copy(dst[:4*w*h], src[:4*w*h])
	return nil
}

func saveRGBA8888(dst, src []byte, w, h int) error {
	copy(dst[:4*w*h], src[:4*w*h])
	return nil
}

// loadBGRA8888/saveBGRA8888 swap the R and B bytes of each pixel.
func loadBGRA8888(dst, src []byte, w, h int) error {
	return swapRB8888(dst, src, w*h)
}

func saveBGRA8888(dst, src []byte, w, h int) error {
	return swapRB8888(dst, src, w*h)
}

func swapRB8888(dst, src []byte, n int) error {
	parallel.Run(n, func(start, end int) {
		for i := start; i < end; i++ {
			o := i * 4
			dst[o+0] = src[o+2]
			dst[o+1] = src[o+1]
			dst[o+2] = src[o+0]
			dst[o+3] = src[o+3]
		}
	})
	return nil
}

// loadABGR8888/saveABGR8888 fully reverse the channel order.
func loadABGR8888(dst, src []byte, w, h int) error {
	return reverse8888(dst, src, w*h)
}

func saveABGR8888(dst, src []byte, w, h int) error {
	return reverse8888(dst, src, w*h)
}

func reverse8888(dst, src []byte, n int) error {
	parallel.Run(n, func(start, end int) {
		for i := start; i < end; i++ {
			o := i * 4
			dst[o+0] = src[o+3]
			dst[o+1] = src[o+2]
			dst[o+2] = src[o+1]
			dst[o+3] = src[o+0]
		}
	})
	return nil
}

// loadARGB8888 reads the on-disk byte order G,B,A,R into canonical
// R,G,B,A. This is the deliberate non-obvious layout spec §9 calls
// out: the tag's name does not describe its actual byte order.
func loadARGB8888(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			o := i * 4
			g, b, a, r := src[o+0], src[o+1], src[o+2], src[o+3]
			dst[o+0] = r
			dst[o+1] = g
			dst[o+2] = b
			dst[o+3] = a
		}
	})
	return nil
}

// saveARGB8888 is the inverse of loadARGB8888: canonical R,G,B,A is
// written back out as on-disk G,B,A,R.
func saveARGB8888(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			o := i * 4
			r, g, b, a := src[o+0], src[o+1], src[o+2], src[o+3]
			dst[o+0] = g
			dst[o+1] = b
			dst[o+2] = a
			dst[o+3] = r
		}
	})
	return nil
}

// loadBGRX8888 fills A=255; saveBGRX8888 writes 0 into the unused
// fourth byte.
func loadBGRX8888(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			o := i * 4
			dst[o+0] = src[o+2]
			dst[o+1] = src[o+1]
			dst[o+2] = src[o+0]
			dst[o+3] = 255
		}
	})
	return nil
}

func saveBGRX8888(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			o := i * 4
			dst[o+0] = src[o+2]
			dst[o+1] = src[o+1]
			dst[o+2] = src[o+0]
			dst[o+3] = 0
		}
	})
	return nil
}

// loadRGB888/saveRGB888 and loadBGR888/saveBGR888 are the 3-byte
// analogues of the above, with alpha fill on load.
func loadRGB888(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*3, i*4
			dst[do+0] = src[so+0]
			dst[do+1] = src[so+1]
			dst[do+2] = src[so+2]
			dst[do+3] = 255
		}
	})
	return nil
}

func saveRGB888(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*4, i*3
			dst[do+0] = src[so+0]
			dst[do+1] = src[so+1]
			dst[do+2] = src[so+2]
		}
	})
	return nil
}

func loadBGR888(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*3, i*4
			dst[do+0] = src[so+2]
			dst[do+1] = src[so+1]
			dst[do+2] = src[so+0]
			dst[do+3] = 255
		}
	})
	return nil
}

func saveBGR888(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*4, i*3
			dst[do+0] = src[so+2]
			dst[do+1] = src[so+1]
			dst[do+2] = src[so+0]
		}
	})
	return nil
}

// loadRaw8888/saveRaw8888 back UVWQ8888 and UVLX8888: both are
// treated as an opaque RGBA-shaped container and memcpy'd.
func loadRaw8888(dst, src []byte, w, h int) error {
	copy(dst[:4*w*h], src[:4*w*h])
	return nil
}

func saveRaw8888(dst, src []byte, w, h int) error {
	copy(dst[:4*w*h], src[:4*w*h])
	return nil
}
