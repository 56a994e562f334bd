package pixel

import "github.com/goopsie/vtfpix/internal/parallel"

// loadI8 replicates a single intensity byte into R,G,B and fills
// alpha; saveI8 averages R,G,B with truncating integer division.
func loadI8(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			v := src[i]
			o := i * 4
			dst[o+0], dst[o+1], dst[o+2], dst[o+3] = v, v, v, 255
		}
	})
	return nil
}

func saveI8(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			o := i * 4
			dst[i] = intensity(src[o+0], src[o+1], src[o+2])
		}
	})
	return nil
}

// loadIA88/saveIA88 carry an explicit alpha channel alongside
// intensity.
func loadIA88(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*2, i*4
			v, a := src[so+0], src[so+1]
			dst[do+0], dst[do+1], dst[do+2], dst[do+3] = v, v, v, a
		}
	})
	return nil
}

func saveIA88(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*4, i*2
			dst[do+0] = intensity(src[so+0], src[so+1], src[so+2])
			dst[do+1] = src[so+3]
		}
	})
	return nil
}

// intensity returns the truncating integer average of three channels.
func intensity(r, g, b byte) byte {
	return byte((int(r) + int(g) + int(b)) / 3)
}

// loadA8/saveA8: alpha-only, RGB forced to 0 on load, RGB discarded on
// save.
func loadA8(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			o := i * 4
			dst[o+0], dst[o+1], dst[o+2], dst[o+3] = 0, 0, 0, src[i]
		}
	})
	return nil
}

func saveA8(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[i*4+3]
		}
	})
	return nil
}

// loadUV88/saveUV88: tangent-space U,V packed into R,G with B zeroed
// and alpha filled; save writes only R,G back out.
func loadUV88(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*2, i*4
			u, v := src[so+0], src[so+1]
			dst[do+0], dst[do+1], dst[do+2], dst[do+3] = u, v, 0, 255
		}
	})
	return nil
}

func saveUV88(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*4, i*2
			dst[do+0] = src[so+0]
			dst[do+1] = src[so+1]
		}
	})
	return nil
}
