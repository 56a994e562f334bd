package pixel

import "github.com/goopsie/vtfpix/internal/parallel"

// loadRGB565/saveRGB565 and loadBGR565/saveBGR565 pack/unpack the
// 16-bit 565 formats via the shared decode565/encode565 helpers. Each
// pixel owns exactly 2 encoded bytes, so partitioning by pixel index
// never splits a packed word across workers.
func loadRGB565(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*2, i*4
			r, g, b := decode565(src[so+0], src[so+1])
			dst[do+0], dst[do+1], dst[do+2], dst[do+3] = r, g, b, 255
		}
	})
	return nil
}

func saveRGB565(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*4, i*2
			low, high := encode565(src[so+0], src[so+1], src[so+2])
			dst[do+0], dst[do+1] = low, high
		}
	})
	return nil
}

func loadBGR565(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*2, i*4
			b, g, r := decode565(src[so+0], src[so+1])
			dst[do+0], dst[do+1], dst[do+2], dst[do+3] = r, g, b, 255
		}
	})
	return nil
}

func saveBGR565(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*4, i*2
			low, high := encode565(src[so+2], src[so+1], src[so+0])
			dst[do+0], dst[do+1] = low, high
		}
	})
	return nil
}

// loadBGRX5551 unpacks BBBBBGGG GGRRRRRX, ignoring the low bit and
// filling alpha.
func loadBGRX5551(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*2, i*4
			lo, hi := src[so+0], src[so+1]
			r := upsample(5, (lo&0x3E)<<2)
			g := upsample(5, ((hi&0x07)<<5)|((lo&0xC0)>>3))
			b := upsample(5, hi&0xF8)
			dst[do+0], dst[do+1], dst[do+2], dst[do+3] = r, g, b, 255
		}
	})
	return nil
}

func saveBGRX5551(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*4, i*2
			r, g, b := src[so+0], src[so+1], src[so+2]
			lo := ((g & 0x18) << 3) | ((r & 0xF8) >> 2)
			hi := (b & 0xF8) | (g >> 5)
			dst[do+0], dst[do+1] = lo, hi
		}
	})
	return nil
}

// loadBGRA5551/saveBGRA5551: same 5551 packing as BGRX5551 but the
// low bit is a real 1-bit alpha channel instead of padding.
func loadBGRA5551(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*2, i*4
			lo, hi := src[so+0], src[so+1]
			r := upsample(5, (lo&0x3E)<<2)
			g := upsample(5, ((hi&0x07)<<5)|((lo&0xC0)>>3))
			b := upsample(5, hi&0xF8)
			a := byte(0)
			if lo&0x01 != 0 {
				a = 255
			}
			dst[do+0], dst[do+1], dst[do+2], dst[do+3] = r, g, b, a
		}
	})
	return nil
}

func saveBGRA5551(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*4, i*2
			r, g, b, a := src[so+0], src[so+1], src[so+2], src[so+3]
			lo := ((g & 0x18) << 3) | ((r & 0xF8) >> 2)
			if a >= 128 {
				lo |= 0x01
			}
			hi := (b & 0xF8) | (g >> 5)
			dst[do+0], dst[do+1] = lo, hi
		}
	})
	return nil
}

// loadBGRA4444/saveBGRA4444 pack each channel into a nibble, on-disk
// order GGGGBBBB AAAARRRR (high byte GGGGBBBB, low byte AAAARRRR),
// each promoted to 8 bits by upsampleNibble's low-nibble-into-high-
// nibble replication.
func loadBGRA4444(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*2, i*4
			lo, hi := src[so+0], src[so+1]
			a := upsampleNibble(lo >> 4)
			r := upsampleNibble(lo & 0x0F)
			g := upsampleNibble(hi >> 4)
			b := upsampleNibble(hi & 0x0F)
			dst[do+0], dst[do+1], dst[do+2], dst[do+3] = r, g, b, a
		}
	})
	return nil
}

func saveBGRA4444(dst, src []byte, w, h int) error {
	parallel.Run(w*h, func(start, end int) {
		for i := start; i < end; i++ {
			so, do := i*4, i*2
			r, g, b, a := src[so+0], src[so+1], src[so+2], src[so+3]
			lo := (a & 0xF0) | (r >> 4)
			hi := (g & 0xF0) | (b >> 4)
			dst[do+0], dst[do+1] = lo, hi
		}
	})
	return nil
}
