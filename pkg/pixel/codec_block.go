package pixel

import "github.com/goopsie/vtfpix/pkg/blockcodec"

// The four block-compressed codecs each delegate to pkg/blockcodec,
// which is itself a thin wrapper over libsquish (spec §4.C). DXT1 is
// forced fully opaque; DXT1_ONEBITALPHA keeps squish's native 1-bit
// alpha test.
func loadDXT1(dst, src []byte, w, h int) error {
	return loadBlock(dst, src, w, h, blockcodec.DXT1|blockcodec.ForceOpaque)
}

func saveDXT1(dst, src []byte, w, h int) error {
	return saveBlock(dst, src, w, h, blockcodec.DXT1|blockcodec.ForceOpaque)
}

func loadDXT1OneBitAlpha(dst, src []byte, w, h int) error {
	return loadBlock(dst, src, w, h, blockcodec.DXT1)
}

func saveDXT1OneBitAlpha(dst, src []byte, w, h int) error {
	return saveBlock(dst, src, w, h, blockcodec.DXT1)
}

func loadDXT3(dst, src []byte, w, h int) error {
	return loadBlock(dst, src, w, h, blockcodec.DXT3)
}

func saveDXT3(dst, src []byte, w, h int) error {
	return saveBlock(dst, src, w, h, blockcodec.DXT3)
}

func loadDXT5(dst, src []byte, w, h int) error {
	return loadBlock(dst, src, w, h, blockcodec.DXT5)
}

func saveDXT5(dst, src []byte, w, h int) error {
	return saveBlock(dst, src, w, h, blockcodec.DXT5)
}

func loadATI2N(dst, src []byte, w, h int) error {
	return loadBlock(dst, src, w, h, blockcodec.BC5)
}

func saveATI2N(dst, src []byte, w, h int) error {
	return saveBlock(dst, src, w, h, blockcodec.BC5)
}

// loadBlock and saveBlock implement spec §4.B's block-compressed
// minimum: below 4x4, the encoder writes nothing and the decoder
// fills the canonical buffer with opaque black. Spec §9 flags the
// source's sub-4 decoder as having a typo that leaves alpha
// uninitialized; this always writes the full R=G=B=0, A=255 pixel.
func loadBlock(dst, src []byte, w, h int, flags blockcodec.Flags) error {
	if w < 4 || h < 4 {
		for i := 0; i < w*h; i++ {
			o := i * 4
			dst[o+0], dst[o+1], dst[o+2], dst[o+3] = 0, 0, 0, 255
		}
		return nil
	}
	return blockcodec.Decompress(blockcodec.Default, dst, src, w, h, flags)
}

func saveBlock(dst, src []byte, w, h int, flags blockcodec.Flags) error {
	if w < 4 || h < 4 {
		return nil
	}
	return blockcodec.Compress(blockcodec.Default, dst, src, w, h, flags)
}
