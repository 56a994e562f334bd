//go:build !cgo

package blockcodec

import "github.com/goopsie/vtfpix/pkg/vtferr"

// Default is a no-op Compressor used when the package is built
// without cgo (no C toolchain, no libsquish installed). It keeps
// pkg/pixel's 20 non-block codecs buildable and testable on their
// own; calling it for any of the block-compressed tags reports
// Unsupported instead of failing the build.
var Default Compressor = noSquishCompressor{}

type noSquishCompressor struct{}

func (noSquishCompressor) StorageSize(w, h int, flags Flags) int {
	return 0
}

func (noSquishCompressor) Compress(dst, srcRGBA []byte, w, h int, flags Flags) error {
	return &vtferr.Unsupported{Format: "block compression (built without cgo)", Op: "save"}
}

func (noSquishCompressor) Decompress(dstRGBA, src []byte, w, h int, flags Flags) error {
	return &vtferr.Unsupported{Format: "block compression (built without cgo)", Op: "load"}
}
