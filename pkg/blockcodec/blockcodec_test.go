package blockcodec

import (
	"bytes"
	"testing"
)

// fakeCompressor records what it was asked to compress so tests can
// assert on ForceOpaque handling without linking libsquish.
type fakeCompressor struct {
	lastSrc   []byte
	lastFlags Flags
}

func (f *fakeCompressor) StorageSize(w, h int, flags Flags) int {
	return (w / 4) * (h / 4) * 16
}

func (f *fakeCompressor) Compress(dst, srcRGBA []byte, w, h int, flags Flags) error {
	f.lastSrc = append([]byte(nil), srcRGBA...)
	f.lastFlags = flags
	copy(dst, srcRGBA)
	return nil
}

func (f *fakeCompressor) Decompress(dstRGBA, src []byte, w, h int, flags Flags) error {
	copy(dstRGBA, src)
	return nil
}

func TestCompressForceOpaqueStompsAlphaOnly(t *testing.T) {
	fc := &fakeCompressor{}
	src := []byte{
		10, 20, 30, 40,
		50, 60, 70, 0,
	}
	dst := make([]byte, len(src))

	if err := Compress(fc, dst, src, 1, 2, DXT1|ForceOpaque); err != nil {
		t.Fatalf("Compress: %v", err)
	}

	want := []byte{10, 20, 30, 255, 50, 60, 70, 255}
	if !bytes.Equal(fc.lastSrc, want) {
		t.Errorf("ForceOpaque source = %v, want %v", fc.lastSrc, want)
	}
	// The original caller-owned buffer must be untouched.
	if src[3] != 40 || src[7] != 0 {
		t.Errorf("Compress mutated caller's source buffer: %v", src)
	}
}

func TestCompressWithoutForceOpaquePassesSourceThrough(t *testing.T) {
	fc := &fakeCompressor{}
	src := []byte{10, 20, 30, 40}
	dst := make([]byte, len(src))

	if err := Compress(fc, dst, src, 1, 1, DXT5); err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if !bytes.Equal(fc.lastSrc, src) {
		t.Errorf("source = %v, want unchanged %v", fc.lastSrc, src)
	}
}

func TestCompressRejectsShortSource(t *testing.T) {
	fc := &fakeCompressor{}
	dst := make([]byte, 16)
	err := Compress(fc, dst, []byte{1, 2, 3}, 4, 4, DXT1)
	if err == nil {
		t.Fatal("expected an error for a too-short source buffer")
	}
}

func TestDecompressRejectsShortDestination(t *testing.T) {
	fc := &fakeCompressor{}
	err := Decompress(fc, make([]byte, 4), make([]byte, 8), 4, 4, DXT1)
	if err == nil {
		t.Fatal("expected an error for a too-short destination buffer")
	}
}
