package pixel

import (
	"errors"
	"testing"

	"github.com/goopsie/vtfpix/pkg/vtferr"
)

func fullEnum() []FormatEnum {
	enum := make([]FormatEnum, numTags)
	for i := range enum {
		t := Tag(i)
		enum[i] = FormatEnum{Tag: t, Name: t.String()}
	}
	return enum
}

func TestInitAcceptsMatchingEnum(t *testing.T) {
	if err := Init(fullEnum()); err != nil {
		t.Fatalf("Init: %v", err)
	}
}

func TestInitRejectsNameMismatch(t *testing.T) {
	enum := fullEnum()
	enum[0].Name = "NOT_RGBA8888"
	err := Init(enum)
	if err == nil {
		t.Fatal("expected a vtferr.InitializationMismatch")
	}
	var mismatch *vtferr.InitializationMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf("got %T, want *vtferr.InitializationMismatch", err)
	}
}

func TestInitRejectsOutOfRangeTag(t *testing.T) {
	err := Init([]FormatEnum{{Tag: Tag(numTags), Name: "garbage"}})
	if err == nil {
		t.Fatal("expected an error for an out-of-range tag")
	}
	var invalid *vtferr.InvalidArgument
	if !errors.As(err, &invalid) {
		t.Fatalf("got %T, want *vtferr.InvalidArgument", err)
	}
}

func TestLoadSaveUnsupportedFormats(t *testing.T) {
	for _, tag := range []Tag{P8, RGBA16161616F, RGBA16161616, None, ATI1N} {
		buf := make([]byte, 64)
		if err := Load(tag, buf, buf, 2, 2); err == nil {
			t.Errorf("%s: expected Load to fail", tag)
		}
		if err := Save(tag, buf, buf, 2, 2); err == nil {
			t.Errorf("%s: expected Save to fail", tag)
		}
	}
}

func TestLoadSaveRGBARoundTrip2x2(t *testing.T) {
	// S1 from spec §8.
	canonical := []byte{
		10, 20, 30, 40,
		50, 60, 70, 80,
		90, 100, 110, 120,
		130, 140, 150, 160,
	}
	encoded := make([]byte, len(canonical))
	if err := Save(RGBA8888, canonical, encoded, 2, 2); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out := make([]byte, len(canonical))
	if err := Load(RGBA8888, out, encoded, 2, 2); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i := range canonical {
		if out[i] != canonical[i] {
			t.Fatalf("byte %d: got %d, want %d", i, out[i], canonical[i])
		}
	}
}

func TestBGRASwap1x1(t *testing.T) {
	// S2 from spec §8.
	canonical := []byte{11, 22, 33, 44}
	encoded := make([]byte, 4)
	if err := Save(BGRA8888, canonical, encoded, 1, 1); err != nil {
		t.Fatalf("Save: %v", err)
	}
	want := []byte{33, 22, 11, 44}
	for i := range want {
		if encoded[i] != want[i] {
			t.Fatalf("encoded byte %d: got %d, want %d", i, encoded[i], want[i])
		}
	}
	out := make([]byte, 4)
	if err := Load(BGRA8888, out, encoded, 1, 1); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i := range canonical {
		if out[i] != canonical[i] {
			t.Fatalf("decoded byte %d: got %d, want %d", i, out[i], canonical[i])
		}
	}
}

func TestInvalidTagRejected(t *testing.T) {
	buf := make([]byte, 16)
	if err := Load(Tag(-1), buf, buf, 2, 2); err == nil {
		t.Fatal("expected an error for a negative tag")
	}
	if err := Save(Tag(numTags+5), buf, buf, 2, 2); err == nil {
		t.Fatal("expected an error for an out-of-range tag")
	}
}
