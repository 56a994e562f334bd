package pixel

import "testing"

func TestUpsample(t *testing.T) {
	cases := []struct {
		bits uint
		in   byte
		want byte
	}{
		{5, 0b11111000, 0b11111111},
		{5, 0, 0},
		{6, 0b11111100, 0b11111111},
		{6, 0, 0},
	}
	for _, c := range cases {
		if got := upsample(c.bits, c.in); got != c.want {
			t.Errorf("upsample(%d, %08b) = %08b, want %08b", c.bits, c.in, got, c.want)
		}
	}
}

func TestUpsampleNibble(t *testing.T) {
	if got := upsampleNibble(0x0F); got != 0xFF {
		t.Errorf("upsampleNibble(0x0F) = %#x, want 0xff", got)
	}
	if got := upsampleNibble(0x00); got != 0x00 {
		t.Errorf("upsampleNibble(0x00) = %#x, want 0x00", got)
	}
}

func TestDecode565White(t *testing.T) {
	r, g, b := decode565(0xFF, 0xFF)
	if r != 0xFF || g != 0xFF || b != 0xFF {
		t.Errorf("decode565(0xff, 0xff) = %d,%d,%d, want 255,255,255", r, g, b)
	}
}

func TestDecode565DropsSubLSBBits(t *testing.T) {
	// 0x07,0x03,0x07 lie entirely below the representable 5/6/5-bit
	// steps (0x08,0x04,0x08), so every channel should collapse to zero.
	low, high := encode565(0x07, 0x03, 0x07)
	r, g, b := decode565(low, high)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("decode565(encode565(0x07, 0x03, 0x07)) = %d,%d,%d, want 0,0,0", r, g, b)
	}
}

func TestEncode565RoundTripWhite(t *testing.T) {
	low, high := encode565(0xFF, 0xFF, 0xFF)
	if low != 0xFF || high != 0xFF {
		t.Fatalf("encode565(255,255,255) = %#x,%#x, want 0xff,0xff", low, high)
	}
	r, g, b := decode565(low, high)
	if r != 0xFF || g != 0xFF || b != 0xFF {
		t.Errorf("round trip = %d,%d,%d, want 255,255,255", r, g, b)
	}
}

func TestEncode565IdempotentAfterFirstQuantization(t *testing.T) {
	low, high := encode565(0x11, 0x22, 0x33)
	r, g, b := decode565(low, high)
	low2, high2 := encode565(r, g, b)
	if low != low2 || high != high2 {
		t.Errorf("second encode differs from first: (%#x,%#x) vs (%#x,%#x)", low, high, low2, high2)
	}
}
