package pixel

import "testing"

func TestRGB888BluescreenPureBlueBecomesTransparentBlack(t *testing.T) {
	// S4 from spec §8.
	canonical := []byte{0, 0, 255, 255}
	encoded := make([]byte, 3)
	if err := Save(RGB888Bluescreen, canonical, encoded, 1, 1); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if encoded[0] != 0 || encoded[1] != 0 || encoded[2] != 255 {
		t.Fatalf("encoded = %v, want [0 0 255]", encoded)
	}
	out := make([]byte, 4)
	if err := Load(RGB888Bluescreen, out, encoded, 1, 1); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("decoded byte %d = %d, want 0", i, v)
		}
	}
}

func TestRGB888BluescreenNearBlueStaysOpaque(t *testing.T) {
	canonical := []byte{0, 0, 254, 200}
	encoded := make([]byte, 3)
	if err := Save(RGB888Bluescreen, canonical, encoded, 1, 1); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if encoded[0] != 0 || encoded[1] != 0 || encoded[2] != 254 {
		t.Fatalf("encoded = %v, want [0 0 254]", encoded)
	}
	out := make([]byte, 4)
	if err := Load(RGB888Bluescreen, out, encoded, 1, 1); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out[0] != 0 || out[1] != 0 || out[2] != 254 || out[3] != 255 {
		t.Fatalf("decoded = %v, want [0 0 254 255]", out)
	}
}

func TestRGB888BluescreenDiscardsAlphaBelow128(t *testing.T) {
	canonical := []byte{10, 20, 30, 10} // low alpha, non-blue color
	encoded := make([]byte, 3)
	if err := Save(RGB888Bluescreen, canonical, encoded, 1, 1); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if encoded[0] != 0 || encoded[1] != 0 || encoded[2] != 255 {
		t.Fatalf("low-alpha pixel should save as pure blue, got %v", encoded)
	}
}

func TestBGR888BluescreenByteOrder(t *testing.T) {
	canonical := []byte{0, 0, 255, 255} // pure blue
	encoded := make([]byte, 3)
	if err := Save(BGR888Bluescreen, canonical, encoded, 1, 1); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// BGR order: B,G,R on disk; pure blue is still B=255,G=0,R=0.
	if encoded[0] != 255 || encoded[1] != 0 || encoded[2] != 0 {
		t.Fatalf("encoded = %v, want [255 0 0]", encoded)
	}
}
