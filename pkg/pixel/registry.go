package pixel

import (
	"fmt"

	"github.com/goopsie/vtfpix/pkg/vtferr"
)

// LoadFunc decodes an encoded buffer into w*h canonical RGBA8888
// pixels written to dst.
type LoadFunc func(dst, src []byte, w, h int) error

// SaveFunc encodes w*h canonical RGBA8888 pixels from src into dst.
type SaveFunc func(dst, src []byte, w, h int) error

type entry struct {
	name string
	load LoadFunc
	save SaveFunc
}

// registry is the fixed-size, once-initialized dispatch table spec
// §4.D describes. Tags with no load or save function (P8, the HDR
// variants, NONE, ATI1N) are registered by name only; calling Load or
// Save for them returns a *vtferr.Unsupported.
var registry = [numTags]entry{
	RGBA8888:         {name: "RGBA8888", load: loadRGBA8888, save: saveRGBA8888},
	ABGR8888:         {name: "ABGR8888", load: loadABGR8888, save: saveABGR8888},
	RGB888:           {name: "RGB888", load: loadRGB888, save: saveRGB888},
	BGR888:           {name: "BGR888", load: loadBGR888, save: saveBGR888},
	RGB565:           {name: "RGB565", load: loadRGB565, save: saveRGB565},
	I8:               {name: "I8", load: loadI8, save: saveI8},
	IA88:             {name: "IA88", load: loadIA88, save: saveIA88},
	P8:               {name: "P8"},
	A8:               {name: "A8", load: loadA8, save: saveA8},
	RGB888Bluescreen: {name: "RGB888_BLUESCREEN", load: loadRGB888Bluescreen, save: saveRGB888Bluescreen},
	BGR888Bluescreen: {name: "BGR888_BLUESCREEN", load: loadBGR888Bluescreen, save: saveBGR888Bluescreen},
	ARGB8888:         {name: "ARGB8888", load: loadARGB8888, save: saveARGB8888},
	BGRA8888:         {name: "BGRA8888", load: loadBGRA8888, save: saveBGRA8888},
	DXT1:             {name: "DXT1", load: loadDXT1, save: saveDXT1},
	DXT3:             {name: "DXT3", load: loadDXT3, save: saveDXT3},
	DXT5:             {name: "DXT5", load: loadDXT5, save: saveDXT5},
	BGRX8888:         {name: "BGRX8888", load: loadBGRX8888, save: saveBGRX8888},
	BGR565:           {name: "BGR565", load: loadBGR565, save: saveBGR565},
	BGRX5551:         {name: "BGRX5551", load: loadBGRX5551, save: saveBGRX5551},
	BGRA4444:         {name: "BGRA4444", load: loadBGRA4444, save: saveBGRA4444},
	DXT1OneBitAlpha:  {name: "DXT1_ONEBITALPHA", load: loadDXT1OneBitAlpha, save: saveDXT1OneBitAlpha},
	BGRA5551:         {name: "BGRA5551", load: loadBGRA5551, save: saveBGRA5551},
	UV88:             {name: "UV88", load: loadUV88, save: saveUV88},
	UVWQ8888:         {name: "UVWQ8888", load: loadRaw8888, save: saveRaw8888},
	RGBA16161616F:    {name: "RGBA16161616F"},
	RGBA16161616:     {name: "RGBA16161616"},
	UVLX8888:         {name: "UVLX8888", load: loadRaw8888, save: saveRaw8888},
	None:             {name: "NONE"},
	ATI2N:            {name: "ATI2N", load: loadATI2N, save: saveATI2N},
	ATI1N:            {name: "ATI1N"},
}

// FormatEnum is one (tag, name) pair from the caller's own format
// enumeration, as supplied to Init.
type FormatEnum struct {
	Tag  Tag
	Name string
}

// Init validates that every tag in enum carries the same name this
// package's registry has for it. A mismatch means the caller's format
// enumeration and this package's have drifted out of sync and is
// fatal at startup, per spec §4.D/§7.
func Init(enum []FormatEnum) error {
	for _, e := range enum {
		if !e.Tag.IsValid() {
			return &vtferr.InvalidArgument{Msg: fmt.Sprintf("tag %d out of range [0, %d)", int(e.Tag), numTags)}
		}
		if want := registry[e.Tag].name; want != e.Name {
			return &vtferr.InitializationMismatch{Tag: int(e.Tag), Got: e.Name, Want: want}
		}
	}
	return nil
}

// Load fills 4*w*h bytes of canonical RGBA8888 into dstCanonical by
// decoding srcEncoded as tag.
func Load(tag Tag, dstCanonical, srcEncoded []byte, w, h int) error {
	if !tag.IsValid() {
		return &vtferr.InvalidArgument{Msg: fmt.Sprintf("tag %d out of range [0, %d)", int(tag), numTags)}
	}
	e := registry[tag]
	if e.load == nil {
		return &vtferr.Unsupported{Format: e.name, Op: "load"}
	}
	return e.load(dstCanonical, srcEncoded, w, h)
}

// Save fills tag's declared byte count into dstEncoded by encoding
// srcCanonical.
func Save(tag Tag, srcCanonical, dstEncoded []byte, w, h int) error {
	if !tag.IsValid() {
		return &vtferr.InvalidArgument{Msg: fmt.Sprintf("tag %d out of range [0, %d)", int(tag), numTags)}
	}
	e := registry[tag]
	if e.save == nil {
		return &vtferr.Unsupported{Format: e.name, Op: "save"}
	}
	return e.save(dstEncoded, srcCanonical, w, h)
}
