// vtfpix - pixel-format codec CLI for VTF texture encodings
//
// Reads and writes raw pixel buffers, not full VTF containers: callers
// that already have a VTF parser can pipe a single mip level's pixel
// data through this tool to inspect or re-encode it.
//
// Usage:
//
//	vtfpix decode -format DXT5 -w 64 -h 64 input.raw output.ppm
//	vtfpix encode -format DXT5 -w 64 -h 64 input.rgba output.raw
//	vtfpix info -format DXT5 -w 64 -h 64
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goopsie/vtfpix/pkg/pixel"
	"github.com/goopsie/vtfpix/pkg/present"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "decode":
		if err := runDecode(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "encode":
		if err := runEncode(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "info":
		if err := runInfo(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("vtfpix - VTF pixel-format codec CLI")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  vtfpix decode -format NAME -w W -h H <input.raw> <output.ppm>")
	fmt.Println("  vtfpix encode -format NAME -w W -h H <input.rgba> <output.raw>")
	fmt.Println("  vtfpix info -format NAME -w W -h H")
	fmt.Println()
	fmt.Println("Run 'vtfpix info -format NAME -w 1 -h 1' with any -format to see")
	fmt.Println("whether that tag is registered and how many bytes it needs.")
}

func commonFlags(name string) (fs *flag.FlagSet, format *string, w, h *int) {
	fs = flag.NewFlagSet(name, flag.ExitOnError)
	format = fs.String("format", "", "pixel format tag name, e.g. DXT5")
	w = fs.Int("w", 0, "image width in pixels")
	h = fs.Int("h", 0, "image height in pixels")
	return fs, format, w, h
}

func resolveTag(name string) (pixel.Tag, error) {
	tag, ok := pixel.ParseTag(name)
	if !ok {
		return 0, fmt.Errorf("unknown format %q", name)
	}
	return tag, nil
}

// runDecode reads a tag-encoded raw pixel buffer and writes it out as
// a PPM image (alpha dropped; see present.PPM).
func runDecode(args []string) error {
	fs, format, w, h := commonFlags("decode")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("usage: vtfpix decode -format NAME -w W -h H <input.raw> <output.ppm>")
	}
	tag, err := resolveTag(*format)
	if err != nil {
		return err
	}
	width, height := *w, *h

	encoded, err := os.ReadFile(rest[0])
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	canonical := make([]byte, 4*width*height)
	if err := pixel.Load(tag, canonical, encoded, width, height); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	ppm, err := present.PPM(canonical, width, height, nil)
	if err != nil {
		return fmt.Errorf("render ppm: %w", err)
	}
	if err := os.WriteFile(rest[1], ppm, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("Decoded %s (%s, %dx%d) -> %s\n", rest[0], tag, width, height, rest[1])
	return nil
}

// runEncode reads a raw canonical RGBA8888 buffer and writes it out
// tag-encoded.
func runEncode(args []string) error {
	fs, format, w, h := commonFlags("encode")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("usage: vtfpix encode -format NAME -w W -h H <input.rgba> <output.raw>")
	}
	tag, err := resolveTag(*format)
	if err != nil {
		return err
	}
	width, height := *w, *h

	canonical, err := os.ReadFile(rest[0])
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	encoded := make([]byte, tag.EncodedLen(width, height))
	if err := pixel.Save(tag, canonical, encoded, width, height); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := os.WriteFile(rest[1], encoded, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Printf("Encoded %s -> %s (%s, %dx%d, %d bytes)\n", rest[0], rest[1], tag, width, height, len(encoded))
	return nil
}

// runInfo prints the byte layout vtfpix would use for -format at the
// given dimensions, without touching any file.
func runInfo(args []string) error {
	fs, format, w, h := commonFlags("info")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tag, err := resolveTag(*format)
	if err != nil {
		return err
	}
	width, height := *w, *h
	fmt.Printf("Format: %s (tag %d)\n", tag, int(tag))
	fmt.Printf("Dimensions: %dx%d\n", width, height)
	fmt.Printf("Encoded size: %d bytes\n", tag.EncodedLen(width, height))
	fmt.Printf("Canonical size: %d bytes (RGBA8888)\n", 4*width*height)
	return nil
}
