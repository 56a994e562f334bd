// Package present turns a canonical RGBA8888 buffer into the RGB byte
// layouts downstream viewers and exporters expect: a netpbm P6 stream
// or a flattened RGB buffer composited against an optional background.
package present
