// Package pixel implements the VTF pixel-format codec: bidirectional
// converters between a canonical row-major RGBA8888 byte buffer and
// each of the on-disk pixel encodings used by the Valve Source
// Engine's VTF texture container.
//
// The package is stateless (every codec is a pure function of its
// input bytes and dimensions) and reentrant. Callers own both the
// canonical and encoded buffers; pixel never allocates either one.
package pixel
