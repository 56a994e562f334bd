// Package mipmap downscales a canonical RGBA8888 buffer by one mip
// level: either dimension held fixed or exactly halved.
//
// It generalizes cmd/texconv's box-filter GenerateMipmaps/resizeImage
// pair from arbitrary scale factors and image.Image sampling to the
// fixed offset arithmetic a half-or-nothing ratio makes possible, and
// adds the nearest-neighbor corner filters that box filtering alone
// can't express.
package mipmap
