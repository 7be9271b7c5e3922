// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"math/bits"

	"github.com/gogpu/gputypes"
)

// Format is a pixel storage format from the closed format registry.
//
// A Format can only be obtained from the registry (the exported Format*
// values, LookupFormat, FormatFromCode or FormatForTexture), so its name
// and size are always defined. The zero Format is invalid.
//
// Formats are comparable with ==.
type Format struct {
	code uint32
}

// Registered formats. Codes are stable and never reused.
var (
	// FormatRGB888 is 24-bit RGB, 3 bytes per pixel, no alpha.
	FormatRGB888 = Format{code: 1}

	// FormatRGBA8888 is 32-bit RGBA with straight alpha, 4 bytes per pixel.
	FormatRGBA8888 = Format{code: 2}

	// FormatBGRA8888 is 32-bit BGRA with straight alpha, 4 bytes per pixel.
	// This is the byte order of a little-endian packed ARGB word.
	FormatBGRA8888 = Format{code: 3}

	// FormatGray8 is 8-bit grayscale, 1 byte per pixel.
	FormatGray8 = Format{code: 4}
)

// formatInfo is one row of the format table.
type formatInfo struct {
	name          string
	bytesPerPixel uint32
	hasAlpha      bool
	texture       gputypes.TextureFormat
}

// formatTable is indexed by code. Row 0 is reserved and never registered.
var formatTable = [...]formatInfo{
	0: {},
	1: {name: "RGB888", bytesPerPixel: 3, texture: gputypes.TextureFormatUndefined},
	2: {name: "RGBA8888", bytesPerPixel: 4, hasAlpha: true, texture: gputypes.TextureFormatRGBA8Unorm},
	3: {name: "BGRA8888", bytesPerPixel: 4, hasAlpha: true, texture: gputypes.TextureFormatBGRA8Unorm},
	4: {name: "Gray8", bytesPerPixel: 1, texture: gputypes.TextureFormatR8Unorm},
}

// formatByName is the reverse index of formatTable.
var formatByName = func() map[string]Format {
	m := make(map[string]Format, len(formatTable)-1)
	for code := 1; code < len(formatTable); code++ {
		m[formatTable[code].name] = Format{code: uint32(code)}
	}
	return m
}()

// LookupFormat resolves a format by its exact, case-sensitive name.
// Unknown names return BadFormatName.
func LookupFormat(name string) (Format, error) {
	f, ok := formatByName[name]
	if !ok {
		return Format{}, fmt.Errorf("format %q: %w", name, BadFormatName)
	}
	return f, nil
}

// FormatFromCode resolves a raw format code. It exists for the integer
// boundary; codes that were never produced by the registry return
// InvalidArgument.
func FormatFromCode(code uint32) (Format, error) {
	f := Format{code: code}
	if !f.IsValid() {
		return Format{}, fmt.Errorf("format code %d: %w", code, InvalidArgument)
	}
	return f, nil
}

// FormatForTexture returns the format whose GPU texture format is tf.
// Formats without a texture equivalent are never returned.
func FormatForTexture(tf gputypes.TextureFormat) (Format, bool) {
	if tf == gputypes.TextureFormatUndefined {
		return Format{}, false
	}
	for code := 1; code < len(formatTable); code++ {
		if formatTable[code].texture == tf {
			return Format{code: uint32(code)}, true
		}
	}
	return Format{}, false
}

// Formats returns every registered format in code order.
func Formats() []Format {
	out := make([]Format, 0, len(formatTable)-1)
	for code := 1; code < len(formatTable); code++ {
		out = append(out, Format{code: uint32(code)})
	}
	return out
}

// IsValid reports whether f is a registered format.
func (f Format) IsValid() bool {
	return f.code != 0 && int(f.code) < len(formatTable)
}

func (f Format) info() formatInfo {
	if !f.IsValid() {
		return formatInfo{}
	}
	return formatTable[f.code]
}

// Code returns the stable integer code of the format.
func (f Format) Code() uint32 {
	return f.code
}

// Name returns a borrowed view of the format name.
func (f Format) Name() ByteSlice {
	return viewOf(f.info().name)
}

// String returns the format name, or "Invalid" for the zero Format.
func (f Format) String() string {
	if !f.IsValid() {
		return "Invalid"
	}
	return f.info().name
}

// BytesPerPixel returns the number of bytes per pixel.
func (f Format) BytesPerPixel() uint32 {
	return f.info().bytesPerPixel
}

// HasAlpha reports whether the format carries an alpha channel.
// Alpha is always the last byte of a pixel.
func (f Format) HasAlpha() bool {
	return f.info().hasAlpha
}

// TextureFormat returns the matching GPU texture format, or
// gputypes.TextureFormatUndefined when WebGPU has no equivalent.
func (f Format) TextureFormat() gputypes.TextureFormat {
	if !f.IsValid() {
		return gputypes.TextureFormatUndefined
	}
	return f.info().texture
}

// RowBytes returns the number of bytes in a row of the given width.
func (f Format) RowBytes(width uint32) uint64 {
	return uint64(width) * uint64(f.BytesPerPixel())
}

// ImageBytes returns the number of bytes in a width x height image.
// ok is false when the size does not fit in 64 bits.
func (f Format) ImageBytes(width, height uint32) (n uint64, ok bool) {
	hi, lo := bits.Mul64(f.RowBytes(width), uint64(height))
	return lo, hi == 0
}
