// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Resize returns a new width x height Surface with the receiver's format,
// scaled with the configured interpolator (draw.CatmullRom by default).
// The receiver is not modified.
//
// A released receiver or zero target dimensions are InvalidArgument.
func (s *Surface) Resize(width, height uint32, opts ...Option) (*Surface, error) {
	pix, err := s.pixels()
	if err != nil {
		return nil, fmt.Errorf("surface: resize: %w", err)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("surface: resize: dimensions %dx%d: %w", width, height, InvalidArgument)
	}
	n, ok := s.format.ImageBytes(width, height)
	if !ok || n > uint64(maxInt) {
		return nil, fmt.Errorf("surface: resize: %dx%d %s: %w", width, height, s.format, InvalidSize)
	}

	o := buildOptions(opts)

	src := toImage(s.format, s.width, s.height, pix)
	dst := newImage(s.format, width, height)
	o.scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	out := o.pool.Get(int(n))
	fromImage(s.format, dst, out)

	o.log().Debug("surface: resized",
		"from", fmt.Sprintf("%dx%d", s.width, s.height),
		"to", fmt.Sprintf("%dx%d", width, height),
		"format", s.format.String())
	return newSurface(width, height, s.format, out, &o), nil
}

const maxInt = int(^uint(0) >> 1)

// newImage allocates the working image for a format: Gray8 scales as
// *image.Gray, every color format as straight-alpha *image.NRGBA.
func newImage(f Format, width, height uint32) draw.Image {
	r := image.Rect(0, 0, int(width), int(height))
	if f == FormatGray8 {
		return image.NewGray(r)
	}
	return image.NewNRGBA(r)
}

// toImage copies pix into a working image.
func toImage(f Format, width, height uint32, pix []byte) draw.Image {
	img := newImage(f, width, height)
	switch m := img.(type) {
	case *image.Gray:
		copy(m.Pix, pix)
	case *image.NRGBA:
		swizzleIn(f, m.Pix, pix)
	}
	return img
}

// fromImage copies a working image back into the format's byte layout.
func fromImage(f Format, img draw.Image, out []byte) {
	switch m := img.(type) {
	case *image.Gray:
		copy(out, m.Pix)
	case *image.NRGBA:
		swizzleOut(f, out, m.Pix)
	}
}

// swizzleIn converts pixels of format f into RGBA order.
func swizzleIn(f Format, rgba, pix []byte) {
	switch f {
	case FormatRGBA8888:
		copy(rgba, pix)
	case FormatBGRA8888:
		for i := 0; i+3 < len(pix); i += 4 {
			rgba[i], rgba[i+1], rgba[i+2], rgba[i+3] = pix[i+2], pix[i+1], pix[i], pix[i+3]
		}
	case FormatRGB888:
		for i, j := 0, 0; i+2 < len(pix); i, j = i+3, j+4 {
			rgba[j], rgba[j+1], rgba[j+2], rgba[j+3] = pix[i], pix[i+1], pix[i+2], 0xff
		}
	}
}

// swizzleOut converts RGBA pixels into the byte order of format f.
func swizzleOut(f Format, pix, rgba []byte) {
	switch f {
	case FormatRGBA8888:
		copy(pix, rgba)
	case FormatBGRA8888:
		for i := 0; i+3 < len(rgba); i += 4 {
			pix[i], pix[i+1], pix[i+2], pix[i+3] = rgba[i+2], rgba[i+1], rgba[i], rgba[i+3]
		}
	case FormatRGB888:
		for i, j := 0, 0; j+3 < len(rgba); i, j = i+3, j+4 {
			pix[i], pix[i+1], pix[i+2] = rgba[j], rgba[j+1], rgba[j+2]
		}
	}
}
