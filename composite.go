// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/gogpu/surface/internal/blend"
)

// Operator is a Porter-Duff compositing operator.
type Operator = blend.Operator

// Porter-Duff operators accepted by Composite.
const (
	OpClear           = blend.Clear
	OpSource          = blend.Source
	OpDestination     = blend.Destination
	OpSourceOver      = blend.SourceOver
	OpDestinationOver = blend.DestinationOver
	OpSourceIn        = blend.SourceIn
	OpDestinationIn   = blend.DestinationIn
	OpSourceOut       = blend.SourceOut
	OpDestinationOut  = blend.DestinationOut
	OpSourceAtop      = blend.SourceAtop
	OpDestinationAtop = blend.DestinationAtop
	OpXor             = blend.Xor
	OpPlus            = blend.Plus
)

// Composite blends src with dst using op and returns the result as a new
// Surface. Neither input is modified.
//
// Both surfaces must be live (else InvalidArgument), have the same
// dimensions (else InvalidSize) and share one format with an alpha channel
// (else BadFormatName). Unknown operators are InvalidArgument.
//
// Pixels are straight alpha. Source, Destination and Clear return an exact
// copy of src, an exact copy of dst and transparent black respectively.
//
// The new surface inherits dst's format and is configured by opts.
func Composite(src, dst *Surface, op Operator, opts ...Option) (*Surface, error) {
	if !op.IsValid() {
		return nil, fmt.Errorf("surface: composite: operator %d: %w", op, InvalidArgument)
	}
	sp, err := src.pixels()
	if err != nil {
		return nil, fmt.Errorf("surface: composite: source: %w", err)
	}
	dp, err := dst.pixels()
	if err != nil {
		return nil, fmt.Errorf("surface: composite: destination: %w", err)
	}
	if src.width != dst.width || src.height != dst.height {
		return nil, fmt.Errorf("surface: composite: %dx%d onto %dx%d: %w",
			src.width, src.height, dst.width, dst.height, InvalidSize)
	}
	if src.format != dst.format || !dst.format.HasAlpha() {
		return nil, fmt.Errorf("surface: composite: %s onto %s: %w",
			src.format, dst.format, BadFormatName)
	}

	o := buildOptions(opts)

	out := o.pool.Get(len(dp))
	blend.Span(op, out, sp, dp)

	o.log().Debug("surface: composited",
		"op", op.String(), "width", dst.width, "height", dst.height, "format", dst.format.String())
	return newSurface(dst.width, dst.height, dst.format, out, &o), nil
}
