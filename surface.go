// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
)

// State is the lifecycle state of a surface handle.
type State uint32

const (
	// StateUncreated denotes "no surface": construction never succeeded.
	StateUncreated State = iota

	// StateLive denotes a surface that owns its buffer.
	StateLive

	// StateReleased is terminal. The buffer has been given up.
	StateReleased
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUncreated:
		return "Uncreated"
	case StateLive:
		return "Live"
	case StateReleased:
		return "Released"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Surface is an owned pixel buffer tagged with width, height and format.
//
// The buffer length always equals width*height*BytesPerPixel(format). It is
// validated once at construction and never changes: operations that change
// size or content return a new Surface.
//
// A nil *Surface denotes "no surface". Release and the accessors are safe
// on it.
//
// Thread safety: different surfaces share no mutable state. Release uses an
// atomic transition, so the buffer is given up at most once even if Release
// is called again.
type Surface struct {
	width  uint32
	height uint32
	format Format

	state atomic.Uint32
	data  []byte

	pool *Pool
	log  *slog.Logger
}

// New creates a surface from a copy of buf.
//
// Validation order, first failure wins:
//  1. formatName must name a registered format, else BadFormatName.
//  2. width and height must be non-zero, else InvalidArgument.
//  3. len(buf) must equal width*height*bytes-per-pixel, else InvalidSize.
//
// The caller's buffer is never retained.
func New(width, height uint32, buf []byte, formatName string, opts ...Option) (*Surface, error) {
	format, err := LookupFormat(formatName)
	if err != nil {
		o := buildOptions(opts)
		o.log().Debug("surface: rejected", "format", formatName, "err", err)
		return nil, fmt.Errorf("surface: new: %w", err)
	}
	return NewWithFormat(width, height, buf, format, opts...)
}

// NewWithFormat is New with an already resolved format.
// The zero Format is reported as BadFormatName.
func NewWithFormat(width, height uint32, buf []byte, format Format, opts ...Option) (*Surface, error) {
	o := buildOptions(opts)

	n, err := validate(width, height, len(buf), format)
	if err != nil {
		o.log().Debug("surface: rejected",
			"width", width, "height", height, "format", format.String(),
			"len", len(buf), "err", err)
		return nil, fmt.Errorf("surface: new: %w", err)
	}

	data := o.pool.Get(n)
	copy(data, buf)

	s := newSurface(width, height, format, data, &o)
	o.log().Debug("surface: created",
		"width", width, "height", height, "format", format.String(), "bytes", n)
	return s, nil
}

// validate checks dimensions and buffer length against format and
// returns the expected byte length.
func validate(width, height uint32, bufLen int, format Format) (int, error) {
	if !format.IsValid() {
		return 0, fmt.Errorf("format %s: %w", format, BadFormatName)
	}
	if width == 0 || height == 0 {
		return 0, fmt.Errorf("dimensions %dx%d: %w", width, height, InvalidArgument)
	}
	want, ok := format.ImageBytes(width, height)
	if !ok || want != uint64(bufLen) {
		return 0, fmt.Errorf("buffer length %d, want %d for %dx%d %s: %w",
			bufLen, want, width, height, format, InvalidSize)
	}
	return bufLen, nil
}

// newSurface wraps an owned, already validated buffer.
func newSurface(width, height uint32, format Format, data []byte, o *options) *Surface {
	s := &Surface{
		width:  width,
		height: height,
		format: format,
		data:   data,
		pool:   o.pool,
		log:    o.log(),
	}
	s.state.Store(uint32(StateLive))
	return s
}

// Release relinquishes ownership of the buffer. It is returned to the pool
// configured with WithPool, or dropped for the garbage collector.
//
// Release on a nil Surface, or on a Surface that is already released, is a
// no-op. The buffer is handed back at most once.
func (s *Surface) Release() {
	if s == nil {
		return
	}
	if !s.state.CompareAndSwap(uint32(StateLive), uint32(StateReleased)) {
		return
	}

	data := s.data
	s.data = nil
	s.pool.Put(data)

	s.log.Debug("surface: released",
		"width", s.width, "height", s.height, "format", s.format.String())
}

// State returns the lifecycle state. A nil Surface is StateUncreated.
func (s *Surface) State() State {
	if s == nil {
		return StateUncreated
	}
	return State(s.state.Load())
}

// Released reports whether Release has been called.
func (s *Surface) Released() bool {
	return s.State() == StateReleased
}

// Width returns the width in pixels, or 0 for a nil Surface.
func (s *Surface) Width() uint32 {
	if s == nil {
		return 0
	}
	return s.width
}

// Height returns the height in pixels, or 0 for a nil Surface.
func (s *Surface) Height() uint32 {
	if s == nil {
		return 0
	}
	return s.height
}

// Format returns the pixel format. A nil Surface has the zero Format.
func (s *Surface) Format() Format {
	if s == nil {
		return Format{}
	}
	return s.format
}

// Len returns the buffer length in bytes, or 0 once released.
func (s *Surface) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// String returns a short description such as "Surface(2x2 RGBA8888 Live)".
func (s *Surface) String() string {
	if s == nil {
		return "Surface(nil)"
	}
	return fmt.Sprintf("Surface(%dx%d %s %s)", s.width, s.height, s.format, s.State())
}

// pixels returns the buffer of a live surface.
func (s *Surface) pixels() ([]byte, error) {
	if s.State() != StateLive {
		return nil, fmt.Errorf("surface %s is not live: %w", s, InvalidArgument)
	}
	return s.data, nil
}
