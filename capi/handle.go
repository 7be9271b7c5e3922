// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package capi

import (
	"math"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/gogpu/surface"
)

// Handle is an opaque pointer-sized surface handle. 0 means "no surface".
//
// Handles are never reused, so a stale handle can never denote a newer
// surface.
type Handle uintptr

// handles maps live handles to their surfaces.
var (
	handles    sync.Map // Handle -> *surface.Surface
	nextHandle atomic.Uintptr
	liveCount  atomic.Int64
)

// Bytes views n bytes at ptr as a slice without copying.
//
// It returns nil when ptr is nil, n is 0, or n does not fit in an int, so a
// foreign length can never panic the slice conversion. SurfaceNewFromBuf
// then reports the unbacked length as InvalidArgument.
func Bytes(ptr unsafe.Pointer, n uint64) []byte {
	if ptr == nil || n == 0 || n > math.MaxInt {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), int(n))
}

// SurfaceNewFromBuf creates a surface from the first bufLen bytes of buf.
//
// Checks run in order: formatName must resolve (BadFormatName), width and
// height must be non-zero (InvalidArgument), bufLen must not exceed len(buf)
// (InvalidArgument), and bufLen must match the format size (InvalidSize).
// On any failure the handle is 0.
func SurfaceNewFromBuf(width, height uint32, buf []byte, bufLen uint64, formatName []byte) (Handle, uint32) {
	name, ok := cstring(formatName)
	if !ok {
		return 0, surface.BadFormatName.Code()
	}
	format, err := surface.LookupFormat(name)
	if err != nil {
		return 0, errno(err)
	}
	if width == 0 || height == 0 {
		return 0, surface.InvalidArgument.Code()
	}
	if bufLen > uint64(len(buf)) {
		surface.Logger().Warn("capi: buffer length exceeds buffer",
			"len", bufLen, "cap", len(buf))
		return 0, surface.InvalidArgument.Code()
	}

	s, err := surface.NewWithFormat(width, height, buf[:bufLen], format)
	if err != nil {
		return 0, errno(err)
	}

	h := Handle(nextHandle.Add(1))
	handles.Store(h, s)
	liveCount.Add(1)
	return h, surface.OK.Code()
}

// SurfaceFree releases the surface denoted by h.
// Freeing 0, an unknown handle or an already freed handle is a no-op.
func SurfaceFree(h Handle) {
	if h == 0 {
		return
	}
	v, ok := handles.LoadAndDelete(h)
	if !ok {
		surface.Logger().Debug("capi: free of unknown handle", "handle", uintptr(h))
		return
	}
	liveCount.Add(-1)
	v.(*surface.Surface).Release()
}

// Lookup returns the surface behind a live handle.
// The surface stays owned by the handle; callers must not release it.
func Lookup(h Handle) (*surface.Surface, bool) {
	v, ok := handles.Load(h)
	if !ok {
		return nil, false
	}
	return v.(*surface.Surface), true
}

// Live returns the number of live handles.
func Live() int {
	return int(liveCount.Load())
}
