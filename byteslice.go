// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "unsafe"

// ByteSlice is a borrowed, read-only view over bytes owned by a registry.
//
// The bytes live in process-static tables and stay valid for the lifetime
// of the process. ByteSlice carries no ownership: it has no method that
// frees or mutates the underlying storage.
//
// The zero ByteSlice is an empty view.
type ByteSlice struct {
	s string
}

// viewOf wraps a static string. Only registry tables call this.
func viewOf(s string) ByteSlice {
	return ByteSlice{s: s}
}

// Ptr returns a pointer to the first byte of the view, or nil if the view
// is empty. The pointee must never be written.
func (b ByteSlice) Ptr() *byte {
	if len(b.s) == 0 {
		return nil
	}
	return unsafe.StringData(b.s)
}

// Len returns the number of bytes in the view.
func (b ByteSlice) Len() int {
	return len(b.s)
}

// IsEmpty reports whether the view has no bytes.
func (b ByteSlice) IsEmpty() bool {
	return len(b.s) == 0
}

// Bytes returns a copy of the viewed bytes.
func (b ByteSlice) Bytes() []byte {
	out := make([]byte, len(b.s))
	copy(out, b.s)
	return out
}

// String returns the viewed bytes as a string. No copy is made.
func (b ByteSlice) String() string {
	return b.s
}
