// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package capi

import (
	"bytes"

	"github.com/gogpu/surface"
)

// Status codes returned alongside results.
const (
	// StatusOK reports success.
	StatusOK uint32 = 0

	// StatusUnknownName is the local status of ErrorFromName.
	StatusUnknownName uint32 = 1
)

// cstring returns the text before the first NUL of name.
// ok is false for nil input or input without a terminator.
func cstring(name []byte) (string, bool) {
	i := bytes.IndexByte(name, 0)
	if i < 0 {
		return "", false
	}
	return string(name[:i]), true
}

// errno maps an error from package surface to a status code.
func errno(err error) uint32 {
	return surface.AsErrorKind(err).Code()
}

// FormatFromName resolves a NUL-terminated format name.
// On failure code is 0 and status is BadFormatName.
func FormatFromName(name []byte) (code, status uint32) {
	s, ok := cstring(name)
	if !ok {
		surface.Logger().Warn("capi: format name is not NUL-terminated")
		return 0, surface.BadFormatName.Code()
	}
	f, err := surface.LookupFormat(s)
	if err != nil {
		return 0, errno(err)
	}
	return f.Code(), StatusOK
}

// FormatName returns the borrowed name of a format code.
// Codes the registry never produced yield an empty view and InvalidArgument.
func FormatName(code uint32) (surface.ByteSlice, uint32) {
	f, err := surface.FormatFromCode(code)
	if err != nil {
		return surface.ByteSlice{}, errno(err)
	}
	return f.Name(), StatusOK
}

// ErrorFromName resolves a NUL-terminated error name.
// The returned status is local: StatusUnknownName means the name is not
// registered (or the input is malformed) and code is 0.
func ErrorFromName(name []byte) (code, status uint32) {
	s, ok := cstring(name)
	if !ok {
		return 0, StatusUnknownName
	}
	k, err := surface.LookupErrorKind(s)
	if err != nil {
		return 0, StatusUnknownName
	}
	return k.Code(), StatusOK
}

// ErrorName returns the borrowed name of an error code.
// Code 0 and unregistered codes yield an empty view and InvalidArgument.
func ErrorName(code uint32) (surface.ByteSlice, uint32) {
	k, ok := surface.ErrorKindFromCode(code)
	if !ok {
		return surface.ByteSlice{}, surface.InvalidArgument.Code()
	}
	return k.Name(), StatusOK
}
