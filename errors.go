// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorKind is a boundary failure reason from the closed error registry.
//
// ErrorKind implements error, so the typed API returns it (usually wrapped
// with context) and callers test for it with errors.Is. Two ErrorKind
// values are equal iff their codes are equal.
type ErrorKind uint32

// Registered error kinds. Codes are stable and never reused.
const (
	// OK is the reserved success code. It is never registered and has no name.
	OK ErrorKind = 0

	// BadFormatName reports an unrecognized pixel format name.
	BadFormatName ErrorKind = 1

	// InvalidSize reports a buffer whose length does not match the size
	// implied by width, height and format.
	InvalidSize ErrorKind = 2

	// InvalidArgument reports zero dimensions or otherwise malformed input.
	InvalidArgument ErrorKind = 3
)

// ErrUnknownErrorName is returned by LookupErrorKind for names that are not
// registered. It is deliberately not an ErrorKind: the error registry cannot
// report its own lookup failures through itself.
var ErrUnknownErrorName = errors.New("surface: unknown error name")

// errorNames is indexed by code. Index 0 is reserved for OK.
var errorNames = [...]string{
	BadFormatName:   "BadFormatName",
	InvalidSize:     "InvalidSize",
	InvalidArgument: "InvalidArgument",
}

var errorByName = func() map[string]ErrorKind {
	m := make(map[string]ErrorKind, len(errorNames)-1)
	for code := 1; code < len(errorNames); code++ {
		m[errorNames[code]] = ErrorKind(code)
	}
	return m
}()

// LookupErrorKind resolves an error kind by its exact, case-sensitive name.
// Unknown names return an error wrapping ErrUnknownErrorName.
func LookupErrorKind(name string) (ErrorKind, error) {
	k, ok := errorByName[name]
	if !ok {
		return OK, fmt.Errorf("%w: %q", ErrUnknownErrorName, name)
	}
	return k, nil
}

// ErrorKindFromCode resolves a raw error code. It returns false for OK and
// for codes that were never registered.
func ErrorKindFromCode(code uint32) (ErrorKind, bool) {
	k := ErrorKind(code)
	return k, k.IsValid()
}

// ErrorKinds returns every registered error kind in code order.
func ErrorKinds() []ErrorKind {
	out := make([]ErrorKind, 0, len(errorNames)-1)
	for code := 1; code < len(errorNames); code++ {
		out = append(out, ErrorKind(code))
	}
	return out
}

// AsErrorKind returns the ErrorKind found in err's chain.
// It returns OK for a nil error and InvalidArgument for errors that carry
// no kind, so every failure maps to a nonzero status.
func AsErrorKind(err error) ErrorKind {
	if err == nil {
		return OK
	}
	var k ErrorKind
	if errors.As(err, &k) && k != OK {
		return k
	}
	return InvalidArgument
}

// IsValid reports whether k is a registered error kind.
func (k ErrorKind) IsValid() bool {
	return k != OK && int(k) < len(errorNames)
}

// Code returns the stable integer code.
func (k ErrorKind) Code() uint32 {
	return uint32(k)
}

// Name returns a borrowed view of the kind's name.
// The view is empty for OK and unregistered codes.
func (k ErrorKind) Name() ByteSlice {
	if !k.IsValid() {
		return ByteSlice{}
	}
	return viewOf(errorNames[k])
}

// Error implements the error interface.
func (k ErrorKind) Error() string {
	if !k.IsValid() {
		return "surface: errno(" + strconv.FormatUint(uint64(k), 10) + ")"
	}
	return "surface: errno(" + strconv.FormatUint(uint64(k), 10) + "): " + errorNames[k]
}
