// Package capi is the raw boundary of package surface.
//
// Every entry point takes and returns plain integers, NUL-terminated byte
// strings, borrowed name views and opaque pointer-sized handles, and reports
// failure through a status number instead of a Go error. Nothing in this
// package panics on caller input.
//
// Status numbers are surface.ErrorKind codes; 0 means success. The one
// exception is ErrorFromName, whose status is local: a nonzero value means
// "name unknown" and is not an error kind.
//
// cmd/libsurface publishes these functions under their C symbol names.
package capi
