//go:build cgo

// Command libsurface builds the surface boundary as a C shared library.
//
//	go build -buildmode=c-shared -o libsurface.so ./cmd/libsurface
//
// Exported symbols keep their historical names:
//
//	uint32_t       surface_format_from_name(const char *name, uint32_t *err);
//	surface_slice  surface_format_name(uint32_t format);
//	uint32_t       surface_error_from_name(const char *name, uint32_t *err);
//	surface_slice  surface_error_name(uint32_t error);
//	uintptr_t      surface_new_from_buf(uint32_t width, uint32_t height,
//	                                    const uint8_t *buf, size_t len,
//	                                    const char *format, uint32_t *err);
//	void           surface_free(uintptr_t handle);
//
// Error out-parameters may be NULL. Returned slices point at storage owned
// by the library for the lifetime of the process and must not be freed.
package main

/*
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
	const unsigned char *ptr;
	size_t len;
} surface_slice;
*/
import "C"

import (
	"unsafe"

	"github.com/gogpu/surface"
	"github.com/gogpu/surface/capi"
)

// names holds C copies of every registry name, keyed by the Go name.
// Built once at load and never freed.
var names = func() map[string]C.surface_slice {
	m := make(map[string]C.surface_slice)
	add := func(b surface.ByteSlice) {
		p := C.CBytes(b.Bytes())
		m[b.String()] = C.surface_slice{ptr: (*C.uchar)(p), len: C.size_t(b.Len())}
	}
	for _, f := range surface.Formats() {
		add(f.Name())
	}
	for _, k := range surface.ErrorKinds() {
		add(k.Name())
	}
	return m
}()

// cslice returns the C copy of a borrowed registry name.
func cslice(b surface.ByteSlice) C.surface_slice {
	if b.IsEmpty() {
		return C.surface_slice{}
	}
	return names[b.String()]
}

// goText copies a NUL-terminated C string including its terminator.
func goText(s *C.char) []byte {
	if s == nil {
		return nil
	}
	n := C.strlen(s)
	return C.GoBytes(unsafe.Pointer(s), C.int(n+1))
}

func setErrno(out *C.uint32_t, status uint32) {
	if out != nil && status != 0 {
		*out = C.uint32_t(status)
	}
}

//export surface_format_from_name
func surface_format_from_name(name *C.char, err *C.uint32_t) C.uint32_t {
	code, status := capi.FormatFromName(goText(name))
	setErrno(err, status)
	return C.uint32_t(code)
}

//export surface_format_name
func surface_format_name(format C.uint32_t) C.surface_slice {
	b, _ := capi.FormatName(uint32(format))
	return cslice(b)
}

//export surface_error_from_name
func surface_error_from_name(name *C.char, err *C.uint32_t) C.uint32_t {
	code, status := capi.ErrorFromName(goText(name))
	setErrno(err, status)
	return C.uint32_t(code)
}

//export surface_error_name
func surface_error_name(code C.uint32_t) C.surface_slice {
	b, _ := capi.ErrorName(uint32(code))
	return cslice(b)
}

//export surface_new_from_buf
func surface_new_from_buf(width, height C.uint32_t, buf *C.uint8_t, length C.size_t, format *C.char, err *C.uint32_t) C.uintptr_t {
	// A NULL buffer or a length beyond MaxInt is reported as InvalidArgument.
	in := capi.Bytes(unsafe.Pointer(buf), uint64(length))
	h, status := capi.SurfaceNewFromBuf(uint32(width), uint32(height), in, uint64(length), goText(format))
	setErrno(err, status)
	return C.uintptr_t(h)
}

//export surface_free
func surface_free(h C.uintptr_t) {
	capi.SurfaceFree(capi.Handle(h))
}

func main() {}
