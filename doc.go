// Package surface provides pixel surfaces, pixel formats and error kinds
// with a stable boundary for callers on the other side of a C ABI.
//
// # Overview
//
// The package is made of three pieces:
//
//   - [Format]: a closed set of pixel formats with stable codes and names.
//   - [ErrorKind]: a closed set of failure reasons with stable codes and names.
//   - [Surface]: an owned pixel buffer tagged with width, height and format.
//
// Names are handed out as [ByteSlice] views over process-static storage.
// They are never copied on lookup and there is nothing to free.
//
// # Quick Start
//
//	import "github.com/gogpu/surface"
//
//	buf := make([]byte, 2*2*4)
//	s, err := surface.New(2, 2, buf, "RGBA8888")
//	if err != nil {
//	    // errors.Is(err, surface.InvalidSize) etc.
//	}
//	defer s.Release()
//
// # Ownership
//
// [New] copies the caller's buffer; the caller may reuse it immediately.
// A Surface is released exactly once. Calling [Surface.Release] on a nil
// Surface or on a Surface that was already released is a no-op.
//
// Surfaces are never mutated in place. [Surface.Resize] and [Composite]
// return new surfaces.
//
// # Boundary
//
// Package capi exposes the same operations through raw integer codes,
// status numbers and opaque handles. cmd/libsurface exports that boundary
// as a C shared library.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package surface
