package capi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/surface"
)

// cstr returns s as a NUL-terminated byte string.
func cstr(s string) []byte {
	return append([]byte(s), 0)
}

func TestFormatFromName(t *testing.T) {
	code, status := FormatFromName(cstr("RGBA8888"))
	require.Equal(t, StatusOK, status)
	assert.Equal(t, surface.FormatRGBA8888.Code(), code)

	code, status = FormatFromName(cstr("RGB888"))
	require.Equal(t, StatusOK, status)
	assert.Equal(t, uint32(1), code)
}

func TestFormatFromName_Failures(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"unknown", cstr("bogus")},
		{"case", cstr("rgba8888")},
		{"empty", cstr("")},
		{"nil", nil},
		{"unterminated", []byte("RGBA8888")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, status := FormatFromName(tt.in)
			assert.Equal(t, surface.BadFormatName.Code(), status)
			assert.Zero(t, code)
		})
	}
}

func TestFormatFromName_IgnoresBytesAfterNUL(t *testing.T) {
	code, status := FormatFromName([]byte("Gray8\x00garbage"))
	require.Equal(t, StatusOK, status)
	assert.Equal(t, surface.FormatGray8.Code(), code)
}

func TestFormatName_RoundTrip(t *testing.T) {
	for _, f := range surface.Formats() {
		view, status := FormatName(f.Code())
		require.Equal(t, StatusOK, status)

		name := unsafe.String(view.Ptr(), view.Len())
		code, status := FormatFromName(cstr(name))
		require.Equal(t, StatusOK, status)
		assert.Equal(t, f.Code(), code, "format %s", name)
	}
}

func TestFormatName_Garbage(t *testing.T) {
	for _, code := range []uint32{0, 77, 0x41414141} {
		view, status := FormatName(code)
		assert.Equal(t, surface.InvalidArgument.Code(), status, "code %#x", code)
		assert.True(t, view.IsEmpty())
	}
}

func TestErrorFromName(t *testing.T) {
	for _, k := range surface.ErrorKinds() {
		view, status := ErrorName(k.Code())
		require.Equal(t, StatusOK, status)

		code, local := ErrorFromName(cstr(view.String()))
		require.Equal(t, StatusOK, local)
		assert.Equal(t, k.Code(), code)
	}
}

func TestErrorFromName_UnknownIsLocal(t *testing.T) {
	for _, in := range [][]byte{cstr("x"), cstr("INVALID"), nil, []byte("InvalidSize")} {
		code, local := ErrorFromName(in)
		assert.Equal(t, StatusUnknownName, local)
		assert.Zero(t, code)
	}
}

func TestErrorFromName_Equality(t *testing.T) {
	a, _ := ErrorFromName(cstr("InvalidSize"))
	b, _ := ErrorFromName(cstr("InvalidSize"))
	c, _ := ErrorFromName(cstr("BadFormatName"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestErrorName_Garbage(t *testing.T) {
	for _, code := range []uint32{0, 4, 0x41414141} {
		view, status := ErrorName(code)
		assert.Equal(t, surface.InvalidArgument.Code(), status)
		assert.True(t, view.IsEmpty())
	}
}
