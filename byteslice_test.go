package surface

import (
	"testing"
	"unsafe"
)

func TestByteSlice_View(t *testing.T) {
	b := FormatRGBA8888.Name()

	if b.Len() != len("RGBA8888") {
		t.Fatalf("Len() = %d, want %d", b.Len(), len("RGBA8888"))
	}
	got := unsafe.String(b.Ptr(), b.Len())
	if got != "RGBA8888" {
		t.Errorf("Ptr/Len view = %q, want RGBA8888", got)
	}
}

func TestByteSlice_Borrowed(t *testing.T) {
	// Repeated lookups return the same static storage.
	a := FormatGray8.Name()
	b := FormatGray8.Name()
	if a.Ptr() != b.Ptr() {
		t.Error("name views should share process-static storage")
	}

	// Bytes returns a copy; mutating it leaves the registry intact.
	cp := a.Bytes()
	cp[0] = 'X'
	if FormatGray8.Name().String() != "Gray8" {
		t.Errorf("registry name changed to %q", FormatGray8.Name())
	}
}

func TestByteSlice_Empty(t *testing.T) {
	var b ByteSlice
	if !b.IsEmpty() || b.Len() != 0 {
		t.Error("zero ByteSlice should be empty")
	}
	if b.Ptr() != nil {
		t.Error("empty ByteSlice Ptr() should be nil")
	}
	if len(b.Bytes()) != 0 {
		t.Error("empty ByteSlice Bytes() should be empty")
	}
}
