package surface

import (
	"errors"
	"fmt"
	"testing"
)

func TestLookupErrorKind_RoundTrip(t *testing.T) {
	for _, k := range ErrorKinds() {
		t.Run(k.Name().String(), func(t *testing.T) {
			got, err := LookupErrorKind(k.Name().String())
			if err != nil {
				t.Fatalf("LookupErrorKind(%q) error = %v", k.Name(), err)
			}
			if got != k {
				t.Errorf("LookupErrorKind(%q) = %d, want %d", k.Name(), got, k)
			}
		})
	}
}

func TestLookupErrorKind_Unknown(t *testing.T) {
	for _, name := range []string{"", "x", "badformatname", "INVALID", "OK"} {
		k, err := LookupErrorKind(name)
		if !errors.Is(err, ErrUnknownErrorName) {
			t.Errorf("LookupErrorKind(%q) error = %v, want ErrUnknownErrorName", name, err)
		}
		if k != OK {
			t.Errorf("LookupErrorKind(%q) = %d, want OK", name, k)
		}
		var kind ErrorKind
		if errors.As(err, &kind) {
			t.Errorf("LookupErrorKind(%q) failure must not carry an ErrorKind, got %d", name, kind)
		}
	}
}

func TestErrorKind_Equality(t *testing.T) {
	a, _ := LookupErrorKind("InvalidSize")
	b, _ := LookupErrorKind("InvalidSize")
	c, _ := LookupErrorKind("InvalidArgument")

	if a != b {
		t.Errorf("same name: %d != %d", a, b)
	}
	if a == c {
		t.Errorf("different names compare equal: %d", a)
	}
	if !errors.Is(fmt.Errorf("wrapped: %w", a), b) {
		t.Error("errors.Is should match kinds with equal codes")
	}
}

func TestErrorKind_Codes(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		code uint32
		name string
	}{
		{BadFormatName, 1, "BadFormatName"},
		{InvalidSize, 2, "InvalidSize"},
		{InvalidArgument, 3, "InvalidArgument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.kind.Code() != tt.code {
				t.Errorf("Code() = %d, want %d", tt.kind.Code(), tt.code)
			}
			if tt.kind.Name().String() != tt.name {
				t.Errorf("Name() = %q, want %q", tt.kind.Name(), tt.name)
			}
			want := fmt.Sprintf("surface: errno(%d): %s", tt.code, tt.name)
			if tt.kind.Error() != want {
				t.Errorf("Error() = %q, want %q", tt.kind.Error(), want)
			}
		})
	}
}

func TestErrorKind_ReservedZero(t *testing.T) {
	for _, k := range ErrorKinds() {
		if k == OK {
			t.Fatal("no registered kind may use code 0")
		}
	}
	if OK.IsValid() {
		t.Error("OK must not be a valid kind")
	}
	if !OK.Name().IsEmpty() {
		t.Errorf("OK.Name() = %q, want empty", OK.Name())
	}
	if _, ok := ErrorKindFromCode(0); ok {
		t.Error("ErrorKindFromCode(0) should fail")
	}
	if _, ok := ErrorKindFromCode(0x41414141); ok {
		t.Error("ErrorKindFromCode(0x41414141) should fail")
	}
	if got := ErrorKind(42).Error(); got != "surface: errno(42)" {
		t.Errorf("ErrorKind(42).Error() = %q", got)
	}
}

func TestAsErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, OK},
		{"bare", InvalidSize, InvalidSize},
		{"wrapped", fmt.Errorf("ctx: %w", BadFormatName), BadFormatName},
		{"double wrapped", fmt.Errorf("a: %w", fmt.Errorf("b: %w", InvalidArgument)), InvalidArgument},
		{"foreign", errors.New("boom"), InvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AsErrorKind(tt.err); got != tt.want {
				t.Errorf("AsErrorKind() = %d, want %d", got, tt.want)
			}
		})
	}
}
