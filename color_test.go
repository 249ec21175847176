package ink

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#141414", InkBlack},
		{"f5f0e6", RicePaper},
		{"#fff", RGB(255, 255, 255)},
		{"A0b", RGB(0xaa, 0x00, 0xbb)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#ggg", "1234567"} {
		_, err := ParseHex(in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestColorText(t *testing.T) {
	b, err := InkBlack.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "#141414" {
		t.Errorf("MarshalText() = %q, want #141414", b)
	}

	var c Color
	if err := c.UnmarshalText([]byte("#c83c32")); err != nil {
		t.Fatal(err)
	}
	if c != RGB(0xc8, 0x3c, 0x32) {
		t.Errorf("UnmarshalText() = %v, want #c83c32", c)
	}
	if err := c.UnmarshalText([]byte("red")); err == nil {
		t.Error("UnmarshalText(red) = nil, want error")
	}
}
