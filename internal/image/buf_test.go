package image

import (
	"errors"
	"testing"
)

func TestNewImageBuf(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		format  Format
		wantErr error
	}{
		{"rgba", 4, 3, FormatRGBA8, nil},
		{"gray", 4, 3, FormatGray8, nil},
		{"zero width", 0, 3, FormatRGBA8, ErrInvalidDimensions},
		{"negative height", 4, -1, FormatRGBA8, ErrInvalidDimensions},
		{"bad format", 4, 3, Format(200), ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewImageBuf(tt.w, tt.h, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewImageBuf() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got, want := len(buf.Data()), tt.w*tt.h*tt.format.BytesPerPixel(); got != want {
				t.Errorf("len(Data()) = %d, want %d", got, want)
			}
		})
	}
}

func TestSetGetRGBA(t *testing.T) {
	buf, _ := NewImageBuf(3, 2, FormatRGBA8)
	if err := buf.SetRGBA(2, 1, 10, 20, 30, 40); err != nil {
		t.Fatalf("SetRGBA() error = %v", err)
	}
	r, g, b, a := buf.GetRGBA(2, 1)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("GetRGBA(2,1) = (%d,%d,%d,%d), want (10,20,30,40)", r, g, b, a)
	}
	if err := buf.SetRGBA(3, 0, 0, 0, 0, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetRGBA(out of bounds) error = %v, want %v", err, ErrOutOfBounds)
	}
	if r, g, b, a := buf.GetRGBA(-1, 0); r|g|b|a != 0 {
		t.Errorf("GetRGBA(out of bounds) = (%d,%d,%d,%d), want zero", r, g, b, a)
	}
}

func TestGrayReplicatesChannel(t *testing.T) {
	buf, _ := NewImageBuf(2, 2, FormatGray8)
	_ = buf.SetRGBA(1, 1, 97, 5, 5, 5)
	r, g, b, a := buf.GetRGBA(1, 1)
	if r != 97 || g != 97 || b != 97 || a != 255 {
		t.Errorf("GetRGBA(gray) = (%d,%d,%d,%d), want (97,97,97,255)", r, g, b, a)
	}
}
