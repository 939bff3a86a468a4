package helpers

import (
	"bytes"
	"testing"
)

func TestIsJPEGData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"jpeg magic", []byte{0xFF, 0xD8, 0xFF, 0xE0}, true},
		{"png magic", []byte{0x89, 0x50, 0x4E, 0x47}, false},
		{"raw bgr", []byte{0x10, 0x20, 0x30}, false},
		{"too short", []byte{0xFF}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsJPEGData(tt.data); got != tt.want {
				t.Errorf("IsJPEGData(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestConvertFrameToJPEGPassthrough(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}

	got, err := ConvertFrameToJPEG(jpeg, 640, 360, 90)
	if err != nil {
		t.Fatalf("ConvertFrameToJPEG: %v", err)
	}
	if !bytes.Equal(got, jpeg) {
		t.Error("JPEG data should pass through unchanged")
	}
}

func TestConvertFrameToJPEGEmpty(t *testing.T) {
	if _, err := ConvertFrameToJPEG(nil, 640, 360, 90); err == nil {
		t.Error("empty frame data should fail")
	}
}

func TestEncodeBGRToJPEGRejectsBadDimensions(t *testing.T) {
	if _, err := EncodeBGRToJPEG(make([]byte, 10), 640, 360, 90); err == nil {
		t.Error("mismatched BGR length should fail")
	}
	if _, err := EncodeBGRToJPEG(nil, 640, 360, 90); err == nil {
		t.Error("empty BGR data should fail")
	}
}
