package format

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"deck.pptx", PPTX},
		{"deck.PPTX", PPTX},
		{"macro.pptm", PPTX},
		{"template.potx", PPTX},
		{"template.potm", PPTX},
		{"doc.docx", Unknown},
		{"file.pdf", Unknown},
		{"noext", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Detect(tt.filename); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	if got := PPTX.String(); got != "PPTX" {
		t.Errorf("PPTX.String() = %q", got)
	}
	if got := Unknown.String(); got != "Unknown" {
		t.Errorf("Unknown.String() = %q", got)
	}
}

func TestFormat_Extension(t *testing.T) {
	if got := PPTX.Extension(); got != ".pptx" {
		t.Errorf("PPTX.Extension() = %q", got)
	}
	if got := Unknown.Extension(); got != "" {
		t.Errorf("Unknown.Extension() = %q", got)
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"zip signature", []byte{0x50, 0x4B, 0x03, 0x04, 0x00}, PPTX},
		{"pdf signature", []byte("%PDF-1.7"), Unknown},
		{"too short", []byte{0x50, 0x4B}, Unknown},
		{"empty", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic = %v, want %v", got, tt.want)
			}
		})
	}
}
