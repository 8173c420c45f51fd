// Package format provides input format detection for the slidenotes
// tool.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PPTX indicates a Microsoft PowerPoint (2007+) presentation,
	// including the macro-enabled and template variants — they all
	// share the same zip+XML package structure.
	PPTX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PPTX:
		return "PPTX"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PPTX:
		return ".pptx"
	default:
		return ""
	}
}

// Detect determines the input format from the filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pptx", ".pptm", ".potx", ".potm":
		return PPTX
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes for the zip signature all
// presentation packages share. It cannot distinguish package flavors;
// use Detect on the filename for that.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return PPTX
	}
	return Unknown
}
