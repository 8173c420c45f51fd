package pptx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrNotArchive is returned when the input bytes cannot be opened as a
// zip package. It is the only fatal error this package produces.
var ErrNotArchive = errors.New("pptx: input is not a zip package")

// Package provides read-only access to the entries of an opened
// presentation package.
type Package struct {
	files  []*zip.File
	closer io.Closer
}

// OpenPackage opens a presentation package on disk.
func OpenPackage(filename string) (*Package, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrNotArchive, filename)
		}
		return nil, fmt.Errorf("opening package %s: %w", filename, err)
	}
	return &Package{files: zr.File, closer: zr}, nil
}

// NewPackage opens a presentation package from raw bytes.
func NewPackage(data []byte) (*Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotArchive, err)
	}
	return &Package{files: zr.File}, nil
}

// Close releases the underlying archive, if the package owns one.
func (p *Package) Close() error {
	if p.closer != nil {
		err := p.closer.Close()
		p.closer = nil
		return err
	}
	return nil
}

// EntryNames returns the identifiers of all entries in the package, in
// archive order. Callers must not rely on this order for output.
func (p *Package) EntryNames() []string {
	names := make([]string, 0, len(p.files))
	for _, f := range p.files {
		names = append(names, f.Name)
	}
	return names
}

// EntryText reads the content of a named entry as text.
func (p *Package) EntryText(name string) (string, error) {
	for _, f := range p.files {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return "", fmt.Errorf("entry not found: %s", name)
}
