// Package slidenotes extracts speaker notes from PPTX presentations as
// flattened, slide-ordered markup.
//
// Basic usage:
//
//	notes, err := slidenotes.Open("talk.pptx").Notes()
//	if err != nil {
//	    // handle error
//	}
//	for _, n := range notes {
//	    fmt.Println(n.Slide, n.Notes)
//	}
//
// The serialized form is a pretty-printed JSON array with one
// {"slide", "notes"} object per slide, ordered ascending by slide:
//
//	err := slidenotes.Open("talk.pptx").WriteJSON("talk.notes.json")
//
// For lower-level access, the pptx package is also available.
package slidenotes

import (
	"fmt"
	"os"

	"github.com/tsawler/slidenotes/format"
	"github.com/tsawler/slidenotes/pptx"
)

// Extractor provides a fluent interface for extracting speaker notes
// from a presentation package.
type Extractor struct {
	filename string
	data     []byte

	// Accumulated error (fail-fast)
	err error
}

// Open prepares an Extractor for a presentation file. The input format
// is checked by extension; terminal operations surface the error for
// unsupported inputs.
//
// Example:
//
//	notes, err := slidenotes.Open("talk.pptx").Notes()
func Open(filename string) *Extractor {
	e := &Extractor{filename: filename}
	if format.Detect(filename) == format.Unknown {
		e.err = fmt.Errorf("slidenotes: unsupported input format: %s", filename)
	}
	return e
}

// FromBytes prepares an Extractor over an in-memory package.
func FromBytes(data []byte) *Extractor {
	return &Extractor{data: data}
}

func (e *Extractor) open() (*pptx.Package, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.data != nil {
		return pptx.NewPackage(e.data)
	}
	return pptx.OpenPackage(e.filename)
}

// Notes extracts one record per slide with notes, ordered ascending by
// slide index.
func (e *Extractor) Notes() (pptx.NotesDocument, error) {
	p, err := e.open()
	if err != nil {
		return nil, err
	}
	defer p.Close()
	return pptx.CollectNotes(p), nil
}

// JSON extracts the notes and serializes them as a pretty-printed
// array.
func (e *Extractor) JSON() ([]byte, error) {
	doc, err := e.Notes()
	if err != nil {
		return nil, err
	}
	return doc.JSON()
}

// WriteJSON extracts the notes and writes the serialized array to the
// given path.
func (e *Extractor) WriteJSON(path string) error {
	data, err := e.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	notes := slidenotes.Must(slidenotes.Open("talk.pptx").Notes())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
