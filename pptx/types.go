// Package pptx reads PPTX (Office Open XML Presentation) packages and
// extracts per-slide speaker notes as flattened markup.
package pptx

import "encoding/json"

// SlideNotes holds the flattened speaker notes for one slide. Slide is
// the index embedded in the notes entry name, or -1 when the name has
// no parsable numeric suffix.
type SlideNotes struct {
	Slide int    `json:"slide"`
	Notes string `json:"notes"`
}

// NotesDocument is the full set of extracted notes, ordered ascending
// by slide index. The sort is the only ordering guarantee; unparsable
// indexes (-1) sort before all numbered slides.
type NotesDocument []SlideNotes

// JSON serializes the document as a pretty-printed array. An empty
// document serializes as [].
func (d NotesDocument) JSON() ([]byte, error) {
	if d == nil {
		d = NotesDocument{}
	}
	return json.MarshalIndent(d, "", "  ")
}
