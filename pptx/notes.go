package pptx

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/slidenotes/dom"
	"github.com/tsawler/slidenotes/markup"
)

// notesToken marks an entry as a notes slide, matched case-insensitively
// anywhere in the entry identifier.
const notesToken = "notesslide"

// notesIndexPattern extracts the slide index from names like
// "ppt/notesSlides/notesSlide7.xml".
var notesIndexPattern = regexp.MustCompile(`(?i)notesslide(\d+)\.xml$`)

// isNotesEntry reports whether an entry identifier follows the
// notes-slide naming convention.
func isNotesEntry(name string) bool {
	return strings.Contains(strings.ToLower(name), notesToken)
}

// slideIndex returns the trailing numeric suffix of a notes entry name,
// or -1 when the name has no parsable suffix.
func slideIndex(name string) int {
	m := notesIndexPattern.FindStringSubmatch(name)
	if m == nil {
		return -1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return n
}

// CollectNotes walks every notes-slide entry in the package, flattens
// its paragraphs into markup, and returns one record per slide, sorted
// ascending by slide index. Entries whose content fails to parse or
// has no notes body are skipped; nothing at this layer is fatal.
func CollectNotes(p *Package) NotesDocument {
	var doc NotesDocument
	for _, name := range p.EntryNames() {
		if !isNotesEntry(name) {
			continue
		}
		text, err := p.EntryText(name)
		if err != nil {
			continue
		}
		rec, ok := notesFrom(name, dom.ParseString(text))
		if !ok {
			continue
		}
		doc = append(doc, rec)
	}

	// Collection order tracks archive enumeration and is unspecified;
	// this sort is the only ordering guarantee.
	sort.SliceStable(doc, func(i, j int) bool {
		return doc[i].Slide < doc[j].Slide
	})
	return doc
}

// notesFrom builds one slide record from a parsed notes entry. The
// notes body is the "notes" document element; when the tree has none
// (including a nil tree from unparsable content) the entry yields no
// record. A body with no paragraphs still yields a record with the
// empty string.
func notesFrom(name string, root *dom.Node) (SlideNotes, bool) {
	body := notesBody(root)
	if body == nil {
		return SlideNotes{}, false
	}

	var b strings.Builder
	for _, p := range body.Elements("p") {
		b.WriteString(markup.Paragraph(p))
	}
	notes := norm.NFC.String(strings.TrimSpace(b.String()))

	return SlideNotes{Slide: slideIndex(name), Notes: notes}, true
}

// notesBody locates the notes-body container in the tree.
func notesBody(root *dom.Node) *dom.Node {
	if root == nil {
		return nil
	}
	if root.Kind == dom.ElementNode && root.Name == "notes" {
		return root
	}
	return root.First("notes")
}
