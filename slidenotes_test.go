package slidenotes

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// fixturePPTX builds an in-memory package with two notes slides.
func fixturePPTX(t *testing.T) []byte {
	t.Helper()

	notes := func(text string) string {
		return `<?xml version="1.0"?>
<p:notes xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree><p:sp><p:txBody>
    <a:p><a:r><a:t>` + text + `</a:t></a:r></a:p>
  </p:txBody></p:sp></p:spTree></p:cSld>
</p:notes>`
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"ppt/presentation.xml":            `<p:presentation xmlns:p="x"/>`,
		"ppt/notesSlides/notesSlide2.xml": notes("second slide"),
		"ppt/notesSlides/notesSlide1.xml": notes("first slide"),
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to create %s in zip: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}
	return buf.Bytes()
}

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "talk.pptx")
	if err := os.WriteFile(path, fixturePPTX(t), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen_Notes(t *testing.T) {
	notes, err := Open(writeFixture(t)).Notes()
	if err != nil {
		t.Fatalf("Notes() failed: %v", err)
	}

	if len(notes) != 2 {
		t.Fatalf("got %d records, want 2", len(notes))
	}
	if notes[0].Slide != 1 || notes[1].Slide != 2 {
		t.Errorf("slides = [%d, %d], want [1, 2]", notes[0].Slide, notes[1].Slide)
	}
	if notes[0].Notes != "<p> first slide</p>" {
		t.Errorf("slide 1 notes = %q", notes[0].Notes)
	}
}

func TestOpen_UnsupportedFormat(t *testing.T) {
	_, err := Open("document.docx").Notes()
	if err == nil {
		t.Error("Notes() expected error for unsupported extension")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.pptx")).Notes()
	if err == nil {
		t.Error("Notes() expected error for missing file")
	}
}

func TestFromBytes(t *testing.T) {
	notes, err := FromBytes(fixturePPTX(t)).Notes()
	if err != nil {
		t.Fatalf("Notes() failed: %v", err)
	}
	if len(notes) != 2 {
		t.Errorf("got %d records, want 2", len(notes))
	}
}

func TestExtractor_JSON(t *testing.T) {
	out, err := Open(writeFixture(t)).JSON()
	if err != nil {
		t.Fatalf("JSON() failed: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Errorf("decoded %d elements, want 2", len(decoded))
	}
	if decoded[0]["slide"].(float64) != 1 {
		t.Errorf("first element slide = %v, want 1", decoded[0]["slide"])
	}
}

func TestExtractor_WriteJSON(t *testing.T) {
	path := writeFixture(t)
	outPath := filepath.Join(t.TempDir(), "talk.notes.json")

	if err := Open(path).WriteJSON(outPath); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Error("output should end with a newline")
	}

	// Extraction is idempotent at the file level.
	outPath2 := filepath.Join(t.TempDir(), "again.json")
	if err := Open(path).WriteJSON(outPath2); err != nil {
		t.Fatalf("second WriteJSON failed: %v", err)
	}
	data2, err := os.ReadFile(outPath2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, data2) {
		t.Error("two extractions of identical input produced different bytes")
	}
}

func TestMust(t *testing.T) {
	notes := Must(FromBytes(fixturePPTX(t)).Notes())
	if len(notes) != 2 {
		t.Errorf("Must returned %d records, want 2", len(notes))
	}

	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(Open("nope.docx").Notes())
}
