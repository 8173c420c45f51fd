// Package convert produces a PDF rendition of a presentation package
// by driving an external office converter. The converter binary is
// executed behind a small interface so the invocation logic is
// testable without LibreOffice installed.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultBin is the converter binary looked up on PATH.
	DefaultBin = "soffice"
	// targetFormat is the rendition format passed to the converter.
	targetFormat = "pdf"
	// DefaultTimeout bounds a single conversion run.
	DefaultTimeout = 2 * time.Minute
)

// ErrRenditionMissing is returned when the converter exits cleanly but
// the expected rendition file is not present in the output directory.
// Callers should treat it as a warning, not an abort.
var ErrRenditionMissing = errors.New("convert: rendition not found after conversion")

// Renderer produces a fixed-layout rendition of an input file inside
// outDir and returns the rendition path.
type Renderer interface {
	Render(inputPath, outDir string) (string, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

// Soffice renders presentations to PDF with a headless LibreOffice.
type Soffice struct {
	// Bin overrides the converter binary; empty means DefaultBin.
	Bin string
	// Timeout bounds the conversion; zero means DefaultTimeout.
	Timeout time.Duration

	exec executor
}

// NewSoffice returns a renderer using the default binary and timeout.
func NewSoffice() *Soffice {
	return &Soffice{exec: osExecutor{}}
}

// Render converts inputPath to PDF inside outDir. The converter names
// the rendition <input-basename>.pdf; if that file is absent after a
// clean exit, Render returns ErrRenditionMissing.
func (s *Soffice) Render(inputPath, outDir string) (string, error) {
	bin := s.Bin
	if bin == "" {
		bin = DefaultBin
	}
	if s.exec == nil {
		s.exec = osExecutor{}
	}

	if _, err := s.exec.LookPath(bin); err != nil {
		return "", fmt.Errorf("converter %s not found on PATH: %w", bin, err)
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	args := []string{"--headless", "--convert-to", targetFormat, "--outdir", outDir, inputPath}
	if err := s.exec.Run(ctx, bin, args...); err != nil {
		return "", fmt.Errorf("converting %s to %s: %w", inputPath, targetFormat, err)
	}

	rendition := filepath.Join(outDir, Stem(inputPath)+"."+targetFormat)
	if _, err := os.Stat(rendition); err != nil {
		return "", fmt.Errorf("%w: expected %s", ErrRenditionMissing, rendition)
	}
	return rendition, nil
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Place moves a rendition to the caller-specified destination path.
func Place(renditionPath, destPath string) error {
	if renditionPath == destPath {
		return nil
	}
	if err := os.Rename(renditionPath, destPath); err != nil {
		return fmt.Errorf("placing rendition at %s: %w", destPath, err)
	}
	return nil
}
