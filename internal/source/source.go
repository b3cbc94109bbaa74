// Package source recovers report text from saved report files so the CLI
// can re-parse a report that was exported to disk. Each reader flattens its
// format back to the markdown-like text the parsing engine consumes,
// keeping heading markers intact where the format preserves them.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Reader extracts plain report text from one file format.
type Reader interface {
	Read(r io.Reader, filename string) (string, error)
}

// SupportedExtensions lists the file extensions the CLI can re-parse.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the reader for a filename.
func ForFile(filename string) (Reader, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md", ".markdown":
		return &TextReader{}, nil
	case ".html", ".htm":
		return &HTMLReader{}, nil
	case ".pdf":
		return &PDFReader{}, nil
	case ".docx":
		return &DOCXReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ReadFile opens path and extracts its report text.
func ReadFile(path string) (string, error) {
	reader, err := ForFile(path)
	if err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open report file: %w", err)
	}
	defer f.Close()
	return reader.Read(f, filepath.Base(path))
}

// TextReader handles plain text and markdown files, which already carry the
// report's heading markers verbatim.
type TextReader struct{}

func (p *TextReader) Read(r io.Reader, _ string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
