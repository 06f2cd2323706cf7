// Package extract turns an uploaded document into plain notes text.
// Only plain-text formats are handled here; rich formats (PDF, DOCX,
// PPTX) belong to an external extraction service and are rejected.
package extract

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned for document types this stub does not parse.
var ErrUnsupported = errors.New("unsupported document type")

// ErrTooLarge is returned for uploads over the size limit. Truncating
// instead would hand a half-read document to generation.
var ErrTooLarge = errors.New("document too large")

// maxSize caps uploads at 5 MiB of text.
const maxSize = 5 << 20

// Text reads the uploaded file and returns its contents as plain text.
func Text(filename string, r io.Reader) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md", ".text":
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(filename))
	}

	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) > maxSize {
		return "", ErrTooLarge
	}
	return string(data), nil
}
