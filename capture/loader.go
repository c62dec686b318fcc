package capture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Loader reads a capture file into memory. The comparator takes a
// Loader rather than a path-reading function so tests can substitute
// in-memory captures.
type Loader interface {
	// Load reads and decodes the capture at path. It either fully
	// succeeds or fails, there is no partial result.
	Load(path string) (*Capture, error)
}

// FileLoader loads captures from the local filesystem. Each capture is
// read exactly once per comparison, no caching.
type FileLoader struct{}

// NewFileLoader creates a filesystem-backed capture loader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

func (l *FileLoader) Load(path string) (*Capture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read capture %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	return &Capture{
		Path: path,
		Size: int64(len(data)),
		Hash: fmt.Sprintf("%x", xxhash.Sum64(data)),
		Log:  doc.Log,
	}, nil
}
