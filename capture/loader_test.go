package capture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileLoader_LoadValidCapture(t *testing.T) {
	path := writeFile(t, "valid.har", `{
		"log": {
			"version": "1.2",
			"entries": [
				{
					"request": {"url": "https://example.com"},
					"response": {"status": 200},
					"timings": {"wait": 100, "receive": 50}
				}
			]
		}
	}`)

	loaded, err := NewFileLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, loaded.Path)
	assert.Equal(t, "1.2", loaded.Log.Version)
	require.Len(t, loaded.Log.Entries, 1)
	assert.Equal(t, "https://example.com", loaded.Log.Entries[0].Request.URL)
	assert.Equal(t, 200, loaded.Log.Entries[0].Response.StatusCode)
	assert.NotEmpty(t, loaded.Log.Entries[0].Timings)
	assert.Greater(t, loaded.Size, int64(0))
	assert.NotEmpty(t, loaded.Hash)
}

func TestFileLoader_LoadNonexistentFile(t *testing.T) {
	_, err := NewFileLoader().Load(filepath.Join(t.TempDir(), "missing.har"))

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Error(), "missing.har")
}

func TestFileLoader_LoadInvalidJSON(t *testing.T) {
	path := writeFile(t, "broken.har", "{ invalid json content")

	_, err := NewFileLoader().Load(path)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, path, decodeErr.Path)
	assert.NotNil(t, errors.Unwrap(decodeErr))
}

func TestFileLoader_LoadEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.har", "")

	_, err := NewFileLoader().Load(path)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestFileLoader_UnrecognizedFieldsIgnored(t *testing.T) {
	path := writeFile(t, "extra.har", `{
		"log": {
			"creator": {"name": "browser", "version": "1.0"},
			"pages": [{"id": "page_1"}],
			"entries": [
				{
					"request": {"url": "https://example.com", "headersSize": 120},
					"response": {"status": 200, "content": {"size": 5}},
					"timings": {"wait": 1},
					"serverIPAddress": "10.0.0.1"
				}
			]
		}
	}`)

	loaded, err := NewFileLoader().Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Log.Entries, 1)
	assert.Equal(t, "browser", loaded.Log.Creator.Name)
}

func TestFileLoader_HashChangesWithContent(t *testing.T) {
	pathA := writeFile(t, "a.har", `{"log": {"entries": []}}`)
	pathB := writeFile(t, "b.har", `{"log": {"entries": [] }}`)

	capA, err := NewFileLoader().Load(pathA)
	require.NoError(t, err)
	capB, err := NewFileLoader().Load(pathB)
	require.NoError(t, err)

	assert.NotEqual(t, capA.Hash, capB.Hash)
}
