package export

import (
	"encoding/json"
	"io"

	"github.com/harwatch/hardiff/delta"
)

// WriteJSON writes the ranked rows as an indented JSON array of
// key-value records, UTF-8 encoded.
func WriteJSON(w io.Writer, rows []delta.Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
