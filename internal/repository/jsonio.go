package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/openalabama/courtrecords/internal/records"
)

// archiveSchema validates the JSON archive envelope on read, so a
// mistyped or truncated file fails loudly instead of parsing into an
// empty archive.
const archiveSchema = `{
  "type": "object",
  "required": ["data"],
  "properties": {
    "data": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["path", "text", "timestamp"],
        "properties": {
          "path": {"type": "string"},
          "text": {"type": "string"},
          "timestamp": {"type": "number"}
        }
      }
    }
  }
}`

var compiledArchiveSchema = jsonschema.MustCompileString("archive.json", archiveSchema)

type archiveEnvelope struct {
	Data []archiveEntry `json:"data"`
}

type archiveEntry struct {
	Path      string  `json:"path"`
	Text      string  `json:"text"`
	Timestamp float64 `json:"timestamp"`
}

// WriteJSON writes the archive to path as a {"data": [...]} envelope.
func (a *Archive) WriteJSON(path string) error {
	env := archiveEnvelope{Data: make([]archiveEntry, len(a.Cases))}
	for i, c := range a.Cases {
		env.Data[i] = archiveEntry{Path: c.Path, Text: c.Text, Timestamp: c.Timestamp}
	}
	body, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding archive: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("writing archive %s: %w", path, err)
	}
	return nil
}

// ReadJSON loads and validates a JSON archive.
func ReadJSON(path string) (*Archive, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading archive %s: %w", path, err)
	}

	var doc any
	if err := json.NewDecoder(strings.NewReader(string(body))).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding archive %s: %w", path, err)
	}
	if err := compiledArchiveSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validating archive %s: %w", path, err)
	}

	var env archiveEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding archive %s: %w", path, err)
	}
	a := &Archive{Cases: make([]records.RawCase, len(env.Data))}
	for i, e := range env.Data {
		a.Cases[i] = records.RawCase{Path: e.Path, Text: e.Text, Timestamp: e.Timestamp}
	}
	return a, nil
}
