package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Read decodes a JSON document from r and validates it.
//
// Read returns an error if the JSON is malformed, an element id is
// missing or duplicated, or a unit or anchor token is unknown. Errors
// carry pkg/errors codes; use errors.Is to check for specific ones.
//
// The returned document is independent of r and can be modified safely
// after Read returns. Read does not close r.
func Read(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Write encodes a document as indented JSON to w. The output can be
// re-imported with [Read] for round-trip processing.
func Write(d *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ImportFile reads a JSON document file at path.
//
// ImportFile opens the file, decodes it using [Read], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// ExportFile writes a document to a JSON file at path.
// This is a convenience wrapper around [Write] for file-based output.
func ExportFile(d *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(d, f)
}

// WriteResolved encodes resolved elements as indented JSON to w. This is
// an export artifact: resolved geometry is never read back as input.
func WriteResolved(resolved []Resolved, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resolved); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Marshal converts a document to JSON bytes. Used for hashing and for
// store backends that persist raw JSON.
func Marshal(d *Document) ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	return data, nil
}

// Unmarshal decodes and validates a document from JSON bytes.
func Unmarshal(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
