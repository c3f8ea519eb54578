package fixture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads and parses a simulation fixture. It returns *NotFoundError when
// the path does not exist and *MalformedDataError when the content is not
// valid JSON or lacks the required building/request shape. Both are terminal.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, &MalformedDataError{Path: path, Reason: "invalid JSON document", Err: err}
	}
	if err := doc.validateShape(); err != nil {
		return nil, &MalformedDataError{Path: path, Reason: err.Error()}
	}
	return doc, nil
}

// Save serializes the document (2-space indent, literal UTF-8) and persists
// it via a same-directory temp file plus rename, so a failed save leaves the
// target exactly as it was. Failures surface as *WriteError.
func Save(path string, doc *Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return &WriteError{Path: path, Err: fmt.Errorf("encode document: %w", err)}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
