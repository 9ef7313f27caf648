package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ErrPathNotFound is returned by Query when the path matches nothing.
var ErrPathNotFound = errors.New("path not found")

// WriteFile validates the structure and writes it to path, creating the
// parent directory when needed.
func WriteFile(path string, s *SyncStructure) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding sync structure: %w", err)
	}
	if err := Validate(data); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a previously written structure and checks that it is JSON.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidStructure)
	}
	return data, nil
}

// Query returns the value at a gjson path inside a document. Objects and
// arrays come back indented; scalars as plain text. An empty path returns the
// whole document.
func Query(data []byte, path string) ([]byte, error) {
	if path == "" {
		return pretty.Pretty(data), nil
	}
	r := gjson.GetBytes(data, path)
	if !r.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	if r.IsObject() || r.IsArray() {
		return pretty.Pretty([]byte(r.Raw)), nil
	}
	return []byte(r.String() + "\n"), nil
}
