// Package profile stores a design document as a YAML file between command
// invocations.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mj1618/zommation/internal/model"
	"github.com/mj1618/zommation/internal/output"
	"gopkg.in/yaml.v3"
)

// Exists reports whether a profile file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads the profile at path. A missing file is reported with an error
// wrapping fs.ErrNotExist.
func Load(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return doc, nil
}

// LoadOrNew reads the profile at path, or returns a fresh document when the
// file does not exist yet.
func LoadOrNew(path string) (*model.Document, error) {
	doc, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.New(), nil
	}
	return doc, err
}

// Save writes doc to path atomically.
func Save(path string, doc *model.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	return output.WriteFileAtomic(path, data, 0o644)
}

// Encode renders doc as profile YAML.
func Encode(doc *model.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := output.EncodeYAML(&buf, doc.State()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses profile YAML. Unknown fields are rejected.
func Decode(data []byte) (*model.Document, error) {
	var s model.State
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	return model.FromState(s)
}
