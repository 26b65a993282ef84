package wordio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quintle/quintle/constraint"
)

// LoadDocument reads a constraint document (the solver-state JSON) from path.
func LoadDocument(path string) (constraint.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return constraint.Document{}, fmt.Errorf("wordio: read document: %w", err)
	}
	var doc constraint.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return constraint.Document{}, fmt.Errorf("wordio: decode document: %w", err)
	}

	return doc, nil
}

// SaveDocument writes a constraint document to path as indented JSON.
func SaveDocument(path string, doc constraint.Document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("wordio: encode document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("wordio: write document: %w", err)
	}

	return nil
}

// ResetDocument overwrites path with the default (empty-knowledge) document
// for the given word length.
func ResetDocument(path string, length int) error {
	return SaveDocument(path, constraint.DefaultDocument(length))
}
