// Package wordio defines file loading/saving helpers for the wordio
// subpackage of github.com/quintle/quintle.
package wordio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/quintle/quintle/word"
)

// ReadWordList decodes a CSV word list: one word per record, first column
// only, with an optional case-insensitive "WORD" header row. Words are
// canonicalized and de-duplicated by word.NewList.
func ReadWordList(r io.Reader, length int) (*word.List, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var raw []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("wordio: read word list: %w", err)
		}
		if len(rec) == 0 {
			continue
		}
		cell := strings.TrimSpace(rec[0])
		if cell == "" || strings.EqualFold(cell, "WORD") {
			continue
		}
		raw = append(raw, cell)
	}

	list, err := word.NewList(length, raw)
	if err != nil {
		return nil, fmt.Errorf("wordio: word list: %w", err)
	}

	return list, nil
}

// LoadWordList reads a CSV word list from path.
func LoadWordList(path string, length int) (*word.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordio: open word list: %w", err)
	}
	defer f.Close()

	return ReadWordList(f, length)
}

// ReadWordListJSON decodes a JSON array of strings into a word.List.
func ReadWordListJSON(r io.Reader, length int) (*word.List, error) {
	var raw []string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("wordio: decode word list: %w", err)
	}
	list, err := word.NewList(length, raw)
	if err != nil {
		return nil, fmt.Errorf("wordio: word list: %w", err)
	}

	return list, nil
}

// LoadWordListJSON reads a JSON word list from path.
func LoadWordListJSON(path string, length int) (*word.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordio: open word list: %w", err)
	}
	defer f.Close()

	return ReadWordListJSON(f, length)
}
