package library

import (
	"encoding/json"
	"fmt"
	"os"
)

// indexFile matches the JSON document the media-server exporter writes.
type indexFile struct {
	Movies []Entry `json:"movies"`
}

// LoadIndex reads and validates a library index file.
func LoadIndex(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read library index: %w", err)
	}
	return ParseIndex(data)
}

// ParseIndex decodes a library index document from raw JSON.
func ParseIndex(data []byte) (*Index, error) {
	var doc indexFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse library index: %w", err)
	}
	idx, err := NewIndex(doc.Movies)
	if err != nil {
		return nil, err
	}
	return idx, nil
}
