package loader

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KaramelBytes/dataspot-cli/models"
)

type jsonLoader struct{}

func (jsonLoader) CanLoad(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".jsonl") ||
		strings.HasSuffix(name, ".ndjson")
}

// Load accepts either a JSON array of objects or newline-delimited JSON, one
// object per line.
func (jsonLoader) Load(content []byte) ([]models.Record, error) {
	trimmed := bytes.TrimLeft(content, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var records []models.Record
		if err := json.Unmarshal(content, &records); err != nil {
			return nil, fmt.Errorf("decode json array: %w", err)
		}
		return records, nil
	}

	var records []models.Record
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var r models.Record
		if err := json.Unmarshal([]byte(text), &r); err != nil {
			return nil, fmt.Errorf("decode json line %d: %w", line, err)
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan json lines: %w", err)
	}
	return records, nil
}
