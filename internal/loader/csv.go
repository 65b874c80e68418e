package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/KaramelBytes/dataspot-cli/models"
)

type csvLoader struct{}

func (csvLoader) CanLoad(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv")
}

// Load treats the first row as the header. Cell values stay strings; an
// empty cell becomes a nil value so it counts as missing downstream.
func (csvLoader) Load(content []byte) ([]models.Record, error) {
	r := csv.NewReader(bytes.NewReader(content))
	if looksTabSeparated(content) {
		r.Comma = '\t'
	}
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	header := rows[0]

	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(models.Record, len(header))
		for i, field := range header {
			if i >= len(row) || row[i] == "" {
				rec[field] = nil
				continue
			}
			rec[field] = row[i]
		}
		records = append(records, rec)
	}
	return records, nil
}

// looksTabSeparated sniffs the first line: a tab before any comma means TSV.
func looksTabSeparated(content []byte) bool {
	line := content
	if i := bytes.IndexByte(content, '\n'); i >= 0 {
		line = content[:i]
	}
	tab := bytes.IndexByte(line, '\t')
	comma := bytes.IndexByte(line, ',')
	return tab >= 0 && (comma < 0 || tab < comma)
}
