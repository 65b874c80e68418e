// Package loader reads tabular datasets from disk into records. Formats are
// pluggable: each implementation registers itself and claims filenames by
// extension.
package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/KaramelBytes/dataspot-cli/models"
)

// Loader defines a dataset format implementation.
type Loader interface {
	CanLoad(filename string) bool
	Load(content []byte) ([]models.Record, error)
}

var registry []Loader

// Register adds a loader implementation to the registry.
func Register(l Loader) {
	registry = append(registry, l)
}

// LoadFile selects a loader based on filename and returns the decoded
// records.
func LoadFile(path string) ([]models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	for _, l := range registry {
		if l.CanLoad(path) {
			records, err := l.Load(data)
			if err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
			return records, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
}

func init() {
	// Register default loaders
	Register(jsonLoader{})
	Register(csvLoader{})
	Register(yamlLoader{})
}

// ErrUnsupported indicates a dataset format is not supported yet.
var ErrUnsupported = errors.New("unsupported dataset format")
