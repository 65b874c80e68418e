package loader

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/dataspot-cli/models"
)

type yamlLoader struct{}

func (yamlLoader) CanLoad(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

// Load expects a YAML sequence of mappings.
func (yamlLoader) Load(content []byte) ([]models.Record, error) {
	var raw []map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	records := make([]models.Record, 0, len(raw))
	for _, m := range raw {
		records = append(records, models.Record(m))
	}
	return records, nil
}
