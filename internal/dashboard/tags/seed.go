package tags

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gridboard/internal/dashboard/model"
)

type seedFile struct {
	Tags []model.Tag `yaml:"tags"`
}

// LoadSeed populates the directory from a YAML file of tag definitions.
// A missing file is not an error; the directory just starts empty.
func LoadSeed(d *MemoryDirectory, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read tag seed %s: %w", path, err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("parse tag seed %s: %w", path, err)
	}

	for _, tag := range seed.Tags {
		if tag.ID == "" {
			return 0, fmt.Errorf("tag seed %s: entry missing id", path)
		}
		if tag.ValueKind == "" {
			tag.ValueKind = model.ValueKindNumeric
		}
		if tag.RefreshInterval <= 0 {
			tag.RefreshInterval = 30
		}
		d.Register(tag)
	}
	return len(seed.Tags), nil
}
