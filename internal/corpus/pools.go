package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Pools holds the candidate replacement values used by augmentation, one
// list per target category.
type Pools struct {
	CompoundNames []string `yaml:"compound_names"`
	Quantities    []string `yaml:"quantities"`
	Durations     []string `yaml:"durations"`
	Temperatures  []string `yaml:"temperatures"`
}

// LoadPools reads a YAML value-pool file.
func LoadPools(path string) (Pools, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pools{}, fmt.Errorf("read pools file: %w", err)
	}
	var p Pools
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pools{}, fmt.Errorf("parse pools file %s: %w", path, err)
	}
	return p, nil
}
