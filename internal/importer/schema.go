package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedSchema is the top-level YAML structure for seeding categories and the
// pool.
type SeedSchema struct {
	Categories []CategorySeed `yaml:"categories"`
	Pool       []PoolItemSeed `yaml:"pool"`
}

// CategorySeed defines a category in the seed file.
type CategorySeed struct {
	Name    string `yaml:"name"`
	Rank    int    `yaml:"rank"`
	Enabled *bool  `yaml:"enabled,omitempty"`
}

// PoolItemSeed defines a pool item in the seed file. Category refers to a
// category by name, either from the same file or already stored.
type PoolItemSeed struct {
	Type         string  `yaml:"type"`
	Title        string  `yaml:"title"`
	Notes        string  `yaml:"notes,omitempty"`
	Category     string  `yaml:"category,omitempty"`
	Status       string  `yaml:"status,omitempty"`
	CooldownDays *int    `yaml:"cooldown_days,omitempty"`
	StartsAt     *string `yaml:"starts_at,omitempty"`
	EndsAt       *string `yaml:"ends_at,omitempty"`
}

// LoadSeedSchema reads and parses a YAML seed file. Unknown keys are errors.
func LoadSeedSchema(path string) (*SeedSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var schema SeedSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &schema, nil
}
