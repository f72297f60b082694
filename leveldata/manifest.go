package leveldata

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Manifest lists the playable levels in progression order.
type Manifest struct {
	Levels []ManifestEntry `yaml:"levels"`
}

type ManifestEntry struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

func LoadManifest(fsys fs.FS, manifestPath string) (*Manifest, error) {
	raw, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", manifestPath, err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", manifestPath, err)
	}
	return &manifest, nil
}
