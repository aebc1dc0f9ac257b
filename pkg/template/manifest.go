package template

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the descriptor file expected in every template directory.
const ManifestFile = "project.yml"

// parseManifest loads the manifest from a template directory. It returns
// (nil, nil) when the directory has no manifest at all, which marks it as
// not a template rather than a broken one. A manifest that exists but is
// malformed or lacks a name yields an error so the caller can log and skip
// just that entry.
func parseManifest(dir string) (*Descriptor, error) {
	manifestPath := filepath.Join(dir, ManifestFile)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var desc Descriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if desc.Name == "" {
		return nil, fmt.Errorf("manifest missing required 'name' field")
	}

	// File entries without a destination path are dropped here, not at
	// materialization time. The template itself stays usable.
	files := desc.Files[:0]
	for _, f := range desc.Files {
		if f.DestPath() == "" {
			continue
		}
		files = append(files, f)
	}
	desc.Files = files

	desc.SourcePath = dir
	return &desc, nil
}
