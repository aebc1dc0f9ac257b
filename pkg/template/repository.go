package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"wrd/pkg/output"
)

// Repository is the template catalog. It scans its root directory once at
// construction and is immutable afterward, so concurrent reads are safe.
type Repository struct {
	root      string
	templates map[string]*Descriptor
}

// NewRepository scans every immediate child of root for a manifest and
// builds the catalog. A missing root or an individual bad template never
// fails the scan: bad entries are logged and excluded.
func NewRepository(root string) (*Repository, error) {
	repo := &Repository{
		root:      root,
		templates: make(map[string]*Descriptor),
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return repo, nil
		}
		return nil, fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		desc, err := parseManifest(dir)
		if err != nil {
			output.Warn("skipping template", "dir", entry.Name(), "err", err)
			continue
		}
		if desc == nil {
			continue
		}

		if _, exists := repo.templates[desc.Name]; exists {
			output.Warn("skipping template with duplicate name", "dir", entry.Name(), "name", desc.Name)
			continue
		}
		repo.templates[desc.Name] = desc
	}

	return repo, nil
}

// Root returns the directory the catalog was built from.
func (r *Repository) Root() string {
	return r.root
}

// List returns all catalog template names, sorted.
func (r *Repository) List() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get looks up a template by name.
func (r *Repository) Get(name string) (*Descriptor, bool) {
	desc, ok := r.templates[name]
	return desc, ok
}
