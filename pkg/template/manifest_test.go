package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTemplateDir creates a template directory with a manifest under root
// and returns its path.
func writeTemplateDir(t *testing.T, root, dirName, manifest string) string {
	t.Helper()

	dir := filepath.Join(root, dirName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte(manifest), 0644))
	return dir
}

func TestParseManifest(t *testing.T) {
	root := t.TempDir()
	dir := writeTemplateDir(t, root, "python-basic", `
name: python-basic
description: Basic Python project template
author: WRD Team
version: 1.0.0
variables:
  - name: project_name
    description: Name of the project
  - name: author
    description: Author name
directories:
  - src/{{project_name}}
  - tests
files:
  - path: README.md
    content: "# {{project_name}}"
  - path: setup.py
    template: setup.py.tmpl
post_create_commands:
  - git init
`)

	desc, err := parseManifest(dir)
	require.NoError(t, err)
	require.NotNil(t, desc)

	assert.Equal(t, "python-basic", desc.Name)
	assert.Equal(t, "Basic Python project template", desc.Description)
	assert.Equal(t, "WRD Team", desc.Author)
	assert.Equal(t, "1.0.0", desc.Version)
	assert.Len(t, desc.Variables, 2)
	assert.Equal(t, "project_name", desc.Variables[0].Name)
	assert.Equal(t, []string{"src/{{project_name}}", "tests"}, desc.Directories)
	require.Len(t, desc.Files, 2)
	assert.Equal(t, "README.md", desc.Files[0].Path)
	assert.Equal(t, "setup.py.tmpl", desc.Files[1].Template)
	assert.Equal(t, []string{"git init"}, desc.PostCreateCommands)
	assert.Equal(t, dir, desc.SourcePath)
}

func TestParseManifest_NoManifest(t *testing.T) {
	dir := t.TempDir()

	desc, err := parseManifest(dir)
	assert.NoError(t, err)
	assert.Nil(t, desc)
}

func TestParseManifest_MalformedYAML(t *testing.T) {
	root := t.TempDir()
	dir := writeTemplateDir(t, root, "broken", "name: [unclosed")

	_, err := parseManifest(dir)
	assert.Error(t, err)
}

func TestParseManifest_MissingName(t *testing.T) {
	root := t.TempDir()
	dir := writeTemplateDir(t, root, "anonymous", "description: no name here\n")

	_, err := parseManifest(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestParseManifest_SourceAlias(t *testing.T) {
	root := t.TempDir()
	dir := writeTemplateDir(t, root, "legacy", `
name: legacy
files:
  - source: README.md
    content: hello
`)

	desc, err := parseManifest(dir)
	require.NoError(t, err)
	require.Len(t, desc.Files, 1)
	assert.Equal(t, "README.md", desc.Files[0].DestPath())
}

func TestParseManifest_FileWithoutPathDropped(t *testing.T) {
	root := t.TempDir()
	dir := writeTemplateDir(t, root, "partial", `
name: partial
files:
  - content: orphaned content
  - path: kept.txt
    content: kept
`)

	desc, err := parseManifest(dir)
	require.NoError(t, err)
	require.Len(t, desc.Files, 1)
	assert.Equal(t, "kept.txt", desc.Files[0].Path)
}

func TestParseManifest_UnknownFieldsIgnored(t *testing.T) {
	root := t.TempDir()
	dir := writeTemplateDir(t, root, "extra", `
name: extra
future_field: whatever
files:
  - path: a.txt
    content: a
    future_file_field: 42
`)

	desc, err := parseManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, "extra", desc.Name)
}
