package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	dirs     []string
	commands []string
	err      error
}

func (r *recordingRunner) Run(dir, command string) error {
	r.dirs = append(r.dirs, dir)
	r.commands = append(r.commands, command)
	return r.err
}

func newTestEngine(t *testing.T, root string) *Engine {
	t.Helper()

	repo, err := NewRepository(root)
	require.NoError(t, err)
	return NewEngineWithRunner(repo, &recordingRunner{})
}

func TestCreateProject(t *testing.T) {
	root := t.TempDir()
	writeTemplateDir(t, root, "python-basic", `
name: python-basic
description: Basic Python project template
files:
  - path: README.md
    content: "# {{project_name}}\n\n{{author}}"
  - path: setup.py
    content: "from setuptools import setup\n\nsetup(name='{{project_name}}')\n"
`)

	engine := newTestEngine(t, root)
	dest := filepath.Join(t.TempDir(), "demo")

	ctx := map[string]string{"project_name": "demo", "author": "Ada"}
	require.NoError(t, engine.CreateProject("python-basic", dest, ctx, false))

	readme, err := os.ReadFile(filepath.Join(dest, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# demo\n\nAda", string(readme))

	setup, err := os.ReadFile(filepath.Join(dest, "setup.py"))
	require.NoError(t, err)
	assert.Contains(t, string(setup), "name='demo'")
}

func TestCreateProject_TemplateNotFound(t *testing.T) {
	engine := newTestEngine(t, t.TempDir())
	dest := filepath.Join(t.TempDir(), "never")

	err := engine.CreateProject("missing", dest, nil, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateNotFound))

	// No partial work at all.
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCreateProject_DestinationConflict(t *testing.T) {
	root := t.TempDir()
	writeTemplateDir(t, root, "basic", `
name: basic
files:
  - path: new.txt
    content: new
`)
	engine := newTestEngine(t, root)

	dest := t.TempDir()
	existing := filepath.Join(dest, "precious.txt")
	require.NoError(t, os.WriteFile(existing, []byte("keep me intact"), 0644))

	err := engine.CreateProject("basic", dest, nil, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDestinationConflict))

	// Pre-existing content byte-for-byte unchanged, nothing new written.
	data, readErr := os.ReadFile(existing)
	require.NoError(t, readErr)
	assert.Equal(t, "keep me intact", string(data))
	assert.NoFileExists(t, filepath.Join(dest, "new.txt"))
}

func TestCreateProject_EmptyExistingDestination(t *testing.T) {
	root := t.TempDir()
	writeTemplateDir(t, root, "basic", `
name: basic
files:
  - path: a.txt
    content: a
`)
	engine := newTestEngine(t, root)

	dest := t.TempDir()
	require.NoError(t, engine.CreateProject("basic", dest, nil, false))
	assert.FileExists(t, filepath.Join(dest, "a.txt"))
}

func TestCreateProject_OverwriteIdempotent(t *testing.T) {
	root := t.TempDir()
	writeTemplateDir(t, root, "basic", `
name: basic
directories:
  - docs
files:
  - path: a.txt
    content: "value is {{v}}"
`)
	engine := newTestEngine(t, root)
	dest := filepath.Join(t.TempDir(), "proj")
	ctx := map[string]string{"v": "1"}

	require.NoError(t, engine.CreateProject("basic", dest, ctx, true))
	first, err := os.ReadFile(filepath.Join(dest, "a.txt"))
	require.NoError(t, err)

	require.NoError(t, engine.CreateProject("basic", dest, ctx, true))
	second, err := os.ReadFile(filepath.Join(dest, "a.txt"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.DirExists(t, filepath.Join(dest, "docs"))
}

func TestCreateProject_RenderedDirectories(t *testing.T) {
	root := t.TempDir()
	writeTemplateDir(t, root, "layout", `
name: layout
directories:
  - src/{{project_name}}
  - tests
`)
	engine := newTestEngine(t, root)
	dest := filepath.Join(t.TempDir(), "demo")

	require.NoError(t, engine.CreateProject("layout", dest, map[string]string{"project_name": "demo"}, false))
	assert.DirExists(t, filepath.Join(dest, "src", "demo"))
	assert.DirExists(t, filepath.Join(dest, "tests"))
}

func TestCreateProject_TemplateFileContent(t *testing.T) {
	root := t.TempDir()
	dir := writeTemplateDir(t, root, "filed", `
name: filed
files:
  - path: README.md
    template: readme.tmpl
  - path: empty.cfg
    template: nowhere.tmpl
  - path: blank.txt
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.tmpl"), []byte("# {{project_name}}\n"), 0644))

	engine := newTestEngine(t, root)
	dest := filepath.Join(t.TempDir(), "out")

	require.NoError(t, engine.CreateProject("filed", dest, map[string]string{"project_name": "out"}, false))

	readme, err := os.ReadFile(filepath.Join(dest, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# out\n", string(readme))

	// Missing template reference and no content both produce empty files.
	for _, name := range []string{"empty.cfg", "blank.txt"} {
		data, err := os.ReadFile(filepath.Join(dest, name))
		require.NoError(t, err)
		assert.Empty(t, data)
	}
}

func TestCreateProject_RenderedFilePaths(t *testing.T) {
	root := t.TempDir()
	writeTemplateDir(t, root, "pathy", `
name: pathy
files:
  - path: "{{project_name}}/main.py"
    content: "print('{{project_name}}')"
`)
	engine := newTestEngine(t, root)
	dest := filepath.Join(t.TempDir(), "demo")

	require.NoError(t, engine.CreateProject("pathy", dest, map[string]string{"project_name": "demo"}, false))
	assert.FileExists(t, filepath.Join(dest, "demo", "main.py"))
}

func TestCreateProject_FailFastKeepsEarlierFiles(t *testing.T) {
	root := t.TempDir()
	// The second file's destination collides with a pre-created directory,
	// so its write fails after the first file already landed.
	writeTemplateDir(t, root, "doomed", `
name: doomed
directories:
  - blocked
files:
  - path: first.txt
    content: survives
  - path: blocked
    content: cannot write over a directory
  - path: never.txt
    content: unreached
`)
	engine := newTestEngine(t, root)
	dest := filepath.Join(t.TempDir(), "partial")

	err := engine.CreateProject("doomed", dest, nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked")

	// Fail-fast without rollback: the first file persists, the rest were
	// never attempted.
	data, readErr := os.ReadFile(filepath.Join(dest, "first.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "survives", string(data))
	assert.NoFileExists(t, filepath.Join(dest, "never.txt"))
}

func TestCreateProject_PostCreateCommands(t *testing.T) {
	root := t.TempDir()
	writeTemplateDir(t, root, "cmds", `
name: cmds
post_create_commands:
  - git init
  - echo {{project_name}}
`)

	repo, err := NewRepository(root)
	require.NoError(t, err)
	runner := &recordingRunner{}
	engine := NewEngineWithRunner(repo, runner)

	dest := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, engine.CreateProject("cmds", dest, map[string]string{"project_name": "demo"}, false))

	require.Equal(t, []string{"git init", "echo demo"}, runner.commands)
	for _, dir := range runner.dirs {
		assert.Equal(t, dest, dir)
	}
}

func TestCreateProject_PostCommandFailureNotFatal(t *testing.T) {
	root := t.TempDir()
	writeTemplateDir(t, root, "cmds", `
name: cmds
files:
  - path: a.txt
    content: a
post_create_commands:
  - exit 1
  - echo still runs
`)

	repo, err := NewRepository(root)
	require.NoError(t, err)
	runner := &recordingRunner{err: fmt.Errorf("exit status 1")}
	engine := NewEngineWithRunner(repo, runner)

	dest := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, engine.CreateProject("cmds", dest, nil, false))

	// Both commands were attempted despite the failures.
	assert.Len(t, runner.commands, 2)
	assert.FileExists(t, filepath.Join(dest, "a.txt"))
}

func TestShellRunner(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, ShellRunner{}.Run(dir, "echo hello > out.txt"))

	data, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))

	assert.Error(t, ShellRunner{}.Run(dir, "exit 3"))
}
