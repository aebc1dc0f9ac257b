package template

import (
	"fmt"
	"os"
	"path/filepath"

	"wrd/pkg/output"
)

// Engine materializes project trees from catalog templates.
type Engine struct {
	repo   *Repository
	runner CommandRunner
}

// NewEngine builds an engine over a catalog using the real shell for
// post-create commands.
func NewEngine(repo *Repository) *Engine {
	return NewEngineWithRunner(repo, ShellRunner{})
}

func NewEngineWithRunner(repo *Repository, runner CommandRunner) *Engine {
	return &Engine{repo: repo, runner: runner}
}

// Repository returns the catalog the engine was built over.
func (e *Engine) Repository() *Repository {
	return e.repo
}

// CreateProject materializes templateName into destPath using ctx.
//
// Directory and file failures abort the whole operation immediately and
// files already written stay on disk; there is no rollback, the caller is
// expected to inspect or delete the partial tree. Post-create commands are
// looser on purpose: a failing command is logged as a warning and the
// remaining commands still run, because by that point the project tree is
// complete and usable.
func (e *Engine) CreateProject(templateName, destPath string, ctx map[string]string, overwrite bool) error {
	desc, ok := e.repo.Get(templateName)
	if !ok {
		return fmt.Errorf("template '%s': %w", templateName, ErrTemplateNotFound)
	}

	destPath, err := filepath.Abs(destPath)
	if err != nil {
		return fmt.Errorf("failed to resolve destination path: %w", err)
	}

	if err := checkDestination(destPath, overwrite); err != nil {
		return err
	}
	if err := os.MkdirAll(destPath, 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	for _, dir := range desc.Directories {
		rendered := Render(dir, ctx)
		if err := os.MkdirAll(filepath.Join(destPath, rendered), 0755); err != nil {
			return fmt.Errorf("failed to create directory '%s': %w", rendered, err)
		}
	}

	for _, spec := range desc.Files {
		if err := e.writeFile(desc, spec, destPath, ctx); err != nil {
			return err
		}
	}

	for _, command := range desc.PostCreateCommands {
		rendered := Render(command, ctx)
		if err := e.runner.Run(destPath, rendered); err != nil {
			output.Warn("post-create command failed", "command", rendered, "err", err)
		}
	}

	return nil
}

func (e *Engine) writeFile(desc *Descriptor, spec FileSpec, destPath string, ctx map[string]string) error {
	relPath := Render(spec.DestPath(), ctx)
	filePath := filepath.Join(destPath, relPath)

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory for '%s': %w", relPath, err)
	}

	content, err := resolveContent(desc, spec)
	if err != nil {
		return fmt.Errorf("failed to read template file for '%s': %w", relPath, err)
	}

	if err := os.WriteFile(filePath, []byte(Render(content, ctx)), 0644); err != nil {
		return fmt.Errorf("failed to write '%s': %w", relPath, err)
	}
	return nil
}

// resolveContent applies the content priority order: inline content wins,
// then the referenced template file, then empty. A template file reference
// missing from disk falls back to empty, matching discovery's tolerance;
// any other read error is real and aborts.
func resolveContent(desc *Descriptor, spec FileSpec) (string, error) {
	if spec.Content != "" {
		return spec.Content, nil
	}
	if spec.Template != "" {
		data, err := os.ReadFile(filepath.Join(desc.SourcePath, spec.Template))
		if err != nil {
			if os.IsNotExist(err) {
				return "", nil
			}
			return "", err
		}
		return string(data), nil
	}
	return "", nil
}

// checkDestination enforces the conflict rule: an existing non-empty
// destination is rejected unless overwrite was requested. An existing empty
// directory is always fine.
func checkDestination(destPath string, overwrite bool) error {
	info, err := os.Stat(destPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat destination: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("destination '%s' exists and is not a directory", destPath)
	}
	if overwrite {
		return nil
	}

	entries, err := os.ReadDir(destPath)
	if err != nil {
		return fmt.Errorf("failed to read destination directory: %w", err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("destination '%s': %w", destPath, ErrDestinationConflict)
	}
	return nil
}
