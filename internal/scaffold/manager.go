package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"wrd/pkg/config"
	"wrd/pkg/git"
	"wrd/pkg/output"
	"wrd/pkg/project"
	"wrd/pkg/template"
)

// Manager ties the template engine, the git wrappers, and the metadata
// store together behind the commands.
type Manager struct {
	cfg    *config.Config
	engine *template.Engine
	store  *project.Store
}

// CreateOptions controls one project creation.
type CreateOptions struct {
	Template  string
	Path      string
	Vars      map[string]string
	Overwrite bool
	InitGit   bool
}

func NewManager(cfg *config.Config) (*Manager, error) {
	repo, err := template.NewRepository(cfg.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load template repository: %w", err)
	}

	store, err := project.NewStore(filepath.Join(config.DefaultConfigDir(), "projects.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open project store: %w", err)
	}

	return &Manager{
		cfg:    cfg,
		engine: template.NewEngine(repo),
		store:  store,
	}, nil
}

// NewManagerWith wires explicit collaborators, used by tests.
func NewManagerWith(cfg *config.Config, engine *template.Engine, store *project.Store) *Manager {
	return &Manager{cfg: cfg, engine: engine, store: store}
}

func (m *Manager) Close() error {
	return m.store.Close()
}

// Templates returns the catalog names.
func (m *Manager) Templates() []string {
	return m.engine.Repository().List()
}

// Template looks up one descriptor.
func (m *Manager) Template(name string) (*template.Descriptor, bool) {
	return m.engine.Repository().Get(name)
}

// TemplateVariables reports the placeholder names a template references.
func (m *Manager) TemplateVariables(name string) (map[string]string, error) {
	desc, ok := m.engine.Repository().Get(name)
	if !ok {
		return nil, fmt.Errorf("template '%s': %w", name, template.ErrTemplateNotFound)
	}
	return template.Variables(desc), nil
}

// CreateProject materializes a template and records the result. The
// context is the config default context with the caller's vars layered on
// top, plus project_name.
func (m *Manager) CreateProject(name string, opts CreateOptions) (string, error) {
	if name == "" {
		return "", fmt.Errorf("project name cannot be empty")
	}

	destPath := opts.Path
	if destPath == "" {
		destPath = filepath.Join(m.cfg.ProjectsDir, name)
	}

	ctx := make(map[string]string, len(m.cfg.DefaultContext)+len(opts.Vars)+1)
	for k, v := range m.cfg.DefaultContext {
		ctx[k] = v
	}
	for k, v := range opts.Vars {
		ctx[k] = v
	}
	if _, ok := ctx["project_name"]; !ok {
		ctx["project_name"] = name
	}

	if err := m.engine.CreateProject(opts.Template, destPath, ctx, opts.Overwrite); err != nil {
		m.store.RecordEvent(name, "create", false)
		return "", err
	}

	absPath, err := filepath.Abs(destPath)
	if err != nil {
		absPath = destPath
	}

	if err := m.store.SaveProject(project.Record{
		Name:     name,
		Path:     absPath,
		Template: opts.Template,
	}); err != nil {
		return "", fmt.Errorf("failed to record project: %w", err)
	}
	m.store.RecordEvent(name, "create", true)

	if opts.InitGit {
		if err := initialCommit(absPath); err != nil {
			output.Warn("failed to initialize git repository", "project", name, "err", err)
		}
	}

	return absPath, nil
}

func initialCommit(path string) error {
	gitMgr := git.NewManagerWithRepoRoot(path)
	if gitMgr.HasGitRepo() {
		return nil
	}
	if err := gitMgr.InitRepo(); err != nil {
		return err
	}
	return gitMgr.CommitAll("Initial commit")
}

// ListProjects returns every tracked project.
func (m *Manager) ListProjects() ([]project.Record, error) {
	return m.store.ListProjects()
}

// Commit stages and commits everything in a project directory and stamps
// the metadata row when the directory belongs to a tracked project.
func (m *Manager) Commit(dir, message string) error {
	gitMgr := git.NewManagerWithRepoRoot(dir)
	if err := gitMgr.CommitAll(message); err != nil {
		return err
	}

	if name := m.trackedName(dir); name != "" {
		if err := m.store.TouchCommit(name); err != nil {
			output.Warn("failed to record commit", "project", name, "err", err)
		}
	}
	return nil
}

// Backup commits pending changes and pushes to the configured remote.
func (m *Manager) Backup(dir, remote, message string) error {
	if remote == "" {
		remote = m.cfg.Backup.Remote
	}

	gitMgr := git.NewManagerWithRepoRoot(dir)
	branch, err := gitMgr.CurrentBranch()
	if err != nil {
		branch = m.cfg.Backup.Branch
	}

	if err := gitMgr.Backup(remote, branch, message); err != nil {
		return err
	}

	if name := m.trackedName(dir); name != "" {
		if err := m.store.TouchBackup(name); err != nil {
			output.Warn("failed to record backup", "project", name, "err", err)
		}
	}
	return nil
}

// Stats returns activity statistics for the last N days.
func (m *Manager) Stats(days int) (project.Stats, error) {
	return m.store.GetStats(days)
}

// trackedName resolves a directory back to a tracked project name, or ""
// when the directory is not one we created.
func (m *Manager) trackedName(dir string) string {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	records, err := m.store.ListProjects()
	if err != nil {
		return ""
	}
	for _, r := range records {
		if r.Path == absDir {
			return r.Name
		}
	}
	return ""
}

// ResolveProjectDir maps a project name to its directory via the store,
// falling back to the current directory when no name is given.
func (m *Manager) ResolveProjectDir(name string) (string, error) {
	if name == "" {
		return os.Getwd()
	}

	record, err := m.store.GetProject(name)
	if err != nil {
		return "", fmt.Errorf("failed to look up project: %w", err)
	}
	if record == nil {
		return "", fmt.Errorf("project '%s' is not tracked", name)
	}
	return record.Path, nil
}
