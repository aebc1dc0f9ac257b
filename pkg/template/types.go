package template

// Variable declares an input a template expects. Declarations are advisory:
// rendering never checks the context against them.
type Variable struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// FileSpec describes one file a template produces. Path is rendered against
// the context before writing. Content sources resolve in priority order:
// inline Content, then the Template file relative to the template directory,
// then an empty file.
type FileSpec struct {
	Path     string `yaml:"path"`
	Source   string `yaml:"source"`
	Content  string `yaml:"content"`
	Template string `yaml:"template"`
}

// DestPath returns the declared destination path, honoring the legacy
// "source" manifest key as an alias for "path".
func (f FileSpec) DestPath() string {
	if f.Path != "" {
		return f.Path
	}
	return f.Source
}

// Descriptor is one loaded template: the parsed manifest plus the on-disk
// location of the template's assets.
type Descriptor struct {
	Name               string     `yaml:"name"`
	Description        string     `yaml:"description"`
	Author             string     `yaml:"author"`
	Version            string     `yaml:"version"`
	Variables          []Variable `yaml:"variables"`
	Directories        []string   `yaml:"directories"`
	Files              []FileSpec `yaml:"files"`
	PostCreateCommands []string   `yaml:"post_create_commands"`

	// SourcePath is the template directory the manifest was loaded from.
	// Owned by the Repository.
	SourcePath string `yaml:"-"`
}
