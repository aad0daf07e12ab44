package commands

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
)

//go:embed templates/*
var templatesFS embed.FS

// InitOptions are the answers gathered before scaffolding a project.
type InitOptions struct {
	ProjectName string
	ModulePath  string
}

// FileSystem abstracts the file operations Init performs, for tests.
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}

type osFileSystem struct{}

func (*osFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (*osFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (*osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// InitCommand scaffolds a new project from the embedded templates: a module
// with an example view model and an mvvmgen.json.
type InitCommand struct {
	filesystem  FileSystem
	templatesFS fs.FS
	// For testing: if set, skip prompting
	options *InitOptions
}

func NewInitCommand() *InitCommand {
	return &InitCommand{
		filesystem:  &osFileSystem{},
		templatesFS: templatesFS,
	}
}

func (c *Controller) Init(ctx context.Context) error {
	return NewInitCommand().Run(ctx)
}

func (ic *InitCommand) Run(ctx context.Context) error {
	options := ic.options
	if options == nil {
		var err error
		options, err = ic.promptInitOptions()
		if err != nil {
			return fmt.Errorf("failed to get init options: %w", err)
		}
	}
	if options.ModulePath == "" {
		options.ModulePath = options.ProjectName
	}

	if err := ic.scaffold(options); err != nil {
		return fmt.Errorf("failed to scaffold project: %w", err)
	}

	fmt.Printf("Created project %s. Run `go mod tidy && mvvmgen generate` inside it.\n", options.ProjectName)
	return nil
}

func (ic *InitCommand) promptInitOptions() (*InitOptions, error) {
	var options InitOptions
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Directory to create").
				Value(&options.ProjectName).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("project name cannot be empty")
					}
					if _, err := ic.filesystem.Stat(s); err == nil {
						return fmt.Errorf("directory %s already exists", s)
					}
					return nil
				}),

			huh.NewInput().
				Title("Module path").
				Description("Go module path; defaults to the project name").
				Value(&options.ModulePath),
		),
	)
	if err := form.Run(); err != nil {
		return nil, err
	}
	return &options, nil
}

func (ic *InitCommand) scaffold(options *InitOptions) error {
	const root = "templates/project"
	return fs.WalkDir(ic.templatesFS, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		// go.mod templates are stored with a .tmpl suffix because go:embed
		// cannot include a file named go.mod (it marks a nested module).
		dest := filepath.Join(options.ProjectName, strings.TrimSuffix(rel, ".tmpl"))
		if d.IsDir() {
			return ic.filesystem.MkdirAll(dest, 0o755)
		}
		data, err := fs.ReadFile(ic.templatesFS, path)
		if err != nil {
			return err
		}
		content := strings.ReplaceAll(string(data), "{{module_path}}", options.ModulePath)
		content = strings.ReplaceAll(content, "{{project_name}}", options.ProjectName)
		return ic.filesystem.WriteFile(dest, []byte(content), 0o644)
	})
}
