// Package store owns everything on disk: configuration, the item tree,
// id generation, and git-aware file moves.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ProjectConfigFile marks the project root.
	ProjectConfigFile = ".qtask"

	defaultStackDir   = "qtask"
	defaultArchiveDir = "archive"
)

// ErrNoProject is returned when no project root can be found above the
// working directory.
var ErrNoProject = errors.New("not in a qtask project (no .qtask file found)")

// fileConfig is the schema shared by the global config file and the
// project config file. Pointer fields distinguish "unset" from zero values
// so the project file can override the global one per key.
type fileConfig struct {
	UserName    *string `yaml:"user_name"`
	Editor      *string `yaml:"editor"`
	IDPattern   *string `yaml:"id_pattern"`
	StackDir    *string `yaml:"stack_dir"`
	ArchiveDir  *string `yaml:"archive_dir"`
	Interactive *bool   `yaml:"interactive"`
	UseGitUser  *bool   `yaml:"use_git_user"`
}

// Config is the merged configuration: project settings win over global ones,
// and built-in defaults fill the rest.
type Config struct {
	global      fileConfig
	project     fileConfig
	projectRoot string
}

// Load resolves the project root upward from the working directory and
// merges the global and project config files.
func Load() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return LoadFrom(wd)
}

// LoadFrom is Load starting from an explicit directory.
func LoadFrom(dir string) (*Config, error) {
	root, ok := findProjectRoot(dir)
	if !ok {
		return nil, ErrNoProject
	}

	global, err := loadConfigFile(globalConfigPath())
	if err != nil {
		return nil, err
	}
	project, err := loadConfigFile(filepath.Join(root, ProjectConfigFile))
	if err != nil {
		return nil, err
	}

	return &Config{global: global, project: project, projectRoot: root}, nil
}

// ForInit builds a config rooted at dir without requiring an existing
// project, for `qtask init`.
func ForInit(dir string) (*Config, error) {
	global, err := loadConfigFile(globalConfigPath())
	if err != nil {
		return nil, err
	}
	return &Config{global: global, projectRoot: dir}, nil
}

// InitProject writes the project marker file and creates the stack
// directory. Fails when the directory is already a project.
func (c *Config) InitProject() error {
	marker := filepath.Join(c.projectRoot, ProjectConfigFile)
	if _, err := os.Stat(marker); err == nil {
		return fmt.Errorf("already a qtask project: %s exists", marker)
	}
	content := "# qtask project configuration\n" +
		"# Keys set here override ~/.config/qtask/config.\n" +
		"#\n" +
		"# user_name: Your Name\n" +
		"# editor: vim\n" +
		"# id_pattern: \"" + DefaultIDPattern + "\"\n" +
		"# stack_dir: " + defaultStackDir + "\n" +
		"# archive_dir: " + defaultArchiveDir + "\n" +
		"# interactive: true\n" +
		"# use_git_user: true\n"
	if err := os.WriteFile(marker, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", marker, err)
	}
	if err := os.MkdirAll(c.StackPath(), 0o755); err != nil {
		return fmt.Errorf("create stack dir: %w", err)
	}
	return nil
}

func globalConfigPath() string {
	if dir := os.Getenv("QTASK_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, "config")
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "qtask", "config")
}

func loadConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fc, nil
		}
		return fc, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

func findProjectRoot(start string) (string, bool) {
	dir := filepath.Clean(start)
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectConfigFile)); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Resolution: project overrides global, defaults fill the gaps.

func pick[T any](project, global *T, def T) T {
	if project != nil {
		return *project
	}
	if global != nil {
		return *global
	}
	return def
}

// IDPattern returns the effective id pattern.
func (c *Config) IDPattern() string {
	return pick(c.project.IDPattern, c.global.IDPattern, DefaultIDPattern)
}

// StackDir returns the effective stack directory name.
func (c *Config) StackDir() string {
	return pick(c.project.StackDir, c.global.StackDir, defaultStackDir)
}

// ArchiveDir returns the effective archive directory name (nested under the
// stack directory).
func (c *Config) ArchiveDir() string {
	return pick(c.project.ArchiveDir, c.global.ArchiveDir, defaultArchiveDir)
}

// Interactive reports whether interactive screens are enabled by config.
func (c *Config) Interactive() bool {
	return pick(c.project.Interactive, c.global.Interactive, true)
}

// UseGitUser reports whether git user.name may serve as the author.
func (c *Config) UseGitUser() bool {
	return pick(c.project.UseGitUser, c.global.UseGitUser, true)
}

// UserName resolves the author name: project, then global, then git
// user.name when enabled.
func (c *Config) UserName() (string, bool) {
	if c.project.UserName != nil && *c.project.UserName != "" {
		return *c.project.UserName, true
	}
	if c.global.UserName != nil && *c.global.UserName != "" {
		return *c.global.UserName, true
	}
	if c.UseGitUser() {
		if name, ok := GitUserName(c.projectRoot); ok {
			return name, true
		}
	}
	return "", false
}

// Editor resolves the editor command: project, global, $VISUAL, $EDITOR.
func (c *Config) Editor() (string, bool) {
	if c.project.Editor != nil && *c.project.Editor != "" {
		return *c.project.Editor, true
	}
	if c.global.Editor != nil && *c.global.Editor != "" {
		return *c.global.Editor, true
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v, true
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v, true
	}
	return "", false
}

// ProjectRoot returns the resolved project root.
func (c *Config) ProjectRoot() string { return c.projectRoot }

// StackPath returns the absolute stack directory path.
func (c *Config) StackPath() string {
	return filepath.Join(c.projectRoot, c.StackDir())
}

// ArchivePath returns the absolute archive directory path.
func (c *Config) ArchivePath() string {
	return filepath.Join(c.StackPath(), c.ArchiveDir())
}

// CategoryPath returns the directory for a category; the stack root when
// category is empty.
func (c *Config) CategoryPath(category string) string {
	if category == "" {
		return c.StackPath()
	}
	return filepath.Join(c.StackPath(), category)
}

// RelativePath renders path relative to the project root when possible.
func (c *Config) RelativePath(path string) string {
	rel, err := filepath.Rel(c.projectRoot, path)
	if err != nil {
		return path
	}
	return rel
}
