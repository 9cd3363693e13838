package trigger

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/delog-tool/delog/pkg/types"
)

// yamlTriggersFile is the on-disk shape of a trigger definitions file.
type yamlTriggersFile struct {
	Triggers []yamlTrigger `yaml:"triggers"`
}

type yamlTrigger struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Call        string   `yaml:"call"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Examples    []string `yaml:"examples"`
}

func convertYAMLTrigger(y yamlTrigger) *types.Trigger {
	t := &types.Trigger{
		ID:          y.ID,
		Name:        y.Name,
		Call:        y.Call,
		Description: y.Description,
		Keywords:    y.Keywords,
		Examples:    y.Examples,
	}
	if t.Name == "" {
		t.Name = t.Call
	}
	return t
}

// Loader handles loading trigger definitions from YAML files.
type Loader struct {
	fs fs.FS // embedded filesystem for builtin triggers
}

// NewLoader creates a loader with builtin triggers from the embedded
// filesystem.
func NewLoader() *Loader {
	return &Loader{fs: builtinTriggersFS}
}

// NewLoaderWithFS creates a loader with a custom filesystem.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{fs: fsys}
}

// LoadTriggers loads trigger definitions from YAML bytes.
func (l *Loader) LoadTriggers(data []byte) ([]*types.Trigger, error) {
	var yamlFile yamlTriggersFile
	if err := yaml.Unmarshal(data, &yamlFile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(yamlFile.Triggers) == 0 {
		return nil, fmt.Errorf("no triggers found in YAML")
	}

	var triggers []*types.Trigger
	for _, yt := range yamlFile.Triggers {
		t := convertYAMLTrigger(yt)
		if err := t.Validate(); err != nil {
			return nil, err
		}
		triggers = append(triggers, t)
	}
	return triggers, nil
}

// LoadTriggerFile loads trigger definitions from a YAML file path.
func (l *Loader) LoadTriggerFile(path string) ([]*types.Trigger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return l.LoadTriggers(data)
}

// LoadBuiltinTriggers loads all builtin triggers from the embedded
// filesystem.
func (l *Loader) LoadBuiltinTriggers() ([]*types.Trigger, error) {
	var triggers []*types.Trigger

	err := fs.WalkDir(l.fs, "triggers", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(l.fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		loaded, err := l.LoadTriggers(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		triggers = append(triggers, loaded...)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return triggers, nil
}

// Resolve maps a name to a trigger: builtin triggers match by ID, name, or
// call; anything else becomes an ad-hoc trigger for that call name.
func (l *Loader) Resolve(name string) (*types.Trigger, error) {
	builtin, err := l.LoadBuiltinTriggers()
	if err != nil {
		return nil, err
	}

	for _, t := range builtin {
		if t.ID == name || t.Name == name || t.Call == name {
			return t, nil
		}
	}

	t := types.NewTrigger(name)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
