package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Levels  []*LevelConfig // in play order
}

// Loader loads game configuration using fs.FS interface.
// physics.json at the root, levels/index.yaml plus one YAML per level.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns where the configs were loaded from (for logging)
func (l *Loader) BasePath() string { return l.basePath }

// LoadPhysics loads and validates physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	var cfg PhysicsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadLevelIndex loads levels/index.yaml
func (l *Loader) LoadLevelIndex() (*LevelIndex, error) {
	data, err := fs.ReadFile(l.fsys, "levels/index.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read level index: %w", err)
	}

	var idx LevelIndex
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("failed to parse level index: %w", err)
	}

	return &idx, nil
}

// LoadLevel loads and validates a level YAML file
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	p := path.Join("levels", name+".yaml")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadLevels loads every level listed in the index, in order
func (l *Loader) LoadLevels() ([]*LevelConfig, error) {
	idx, err := l.LoadLevelIndex()
	if err != nil {
		return nil, err
	}

	levels := make([]*LevelConfig, 0, len(idx.Levels))
	for _, name := range idx.Levels {
		lvl, err := l.LoadLevel(name)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}

	return levels, nil
}

// LoadAll loads all configurations (physics, levels)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	levels, err := l.LoadLevels()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Levels:  levels,
	}, nil
}
