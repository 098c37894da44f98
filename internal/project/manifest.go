package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a loaded colt.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Warn    WarnFor       `toml:"warn"`
	Fold    FoldConfig    `toml:"fold"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

// FoldConfig holds defaults for `colt fold`.
type FoldConfig struct {
	Jobs int    `toml:"jobs"`
	Emit string `toml:"emit"`
}

// DefaultConfig is what an absent key decodes to.
func DefaultConfig() Config {
	return Config{
		Warn: WarnAll(),
		Fold: FoldConfig{Emit: "text"},
	}
}

// LoadManifest finds colt.toml above startDir and loads it. ok is false when
// there is no manifest.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindColtToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// LoadConfig decodes and validates one colt.toml.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if cfg.Fold.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [fold].jobs must not be negative", path)
	}
	switch cfg.Fold.Emit {
	case "text", "msgpack":
	default:
		return Config{}, fmt.Errorf("%s: [fold].emit must be text or msgpack, got %q", path, cfg.Fold.Emit)
	}
	return cfg, nil
}
