package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the decoded japy.toml. Every field has a usable default, so a
// project without a manifest behaves like one with an empty manifest.
type Config struct {
	Package   PackageConfig   `toml:"package"`
	Transpile TranspileConfig `toml:"transpile"`
	Execute   ExecuteConfig   `toml:"execute"`
	Build     BuildConfig     `toml:"build"`
}

type PackageConfig struct {
	Name string `toml:"name"`
	Main string `toml:"main"`
}

type TranspileConfig struct {
	// Header prefixes stdout output with a comment line.
	Header bool `toml:"header"`
}

type ExecuteConfig struct {
	Interpreter string   `toml:"interpreter"`
	Args        []string `toml:"args"`
}

type BuildConfig struct {
	Src   string `toml:"src"`
	Out   string `toml:"out"`
	Jobs  int    `toml:"jobs"`
	Cache *bool  `toml:"cache"`
}

// Manifest is a loaded configuration and where it came from. Path and Root
// are empty when defaults are in use.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// DefaultConfig is what an empty manifest decodes to.
func DefaultConfig() Config {
	return Config{
		Package: PackageConfig{Main: "main.japy"},
		Build:   BuildConfig{Src: ".", Out: "build"},
	}
}

// CacheEnabled reports the build cache setting, defaulting to on.
func (b BuildConfig) CacheEnabled() bool {
	return b.Cache == nil || *b.Cache
}

// LoadConfig decodes path on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("package", "main") && strings.TrimSpace(cfg.Package.Main) == "" {
		return Config{}, fmt.Errorf("%s: [package].main must not be empty", path)
	}
	if cfg.Build.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [build].jobs must be >= 0", path)
	}
	return cfg, nil
}

// LoadManifest finds japy.toml above startDir and decodes it. When none
// exists it returns defaults with ok=false.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &Manifest{Config: DefaultConfig()}, false, nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// Resolve joins a manifest-relative path onto the project root.
func (m *Manifest) Resolve(rel string) string {
	if m == nil || m.Root == "" || filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(m.Root, filepath.FromSlash(rel))
}
