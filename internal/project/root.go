package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestName is the project configuration file looked up from the working
// directory upwards.
const ManifestName = "japy.toml"

// ManifestEnv, when set, names the manifest to use instead of searching.
const ManifestEnv = "JAPY_MANIFEST"

// FindManifest locates japy.toml: $JAPY_MANIFEST if set, otherwise the
// nearest one in startDir or its parents.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if explicit := os.Getenv(ManifestEnv); explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", false, fmt.Errorf("%s: %w", ManifestEnv, err)
		}
		if _, err := os.Stat(abs); err != nil {
			return "", false, fmt.Errorf("%s points at %q: %w", ManifestEnv, explicit, err)
		}
		return abs, true, nil
	}

	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		st, err := os.Stat(candidate)
		switch {
		case err == nil && !st.IsDir():
			return candidate, true, nil
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
