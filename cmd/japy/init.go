package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"japy/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new japy project",
	Long: `Initialize a new japy project by creating a project manifest (japy.toml)
and a hello-world entry point (main.japy). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// runInit creates japy.toml and main.japy in the target directory, refusing
// to overwrite an existing manifest. An existing main.japy is kept.
func runInit(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	target := wd
	if len(args) == 1 && args[0] != "." {
		target = args[0]
		if !filepath.IsAbs(target) {
			target = filepath.Join(wd, target)
		}
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "japy-project"
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}
	manifest, err := buildDefaultManifest(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(manifestPath, manifest, 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	mainPath := filepath.Join(target, "main.japy")
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainJapy), 0o600); err != nil {
			return fmt.Errorf("failed to write main.japy: %w", err)
		}
		createdMain = true
	}

	rel := target
	if r, err := filepath.Rel(wd, target); err == nil {
		rel = r
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized japy project in %s\n", rel)
	fmt.Fprintf(out, "  - %s\n", project.ManifestName)
	if createdMain {
		fmt.Fprintln(out, "  - main.japy")
	} else {
		fmt.Fprintln(out, "  - main.japy (existing)")
	}
	return nil
}

// initManifest is the subset of project.Config written by init; the other
// sections keep their defaults until the user adds them.
type initManifest struct {
	Package project.PackageConfig `toml:"package"`
	Build   initBuild             `toml:"build"`
}

type initBuild struct {
	Src string `toml:"src"`
	Out string `toml:"out"`
}

// buildDefaultManifest encodes the default configuration under name.
func buildDefaultManifest(name string) ([]byte, error) {
	cfg := project.DefaultConfig()
	cfg.Package.Name = name
	var b strings.Builder
	b.WriteString("# japy project manifest\n")
	m := initManifest{
		Package: cfg.Package,
		Build:   initBuild{Src: cfg.Build.Src, Out: cfg.Build.Out},
	}
	if err := toml.NewEncoder(&b).Encode(m); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return []byte(b.String()), nil
}

const defaultMainJapy = `デフ メイン（）：
    プリント（『ハロー、ジャパイ！』）

イフ ＿＿name＿＿ ＝＝ 『＿＿main＿＿』：
    メイン（）
`
