package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"japy/internal/dialect"
	"japy/internal/project"
	"japy/internal/pyexec"
)

// resetFlags restores every flag to its default so global commands can be
// executed repeatedly within one test binary.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func executeCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(append([]string{"--color", "off", "--quiet"}, args...))
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

const helloJapy = "デフ メイン（）：\n    プリント（『ハロー、ジャパイ！』）\nメイン（）\n"
const helloPy = "def メイン():\n    print('ハロー,ジャパイ!')\nメイン()\n"

func TestTranspileCommand_PrintsPython(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeTestFile(t, "hello.japy", helloJapy)

	out, _, err := executeCLI(t, "transpile", "hello.japy")
	if err != nil {
		t.Fatalf("transpile: %v", err)
	}
	if out != helloPy {
		t.Fatalf("stdout = %q, want %q", out, helloPy)
	}
}

func TestTranspileCommand_InputFlagAndHeader(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeTestFile(t, "hello.japy", helloJapy)

	out, _, err := executeCLI(t, "transpile", "-i", "hello.japy", "--header")
	if err != nil {
		t.Fatalf("transpile: %v", err)
	}
	want := headerLine + "\n" + helloPy
	if out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestTranspileCommand_RejectsInputTwice(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeTestFile(t, "hello.japy", helloJapy)

	if _, _, err := executeCLI(t, "transpile", "-i", "hello.japy", "hello.japy"); err == nil {
		t.Fatalf("expected error when input is given twice")
	}
}

func TestTranspileCommand_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeTestFile(t, "hello.japy", helloJapy)

	out, _, err := executeCLI(t, "transpile", "hello.japy", "-o", "hello.py")
	if err != nil {
		t.Fatalf("transpile: %v", err)
	}
	if out != "" {
		t.Fatalf("stdout should be empty with --output, got %q", out)
	}
	data, err := os.ReadFile(filepath.Join(dir, "hello.py"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != helloPy {
		t.Fatalf("hello.py = %q, want %q", data, helloPy)
	}
}

func TestTranspileCommand_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, _, err := executeCLI(t, "transpile", "absent.japy")
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestTranspileCommand_NoInputOutsideProject(t *testing.T) {
	t.Chdir(t.TempDir())
	_, _, err := executeCLI(t, "transpile")
	if err == nil || err.Error() != noInputMessage {
		t.Fatalf("expected %q, got %v", noInputMessage, err)
	}
}

func TestTranspileCommand_UsesManifestMainAndHeader(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeTestFile(t, project.ManifestName, "[package]\nmain = \"src/app.japy\"\n\n[transpile]\nheader = true\n")
	writeTestFile(t, filepath.Join("src", "app.japy"), "プリント（１）\n")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(filepath.Join(dir, "sub"))

	out, _, err := executeCLI(t, "transpile")
	if err != nil {
		t.Fatalf("transpile: %v", err)
	}
	if want := headerLine + "\nprint(1)\n"; out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestTranspileCommand_Explain(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeTestFile(t, "hello.japy", helloJapy)

	out, _, err := executeCLI(t, "transpile", "hello.japy", "--explain")
	if err != nil {
		t.Fatalf("transpile: %v", err)
	}
	want := strings.Join([]string{
		"1:1\tデフ\tdef\tkeyword",
		"2:5\tプリント\tprint\tbuiltin",
		"",
	}, "\n")
	if out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestRunCommand_ExecutesProgram(t *testing.T) {
	if _, err := pyexec.Resolve(""); err != nil {
		t.Skipf("python not available: %v", err)
	}
	dir := t.TempDir()
	t.Chdir(dir)
	writeTestFile(t, "args.japy", "インポート sys\nプリント（sys.argv【１：】）\n")

	out, _, err := executeCLI(t, "run", "args.japy", "--", "a", "b")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "['a', 'b']\n" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestValidateCommand(t *testing.T) {
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--color", "off", "validate"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	for _, want := range []string{"all 35 keywords are mapped", "total builtin mappings: 75"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestTablesCommand_JSON(t *testing.T) {
	out, _, err := executeCLI(t, "tables", "--category", "digit", "--format", "json")
	if err != nil {
		t.Fatalf("tables: %v", err)
	}
	var rows []struct {
		Category string `json:"category"`
		From     string `json:"from"`
		To       string `json:"to"`
	}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(rows) != 10 {
		t.Fatalf("expected 10 digit rows, got %d", len(rows))
	}
	if rows[0].From != "０" || rows[0].To != "0" || rows[0].Category != "digit" {
		t.Fatalf("first row = %+v", rows[0])
	}
}

func TestTablesCommand_ReverseYAMLSkipsShadowedGlyphs(t *testing.T) {
	out, _, err := executeCLI(t, "tables", "-c", "symbol", "--reverse", "--format", "yaml")
	if err != nil {
		t.Fatalf("tables: %v", err)
	}
	var rows []map[string]string
	if err := yaml.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	seen := map[string]string{}
	for _, r := range rows {
		if prev, dup := seen[r["from"]]; dup {
			t.Fatalf("%q listed twice (%q and %q)", r["from"], prev, r["to"])
		}
		seen[r["from"]] = r["to"]
	}
	if seen["*"] != "×" {
		t.Fatalf(`"*" should reverse to the first glyph "×", got %q`, seen["*"])
	}
	want := dialect.Default().Len(dialect.Symbol) - 6
	if len(rows) != want {
		t.Fatalf("expected %d rows, got %d", want, len(rows))
	}
}

func TestTablesCommand_PrettyAlignsColumns(t *testing.T) {
	out, _, err := executeCLI(t, "tables", "-c", "keyword")
	if err != nil {
		t.Fatalf("tables: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 36 {
		t.Fatalf("expected header plus 35 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "keyword   トゥルー") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
}

func TestTablesCommand_UnknownCategory(t *testing.T) {
	if _, _, err := executeCLI(t, "tables", "-c", "operators"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestCompleteCommand(t *testing.T) {
	out, _, err := executeCLI(t, "complete", "プリ")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != "プリント\tprint\tbuiltin\n" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if _, _, err := executeCLI(t, "init", "demo"); err != nil {
		t.Fatalf("init: %v", err)
	}
	cfg, err := project.LoadConfig(filepath.Join(dir, "demo", project.ManifestName))
	if err != nil {
		t.Fatalf("load generated manifest: %v", err)
	}
	if cfg.Package.Name != "demo" || cfg.Package.Main != "main.japy" || cfg.Build.Out != "build" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if _, err := os.Stat(filepath.Join(dir, "demo", "main.japy")); err != nil {
		t.Fatalf("main.japy not created: %v", err)
	}
	if _, _, err := executeCLI(t, "init", "demo"); err == nil {
		t.Fatalf("second init should fail")
	}
}

func TestInitThenTranspileHelloWorld(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if _, _, err := executeCLI(t, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	out, _, err := executeCLI(t, "transpile")
	if err != nil {
		t.Fatalf("transpile: %v", err)
	}
	want := "def メイン():\n    print('ハロー,ジャパイ!')\n\nif __name__ == '__main__':\n    メイン()\n"
	if out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeTestFile(t, filepath.Join("src", "main.japy"), helloJapy)
	writeTestFile(t, filepath.Join("src", "pkg", "util.japy"), "リターン ノン\n")

	if _, _, err := executeCLI(t, "build", "src", "-o", "out", "--no-cache", "--ui", "off", "-j", "2"); err != nil {
		t.Fatalf("build: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "out", "main.py"))
	if err != nil || string(data) != helloPy {
		t.Fatalf("main.py = %q, err %v", data, err)
	}
	data, err = os.ReadFile(filepath.Join(dir, "out", "pkg", "util.py"))
	if err != nil || string(data) != "return None\n" {
		t.Fatalf("util.py = %q, err %v", data, err)
	}
}

func TestBuildCommand_NoSources(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, _, err := executeCLI(t, "build", ".", "--no-cache", "--ui", "off"); err == nil {
		t.Fatalf("expected error for empty source tree")
	}
}

func TestBuildCommand_UsesManifestSettings(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, ".cache"))
	writeTestFile(t, project.ManifestName, "[build]\nsrc = \"app\"\nout = \"dist\"\njobs = 1\n")
	writeTestFile(t, filepath.Join("app", "x.japy"), "トゥルー\n")

	if _, _, err := executeCLI(t, "build", "--ui", "off"); err != nil {
		t.Fatalf("build: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "dist", "x.py"))
	if err != nil || string(data) != "True\n" {
		t.Fatalf("x.py = %q, err %v", data, err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".cache", cacheApp)); err != nil {
		t.Fatalf("cache dir not created: %v", err)
	}
}

func TestVersionCommand_JSON(t *testing.T) {
	out, _, err := executeCLI(t, "version", "--format", "json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if payload.Tool != "japy" || payload.Keywords != 35 || payload.Builtins != 75 || payload.Symbols != 38 || payload.Digits != 10 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if len(payload.Tables) != 16 {
		t.Fatalf("fingerprint prefix = %q", payload.Tables)
	}
}

func TestColorModeValidation(t *testing.T) {
	resetFlags(rootCmd)
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--color", "sometimes", "tables"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for invalid --color")
	}
}

func TestAutoModeFlag(t *testing.T) {
	probed := false
	probe := func() bool { probed = true; return true }
	tests := []struct {
		in      string
		want    bool
		probes  bool
		wantErr bool
	}{
		{in: "on", want: true},
		{in: "OFF", want: false},
		{in: " auto ", want: true, probes: true},
		{in: "", want: true, probes: true},
		{in: "sometimes", wantErr: true},
	}
	for _, tt := range tests {
		var m autoMode
		newAutoMode(&m)
		err := m.Set(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("Set(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Set(%q): %v", tt.in, err)
		}
		probed = false
		if got := m.enabled(probe); got != tt.want || probed != tt.probes {
			t.Fatalf("Set(%q).enabled = %v (probed %v), want %v (probed %v)", tt.in, got, probed, tt.want, tt.probes)
		}
	}
}

func TestBuildRejectsUnknownUIMode(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, _, err := executeCLI(t, "build", ".", "--ui", "sometimes"); err == nil {
		t.Fatalf("expected error for invalid --ui")
	}
}

func TestProfilingFlags(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")
	if _, _, err := executeCLI(t, "--cpu-profile", cpu, "--mem-profile", mem, "tables", "-c", "digit"); err != nil {
		t.Fatalf("tables: %v", err)
	}
	for _, p := range []string{cpu, mem} {
		if st, err := os.Stat(p); err != nil || st.Size() == 0 {
			t.Fatalf("profile %s not written: %v", p, err)
		}
	}
}
