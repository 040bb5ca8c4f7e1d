package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/sprout/pkg/errors"
	pkgio "github.com/matzehuels/sprout/pkg/io"
	"github.com/matzehuels/sprout/pkg/pipeline"
)

// quiet silences status lines for the duration of a test.
func quiet(t *testing.T) {
	t.Helper()
	old := statusOut
	statusOut = io.Discard
	t.Cleanup(func() { statusOut = old })
}

// execute runs the root command with args and returns what it wrote to
// the command output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	quiet(t)
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv(envRedis, "")

	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.out = &out
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLoadGenome(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.json")
	if err := os.WriteFile(path, []byte(`{"edges": [[1, 2], [2, 3]]}`), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		arg      string
		want     string
		wantCode errors.Code
	}{
		{name: "expression", arg: "1-2-3, 2-4", want: "1-2, 2-3, 2-4"},
		{name: "json file", arg: path, want: "1-2, 2-3"},
		{name: "missing file", arg: filepath.Join(dir, "nope.json"), wantCode: errors.ErrCodeFileNotFound},
		{name: "bad expression", arg: "1--2", wantCode: errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := loadGenome(tt.arg)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("loadGenome(%q) error = %v, want %s", tt.arg, err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadGenome(%q) error: %v", tt.arg, err)
			}
			if got := g.String(); got != tt.want {
				t.Errorf("loadGenome(%q) = %s, want %s", tt.arg, got, tt.want)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"obj"}},
		{"ply", []string{"ply"}},
		{"obj, svg ,dot", []string{"obj", "svg", "dot"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.in, pipeline.FormatOBJ); !slices.Equal(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, want string
	}{
		{"", "sprout"},
		{"fish", "fish"},
		{"out/fish.obj", "out/fish"},
		{"fish.svg", "fish"},
		{"fish.v2", "fish.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, appName); got != tt.want {
			t.Errorf("basePath(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}

func TestWriteArtifacts(t *testing.T) {
	base := filepath.Join(t.TempDir(), "body")
	artifacts := map[string][]byte{"obj": []byte("o sprout\n"), "dot": []byte("graph G {}\n")}

	paths, err := writeArtifacts(base, []string{"dot", "obj", "ply"}, artifacts)
	if err != nil {
		t.Fatalf("writeArtifacts error: %v", err)
	}
	want := []string{base + ".dot", base + ".obj"}
	if !slices.Equal(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
	data, err := os.ReadFile(base + ".obj")
	if err != nil || string(data) != "o sprout\n" {
		t.Errorf("obj file = %q, %v", data, err)
	}
}

func TestFormatStats(t *testing.T) {
	line := formatStats(pipeline.Stats{NodeCount: 4, EdgeCount: 5, GrowTime: 3 * time.Millisecond}, true)
	for _, want := range []string{"4 nodes", "5 edges", "3ms", iconCached} {
		if !strings.Contains(line, want) {
			t.Errorf("formatStats missing %q: %s", want, line)
		}
	}
	if strings.Contains(line, "vertices") {
		t.Errorf("zero vertices should be left out: %s", line)
	}
	if !strings.Contains(formatStats(pipeline.Stats{}, false), iconFresh) {
		t.Error("uncached stats should say fresh")
	}
}

func TestRootCommandTree(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for _, name := range []string{"mutate", "grow", "generate", "render", "evolve", "config", "cache", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	if err != nil {
		t.Fatalf("config error: %v", err)
	}
	cfg, err := pkgio.DecodeConfig(strings.NewReader(out))
	if err != nil {
		t.Fatalf("config output does not decode: %v\n%s", err, out)
	}
	if cfg.Samples <= 0 || !strings.Contains(out, "samples") {
		t.Errorf("unexpected config output:\n%s", out)
	}
}

func TestConfigCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "body.toml")
	if err := os.WriteFile(path, []byte("sides = 7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "--config", path, "config")
	if err != nil {
		t.Fatalf("config error: %v", err)
	}
	if !strings.Contains(out, "sides = 7") {
		t.Errorf("config file not applied:\n%s", out)
	}
}

func TestMutateCommand(t *testing.T) {
	out, err := execute(t, "--no-cache", "mutate", "1-2-3, 2-4, 3-4")
	if err != nil {
		t.Fatalf("mutate error: %v", err)
	}
	if lines := strings.Count(out, "\n"); lines != 5 {
		t.Errorf("mutate listed %d descendants, want 5:\n%s", lines, out)
	}
	if !strings.Contains(out, "2(1,3)") {
		t.Errorf("mutate output missing first match:\n%s", out)
	}
}

func TestMutateOneWritesGenome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "child.json")
	if _, err := execute(t, "--no-cache", "mutate", "1-2, 1-3", "--one", "-o", path); err != nil {
		t.Fatalf("mutate --one error: %v", err)
	}
	g, err := pkgio.ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON error: %v", err)
	}
	if g.String() != "1-3, 1-4, 2-4, 3-4" {
		t.Errorf("child = %s", g)
	}
}

func TestGrowCommand(t *testing.T) {
	out, err := execute(t, "grow", "1-2, 1-3", "-n", "3", "--seed", "9")
	if err != nil {
		t.Fatalf("grow error: %v", err)
	}
	if lines := strings.Count(out, "\n"); lines != 4 {
		t.Errorf("grow printed %d generations, want 4:\n%s", lines, out)
	}

	// The second run is served from the file cache and must agree.
	again, err := execute(t, "grow", "1-2, 1-3", "-n", "3", "--seed", "9")
	if err != nil {
		t.Fatalf("second grow error: %v", err)
	}
	if again != out {
		t.Errorf("grow is not deterministic:\n%s\nvs\n%s", out, again)
	}
}

func TestGenerateCommand(t *testing.T) {
	base := filepath.Join(t.TempDir(), "fish")
	if _, err := execute(t, "--no-cache", "generate", "1-2-3-4, 2-5", "-n", "2", "-f", "obj,ply,dot", "-o", base); err != nil {
		t.Fatalf("generate error: %v", err)
	}
	for _, ext := range []string{".obj", ".ply", ".dot"} {
		info, err := os.Stat(base + ext)
		if err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", ext, err)
		}
	}
}

func TestGenerateCommandDegenerate(t *testing.T) {
	base := filepath.Join(t.TempDir(), "blob")
	if _, err := execute(t, "--no-cache", "generate", "", "-f", "obj,dot", "-o", base); err != nil {
		t.Fatalf("degenerate genome should not fail: %v", err)
	}
	if _, err := os.Stat(base + ".obj"); !os.IsNotExist(err) {
		t.Error("degenerate genome wrote a mesh")
	}
	if _, err := os.Stat(base + ".dot"); err != nil {
		t.Errorf("diagram not written: %v", err)
	}
}

func TestGenerateCommandBadFormat(t *testing.T) {
	_, err := execute(t, "--no-cache", "generate", "1-2", "-f", "stl")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestRenderCommandRejectsMeshFormat(t *testing.T) {
	_, err := execute(t, "--no-cache", "render", "1-2-3", "-f", "obj")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestRenderCommandDOT(t *testing.T) {
	base := filepath.Join(t.TempDir(), "diagram")
	if _, err := execute(t, "--no-cache", "render", "1-2-3, 2-4", "-f", "dot", "--detailed", "-o", base); err != nil {
		t.Fatalf("render error: %v", err)
	}
	data, err := os.ReadFile(base + ".dot")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "deg 3") {
		t.Errorf("detailed diagram lacks degree labels:\n%s", data)
	}
}

func TestCacheCommands(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	t.Setenv(envRedis, "")
	quiet(t)

	run := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		c := New(io.Discard, LogInfo)
		c.out = &out
		root := c.RootCommand()
		root.SetArgs(args)
		root.SetErr(io.Discard)
		if err := root.ExecuteContext(context.Background()); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out.String()
	}

	if got := strings.TrimSpace(run("cache", "path")); got != filepath.Join(cacheHome, appName) {
		t.Errorf("cache path = %q", got)
	}

	run("grow", "1-2, 1-3", "-n", "2")
	entries, _ := os.ReadDir(filepath.Join(cacheHome, appName))
	if len(entries) == 0 {
		t.Fatal("grow left nothing in the cache")
	}

	run("cache", "clear")
	entries, _ = os.ReadDir(filepath.Join(cacheHome, appName))
	if len(entries) != 0 {
		t.Errorf("%d entries left after clear", len(entries))
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion does not mention the program")
	}
}

func TestBundledExamples(t *testing.T) {
	for _, name := range []string{"seed.json", "fish.json"} {
		if _, err := loadGenome(filepath.Join("..", "..", "examples", "genomes", name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}

	out, err := execute(t, "--config", filepath.Join("..", "..", "examples", "body.toml"), "config")
	if err != nil {
		t.Fatalf("config error: %v", err)
	}
	if !strings.Contains(out, "samples = 64") {
		t.Errorf("example config not applied:\n%s", out)
	}
}
