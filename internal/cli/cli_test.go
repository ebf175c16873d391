package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chemistrykit/chemkit/internal/branding"
	"github.com/chemistrykit/chemkit/internal/scaffold"
	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

var testInfo = BuildInfo{Version: "0.3.0", Commit: "abc123", Date: "2026-01-02"}

// run executes the command tree in a fresh working directory and returns
// that directory, the combined output and the error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)

	var out bytes.Buffer
	cmd := NewRootCmd(testInfo)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return dir, out.String(), err
}

func TestNewWithLicenseFlag(t *testing.T) {
	dir, out, err := run(t, "", "new", "widget", "--license")
	if err != nil {
		t.Fatalf("new error: %v\n%s", err, out)
	}

	assertExists(t, filepath.Join(dir, "widget", "lib", "widget.rb"))
	assertExists(t, filepath.Join(dir, "widget", "LICENSE"))
	assertContains(t, out, "create  "+filepath.Join("widget", "lib", "widget.rb"))
	assertContains(t, out, "create  "+filepath.Join("widget", "LICENSE"))
	assertNotContains(t, out, branding.LicenseQuestion())
}

func TestNewInteractiveYes(t *testing.T) {
	dir, out, err := run(t, "yes\n", "new", "widget")
	if err != nil {
		t.Fatalf("new error: %v\n%s", err, out)
	}
	assertContains(t, out, branding.LicenseQuestion()+" [y/N]")
	assertExists(t, filepath.Join(dir, "widget", "LICENSE"))
}

func TestNewInteractiveNo(t *testing.T) {
	dir, out, err := run(t, "n\n", "new", "widget")
	if err != nil {
		t.Fatalf("new error: %v\n%s", err, out)
	}
	assertExists(t, filepath.Join(dir, "widget", "lib", "widget.rb"))
	assertMissing(t, filepath.Join(dir, "widget", "LICENSE"))
	assertContains(t, out, branding.LicenseDeclined())
}

func TestNewNoLicenseFlag(t *testing.T) {
	dir, out, err := run(t, "y\n", "new", "widget", "--no-license")
	if err != nil {
		t.Fatalf("new error: %v\n%s", err, out)
	}
	assertMissing(t, filepath.Join(dir, "widget", "LICENSE"))
	assertNotContains(t, out, branding.LicenseQuestion())
}

func TestNewConflictingLicenseFlags(t *testing.T) {
	_, _, err := run(t, "", "new", "widget", "--license", "--no-license")
	if err == nil {
		t.Fatal("expected error for --license with --no-license")
	}
}

func TestNewRequiresOneArg(t *testing.T) {
	for _, args := range [][]string{{"new"}, {"new", "a", "b"}} {
		if _, _, err := run(t, "", args...); err == nil {
			t.Errorf("expected error for args %v", args)
		}
	}
}

func TestNewEmptyName(t *testing.T) {
	_, _, err := run(t, "", "new", "", "--license")
	if !errors.Is(err, scaffold.ErrEmptyName) {
		t.Errorf("error = %v, want ErrEmptyName", err)
	}
}

func TestNewGoLanguage(t *testing.T) {
	dir, out, err := run(t, "", "new", "widget", "--lang", "go", "--no-license")
	if err != nil {
		t.Fatalf("new error: %v\n%s", err, out)
	}
	data, err := os.ReadFile(filepath.Join(dir, "widget", "lib", "widget.go"))
	if err != nil {
		t.Fatalf("reading generated file: %v", err)
	}
	assertContains(t, string(data), "package widget")
}

func TestNewPretend(t *testing.T) {
	dir, out, err := run(t, "", "new", "widget", "--license", "--pretend")
	if err != nil {
		t.Fatalf("new error: %v\n%s", err, out)
	}
	assertMissing(t, filepath.Join(dir, "widget"))
	assertContains(t, out, "create")
	assertContains(t, out, "Pretend run: nothing was written under widget.")
}

func TestNewQuiet(t *testing.T) {
	_, out, err := run(t, "", "new", "widget", "--license", "-q")
	if err != nil {
		t.Fatalf("new error: %v\n%s", err, out)
	}
	if out != "" {
		t.Errorf("quiet run printed %q", out)
	}
}

func TestNewTwiceReportsIdentical(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	for i, want := range []string{"create", "identical"} {
		var out bytes.Buffer
		cmd := NewRootCmd(testInfo)
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"new", "widget", "--license"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("run %d error: %v", i+1, err)
		}
		assertContains(t, out.String(), want+"  "+filepath.Join("widget", "LICENSE"))
	}
}

func TestNewMissingTemplatesDir(t *testing.T) {
	_, _, err := run(t, "", "new", "widget", "--templates", "/nonexistent/chemkit-templates")
	var ioErr *scaffold.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("error = %v, want *scaffold.IOError", err)
	}
}

func TestNewConfigFile(t *testing.T) {
	cfgDir := t.TempDir()
	cfg := filepath.Join(cfgDir, "chemkit.yaml")
	if err := os.WriteFile(cfg, []byte("lang: go\nlicense: \"no\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	dir, out, err := run(t, "", "new", "widget", "--config", cfg)
	if err != nil {
		t.Fatalf("new error: %v\n%s", err, out)
	}
	assertExists(t, filepath.Join(dir, "widget", "lib", "widget.go"))
	assertMissing(t, filepath.Join(dir, "widget", "LICENSE"))
}

func TestTemplatesList(t *testing.T) {
	_, out, err := run(t, "", "templates")
	if err != nil {
		t.Fatalf("templates error: %v", err)
	}
	assertContains(t, out, "NAME")
	assertContains(t, out, "ruby")
	assertContains(t, out, ".rb")
	assertContains(t, out, "go")
	if strings.Index(out, "go ") > strings.Index(out, "ruby") {
		t.Errorf("sets should be sorted by name:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		_, out, err := run(t, "", "version")
		if err != nil {
			t.Fatal(err)
		}
		assertContains(t, out, "chemkit version 0.3.0 (commit: abc123, built: 2026-01-02)")
	})

	t.Run("short", func(t *testing.T) {
		_, out, err := run(t, "", "version", "--short")
		if err != nil {
			t.Fatal(err)
		}
		if out != "0.3.0\n" {
			t.Errorf("output = %q, want %q", out, "0.3.0\n")
		}
	})

	t.Run("json", func(t *testing.T) {
		_, out, err := run(t, "", "version", "--json")
		if err != nil {
			t.Fatal(err)
		}
		var info map[string]string
		if err := json.Unmarshal([]byte(out), &info); err != nil {
			t.Fatalf("invalid JSON %q: %v", out, err)
		}
		if info["commit"] != "abc123" {
			t.Errorf("commit = %q, want %q", info["commit"], "abc123")
		}
	})
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("boom"))
	if buf.String() != "Error: boom\n" {
		t.Errorf("printError wrote %q", buf.String())
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func assertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent, stat err = %v", path, err)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("output does not contain %q\n--- output ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("output should not contain %q\n--- output ---\n%s", substr, content)
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
