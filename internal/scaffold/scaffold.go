package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"github.com/chemistrykit/chemkit/internal/branding"
	"github.com/chemistrykit/chemkit/internal/manifest"
)

// Action describes what happened to a single generated file.
type Action string

const (
	ActionCreate    Action = "create"    // file did not exist
	ActionIdentical Action = "identical" // existing content already matched
	ActionForce     Action = "force"     // existing content was replaced
)

// Reporter receives progress output from a Generator.
type Reporter interface {
	Status(action, path string)
	Warn(msg string)
}

// noticeReporter is the default Reporter. It drops status lines but still
// prints notices, so a declined license is never silent.
type noticeReporter struct {
	w io.Writer
}

func (noticeReporter) Status(string, string) {}

func (r noticeReporter) Warn(msg string) {
	fmt.Fprintln(r.w, msg)
}

// File is one path written (or, in pretend mode, that would be written).
type File struct {
	Path   string
	Action Action
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Root            string
	Set             *manifest.SetManifest
	Files           []File
	LicenseDeclined bool
}

// Paths returns the path of every generated file in creation order.
func (r *Result) Paths() []string {
	paths := make([]string, len(r.Files))
	for i, f := range r.Files {
		paths[i] = f.Path
	}
	return paths
}

// Generator renders projects from a template root.
type Generator struct {
	templates  fs.FS
	language   string
	baseDir    string
	cliVersion string
	pretend    bool
	reporter   Reporter
}

// Option configures a Generator.
type Option func(*Generator)

// WithTemplates replaces the embedded template root.
func WithTemplates(fsys fs.FS) Option {
	return func(g *Generator) { g.templates = fsys }
}

// WithLanguage selects the template set. Empty keeps the default.
func WithLanguage(lang string) Option {
	return func(g *Generator) {
		if lang != "" {
			g.language = lang
		}
	}
}

// WithBaseDir sets the directory the project directory is created in.
func WithBaseDir(dir string) Option {
	return func(g *Generator) { g.baseDir = dir }
}

// WithCLIVersion sets the version checked against each set's requires constraint.
func WithCLIVersion(version string) Option {
	return func(g *Generator) { g.cliVersion = version }
}

// WithPretend reports every action without touching the filesystem.
func WithPretend(pretend bool) Option {
	return func(g *Generator) { g.pretend = pretend }
}

// WithReporter sets where status lines and notices go. Without it, status
// lines are dropped and notices are written to stderr.
func WithReporter(r Reporter) Option {
	return func(g *Generator) {
		if r != nil {
			g.reporter = r
		}
	}
}

// New creates a Generator using the embedded templates and the default language.
func New(opts ...Option) *Generator {
	g := &Generator{
		templates: DefaultTemplates(),
		language:  branding.DefaultLanguage(),
		baseDir:   ".",
		reporter:  noticeReporter{w: os.Stderr},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes <name>/lib/<name>.<ext> and then asks confirm whether to
// copy the bundled license to <name>/LICENSE. A negative answer is reported
// as a notice and is not an error. Files written before a failure are left
// in place.
func (g *Generator) Generate(name string, confirm ConfirmFunc) (*Result, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if confirm == nil {
		confirm = Always(false)
	}

	set, err := g.loadSet()
	if err != nil {
		return nil, err
	}

	content, err := g.render(set, NewProjectData(name))
	if err != nil {
		return nil, err
	}

	result := &Result{
		Root: filepath.Join(g.baseDir, name),
		Set:  set,
	}

	libRel := filepath.Join(name, "lib", name+"."+set.Extension)
	f, err := g.writeFile(libRel, content)
	if err != nil {
		return nil, err
	}
	result.Files = append(result.Files, f)

	ok, err := confirm()
	if err != nil {
		return nil, fmt.Errorf("license decision: %w", err)
	}
	if !ok {
		result.LicenseDeclined = true
		g.reporter.Warn(branding.LicenseDeclined())
		return result, nil
	}

	license, err := fs.ReadFile(g.templates, LicenseFile)
	if err != nil {
		return nil, &IOError{Op: "read", Path: LicenseFile, Err: err}
	}
	f, err = g.writeFile(filepath.Join(name, LicenseFile), license)
	if err != nil {
		return nil, err
	}
	result.Files = append(result.Files, f)

	return result, nil
}

// loadSet reads and checks the manifest of the selected template set.
func (g *Generator) loadSet() (*manifest.SetManifest, error) {
	set, err := manifest.Load(g.templates, g.language)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, &IOError{Op: "locate", Path: path.Join(g.language, manifest.FileName), Err: err}
		}
		return nil, err
	}
	if err := manifest.CheckCompatible(set, g.cliVersion); err != nil {
		return nil, err
	}
	return set, nil
}

// render executes the set's library template against data.
func (g *Generator) render(set *manifest.SetManifest, data *ProjectData) ([]byte, error) {
	tmplPath := path.Join(set.Name, set.Template)
	tmplBytes, err := fs.ReadFile(g.templates, tmplPath)
	if err != nil {
		return nil, &IOError{Op: "read", Path: tmplPath, Err: err}
	}

	tmpl, err := template.New(set.Template).Funcs(templateFuncs()).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmplPath, err)
	}
	return buf.Bytes(), nil
}

// writeFile writes content to rel under the base directory, creating parent
// directories. Byte-equal files are left untouched.
func (g *Generator) writeFile(rel string, content []byte) (File, error) {
	full := filepath.Join(g.baseDir, rel)

	action := ActionCreate
	if existing, err := os.ReadFile(full); err == nil {
		action = ActionForce
		if bytes.Equal(existing, content) {
			action = ActionIdentical
		}
	}

	if !g.pretend && action != ActionIdentical {
		dir := filepath.Dir(full)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return File{}, &IOError{Op: "mkdir", Path: dir, Err: err}
		}
		if err := os.WriteFile(full, content, 0644); err != nil {
			return File{}, &IOError{Op: "write", Path: full, Err: err}
		}
	}

	g.reporter.Status(string(action), rel)
	return File{Path: full, Action: action}, nil
}
