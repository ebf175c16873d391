package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ErrInvalid is returned when a set.yaml fails schema validation.
var ErrInvalid = errors.New("invalid template set manifest")

// Parse decodes a set.yaml document without validating it.
func Parse(data []byte) (*SetManifest, error) {
	var m SetManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing template set manifest: %w", err)
	}
	return &m, nil
}

// Load reads <set>/set.yaml from fsys, validates it against the schema and
// returns the parsed manifest. Read failures are returned wrapped so callers
// can detect them with errors.As(err, *fs.PathError).
func Load(fsys fs.FS, set string) (*SetManifest, error) {
	p := path.Join(set, FileName)
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", p, err)
	}
	if !result.Valid {
		msgs := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("%w %s: %s", ErrInvalid, p, strings.Join(msgs, "; "))
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	if m.Name != set {
		return nil, fmt.Errorf("%w %s: name %q does not match directory %q", ErrInvalid, p, m.Name, set)
	}
	if m.Version != "" {
		if _, err := parseSemver(m.Version); err != nil {
			return nil, fmt.Errorf("%w %s: version %q: %v", ErrInvalid, p, m.Version, err)
		}
	}
	return m, nil
}

// List returns every template set found at the top level of fsys, sorted by
// name. Directories without a set.yaml are ignored.
func List(fsys fs.FS) ([]*SetManifest, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading template root: %w", err)
	}

	var sets []*SetManifest
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := fs.Stat(fsys, path.Join(entry.Name(), FileName)); err != nil {
			continue
		}
		m, err := Load(fsys, entry.Name())
		if err != nil {
			return nil, err
		}
		sets = append(sets, m)
	}

	sort.Slice(sets, func(i, j int) bool { return sets[i].Name < sets[j].Name })
	return sets, nil
}
