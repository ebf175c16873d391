package manifest

// FileName is the manifest file expected at the root of every template set.
const FileName = "set.yaml"

// SetManifest describes one language template set. Extension has no leading
// dot, Requires is a semver constraint on the CLI version, and Template is
// relative to the set directory.
type SetManifest struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Extension   string `yaml:"extension" json:"extension"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	Requires    string `yaml:"requires,omitempty" json:"requires,omitempty"`
	Template    string `yaml:"template" json:"template"`
}

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/extension")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}
