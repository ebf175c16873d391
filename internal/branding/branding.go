// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded into the binary; forks edit it and rebuild.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	LicenseName     string `yaml:"license_name"`
	LicenseQuestion string `yaml:"license_question"`
	LicenseDeclined string `yaml:"license_declined"`
	DefaultLanguage string `yaml:"default_language"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:         "chemkit",
			DisplayName:     "ChemistryKit",
			Description:     "Project scaffolding generator",
			LicenseName:     "MIT",
			LicenseQuestion: "Use MIT license?",
			LicenseDeclined: "Shame on you…",
			DefaultLanguage: "ruby",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "chemkit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// LicenseName returns the name of the bundled license (e.g., "MIT").
func LicenseName() string { load(); return defaults.LicenseName }

// LicenseQuestion returns the yes/no question asked before copying the license.
func LicenseQuestion() string { load(); return defaults.LicenseQuestion }

// LicenseDeclined returns the notice printed when the license is declined.
func LicenseDeclined() string { load(); return defaults.LicenseDeclined }

// DefaultLanguage returns the template set used when none is requested.
func DefaultLanguage() string { load(); return defaults.DefaultLanguage }
