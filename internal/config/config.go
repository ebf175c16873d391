package config

import (
	"fmt"
	"strings"

	"github.com/chemistrykit/chemkit/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// License decision modes.
const (
	LicenseAsk = "ask"
	LicenseYes = "yes"
	LicenseNo  = "no"
)

// Keys bound to flags of the same name.
var boundKeys = []string{"lang", "templates", "pretend", "quiet"}

// Settings are the resolved options for one "new" run.
type Settings struct {
	Language  string
	Templates string // empty means the embedded templates
	License   string // one of LicenseAsk, LicenseYes, LicenseNo
	Pretend   bool
	Quiet     bool
}

// Load resolves settings with precedence: explicitly set flags, then the
// config file (if file is non-empty), then defaults. --license and
// --no-license override the file's license key.
func Load(file string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetConfigType(fileType)
	v.SetDefault("lang", branding.DefaultLanguage())
	v.SetDefault("license", LicenseAsk)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	if flags != nil {
		for _, key := range boundKeys {
			f := flags.Lookup(key)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", key, err)
			}
		}
	}

	license, err := normalizeLicense(v.GetString("license"))
	if err != nil {
		return nil, err
	}

	s := &Settings{
		Language:  v.GetString("lang"),
		Templates: v.GetString("templates"),
		License:   license,
		Pretend:   v.GetBool("pretend"),
		Quiet:     v.GetBool("quiet"),
	}

	if changed(flags, "license") {
		s.License = LicenseYes
	}
	if changed(flags, "no-license") {
		s.License = LicenseNo
	}
	return s, nil
}

// normalizeLicense maps the accepted spellings of the license key onto a mode.
func normalizeLicense(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", LicenseAsk:
		return LicenseAsk, nil
	case LicenseYes, "y", "true":
		return LicenseYes, nil
	case LicenseNo, "n", "false":
		return LicenseNo, nil
	default:
		return "", fmt.Errorf("invalid license setting %q: want ask, yes or no", value)
	}
}

func changed(flags *pflag.FlagSet, name string) bool {
	if flags == nil {
		return false
	}
	f := flags.Lookup(name)
	return f != nil && f.Changed
}
