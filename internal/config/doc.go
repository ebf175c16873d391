// Package config resolves the settings of a single run from command-line
// flags and an optional YAML file named with --config. Environment variables
// are not consulted and nothing is ever written back.
package config
