// Package cli defines the Cobra command tree for the chemkit CLI. Commands
// only parse flags, resolve settings and format output; generation itself is
// delegated to the scaffold package.
package cli
