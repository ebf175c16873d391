// Package manifest handles the set.yaml manifests that describe each bundled
// language template set. It parses them, validates them against an embedded
// JSON Schema, and checks their CLI version requirement.
package manifest
