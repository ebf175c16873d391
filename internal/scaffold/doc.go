// Package scaffold generates a new project skeleton from embedded templates.
// It powers "chemkit new": a library stub rendered at <name>/lib/<name>.<ext>
// and, when the caller's decision callback agrees, a verbatim copy of the
// bundled LICENSE at <name>/LICENSE.
//
// Existing files are overwritten and nothing is rolled back on failure, so a
// run can always be repeated with the same name.
package scaffold
