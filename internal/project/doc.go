// Package project maps project names to task trees and persists them.
//
// Each project is stored as one pretty-printed JSON document under
// <data_dir>/projects/<name>.json, with the current-project pointer in
// <data_dir>/current. Documents are validated against an embedded JSON
// Schema when loaded.
//
// A "default" project always exists: it is the initial current project,
// the fallback when the current project is deleted, and the one project
// that cannot itself be deleted. Exactly one project is current at any
// time.
//
// Earlier releases kept every project in a single tasks.json in the data
// directory (and before that, a bare task array). Both layouts are
// migrated to the per-project layout on first use.
package project
