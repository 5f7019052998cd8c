// Package storage persists the status snapshot as JSON.
//
// The snapshot is a point-in-time cache for the static site, not a log: every
// run overwrites public/data/status.json. Missing parent directories are created
// on write. All file access goes through an afero.Fs so tests can use memory.
package storage
