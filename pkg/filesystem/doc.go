// Package filesystem provides filesystem implementations for hearth.
//
// It contains the types.FS implementations (the OS filesystem and an
// afero-backed one used by tests) and the copy and move helpers the
// installer and backup manager are built on.
package filesystem
