// Package types defines the interfaces shared across hearth: the FS
// abstraction every package reads and writes through, and the Fetcher and
// Prompter seams used by source resolution.
package types
