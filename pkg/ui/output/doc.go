// Package output renders hearth's user-facing announcements.
//
// Every action that touches the user's files (backup, copy, delete, clone)
// is announced on the command's standard output as it happens, one line per
// action. Lines are styled through the registry in output/styles; when the
// output is not a terminal lipgloss renders them as plain text.
package output
