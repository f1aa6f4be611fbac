// Package config handles the hearth configuration file.
//
// The file is TOML with two sections:
//
//	[default]
//	ignores = [".git", ".gitignore"]
//	folders = false
//
//	[current]
//	repo = "/home/alice/.hearth/alice_dotfiles"
//
// Embedded defaults are loaded first with koanf and the user's file is
// layered on top, so keys missing from the file keep their default values.
// The [current] section is written only while a source is active.
//
// Configurations written by earlier releases (INI, hearth.cfg) are imported
// the first time hearth.toml is missing.
package config
