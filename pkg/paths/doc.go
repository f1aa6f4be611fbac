// Package paths provides centralized path handling for hearth.
//
// # Layout
//
//	$HOME/                      install destination for dotfiles
//	$HEARTH_HOME (~/.hearth)/
//	    hearth.toml             configuration
//	    hearth.cfg              legacy configuration, imported once
//	    local_backup/           home dotfiles saved on the first run
//	    <owner>_<name>/         one checkout per remote source
//
// Inside a source, plugin sub-dependencies are listed in
// .vim/bundle/packages and fetched next to it under .vim/bundle/.
//
// # Environment Variables
//
//   - HOME: the install destination
//   - HEARTH_HOME: overrides the working directory (default: ~/.hearth)
package paths
