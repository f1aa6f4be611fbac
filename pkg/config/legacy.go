package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/hearth/pkg/errors"
	"github.com/sasbury/mini"
)

// Sections written by earlier releases. The default section was spelled in
// upper case; lower case is accepted for hand-edited files.
var legacyDefaultSections = []string{"DEFAULT", "default"}

const legacyCurrentSection = "current"

// LoadLegacy imports an INI configuration written by earlier releases:
//
//	[DEFAULT]
//	ignores = ['.git', '.gitignore']
//	folders = False
//
//	[current]
//	repo = /home/alice/.hearth/alice_dotfiles/
func LoadLegacy(path string) (*Config, error) {
	ini, err := mini.LoadConfiguration(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse legacy config file %s", path).
			WithDetail("path", path)
	}

	cfg := Default()
	if raw := legacyDefault(ini, "ignores"); raw != "" {
		cfg.Ignores = parseLegacyList(raw)
	}
	if raw := legacyDefault(ini, "folders"); raw != "" {
		folders, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "legacy config %s: folders", path)
		}
		cfg.Folders = folders
	}
	if repo := ini.StringFromSection(legacyCurrentSection, "repo", ""); repo != "" {
		cfg.ActiveSource = filepath.Clean(repo)
	}
	return cfg, nil
}

func legacyDefault(ini *mini.Config, key string) string {
	for _, section := range legacyDefaultSections {
		if v := ini.StringFromSection(section, key, ""); v != "" {
			return v
		}
	}
	return ini.String(key, "")
}

// parseLegacyList reads the printed list form "['.git', '.gitignore']".
// A bare comma separated value is accepted too.
func parseLegacyList(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")

	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.Trim(strings.TrimSpace(item), `'"`)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
