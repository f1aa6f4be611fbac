package config

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/hearth/pkg/errors"
	"github.com/arthur-debert/hearth/pkg/logging"
	"github.com/arthur-debert/hearth/pkg/paths"
	"github.com/arthur-debert/hearth/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
	tomlv2 "github.com/pelletier/go-toml/v2"
)

// Load reads the configuration at path.
//
// When the file does not exist a configuration is synthesized (imported from
// a legacy hearth.cfg next to it when present, the defaults otherwise) and
// written back on a best-effort basis: a failed write is logged, not returned.
// An existing file that cannot be read or decoded is an error.
func Load(fsys types.FS, path string) (*Config, error) {
	logger := logging.GetLogger("config")

	data, err := fsys.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
				WithDetail("path", path)
		}
		return create(fsys, path)
	}

	cfg, err := decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config file %s", path).
			WithDetail("path", path)
	}

	logger.Debug().
		Str("path", path).
		Strs("ignores", cfg.Ignores).
		Str("activeSource", cfg.ActiveSource).
		Msg("Loaded configuration")
	return cfg, nil
}

func create(fsys types.FS, path string) (*Config, error) {
	logger := logging.GetLogger("config")

	cfg := Default()
	legacyPath := filepath.Join(filepath.Dir(path), paths.LegacyConfigFileName)
	if _, err := fsys.Stat(legacyPath); err == nil {
		legacy, err := LoadLegacy(legacyPath)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("path", legacyPath).Msg("Imported legacy configuration")
		cfg = legacy
	} else {
		logger.Info().Str("path", path).Msg("Config file not found, generating one")
	}

	if err := Save(fsys, path, cfg); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Error creating config file")
	}
	return cfg, nil
}

func decode(data []byte) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, err
	}
	if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
		return nil, err
	}

	var fc fileConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &fc,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &fc, unmarshalConf); err != nil {
		return nil, err
	}
	return fc.toConfig(), nil
}

// Save writes cfg to path, replacing any previous content.
func Save(fsys types.FS, path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "cannot encode configuration")
	}
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "cannot write config file %s", path).
			WithDetail("path", path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Saved configuration")
	return nil
}

// Marshal renders cfg in the on-disk TOML form.
func Marshal(cfg *Config) ([]byte, error) {
	return tomlv2.Marshal(fromConfig(cfg))
}
