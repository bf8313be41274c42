package config

import (
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/dshills/emtoggle/internal/emphasis"
)

// Structure names accepted by EmphasisSettings.Structure.
const (
	StructureTree = "tree"
	StructureNone = "none"
)

// Settings is the complete emtoggle configuration.
type Settings struct {
	Emphasis EmphasisSettings `toml:"emphasis" yaml:"emphasis"`
	Log      LogSettings      `toml:"log" yaml:"log"`
}

// EmphasisSettings configures toggling.
type EmphasisSettings struct {
	// Delimiter is inserted when emphasis is added.
	Delimiter emphasis.Delimiter `toml:"delimiter" yaml:"delimiter"`

	// Structure selects cursor expansion: "tree" consults the markdown
	// parse tree, "none" expands to words only.
	Structure string `toml:"structure" yaml:"structure"`
}

// LogSettings configures logging.
type LogSettings struct {
	Level string `toml:"level" yaml:"level"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Emphasis: EmphasisSettings{
			Delimiter: emphasis.DefaultDelimiter,
			Structure: StructureTree,
		},
		Log: LogSettings{Level: zerolog.InfoLevel.String()},
	}
}

// Validate checks every field.
func (s Settings) Validate() error {
	if !s.Emphasis.Delimiter.Valid() {
		return errors.Wrapf(ErrInvalidSetting, "emphasis.delimiter %q", byte(s.Emphasis.Delimiter))
	}
	switch s.Emphasis.Structure {
	case StructureTree, StructureNone:
	default:
		return errors.Wrapf(ErrInvalidSetting, "emphasis.structure %q", s.Emphasis.Structure)
	}
	if _, err := s.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level.
func (s Settings) LogLevel() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(s.Log.Level)
	if err != nil {
		return zerolog.NoLevel, errors.Mark(errors.Wrapf(err, "log.level %q", s.Log.Level), ErrInvalidSetting)
	}
	return lvl, nil
}
