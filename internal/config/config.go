package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/dshills/emtoggle/internal/config/loader"
)

// Config holds the current settings. Load and Save replace them wholesale.
type Config struct {
	mu sync.Mutex // serializes Load and Save

	path    string
	fs      loader.FileSystem
	env     loader.Loader
	logger  zerolog.Logger
	current atomic.Pointer[Settings]

	obsMu     sync.RWMutex
	observers map[uint64]Observer
	nextID    uint64
}

// Observer is called after the settings were replaced.
type Observer func(old, updated Settings)

// Option configures a Config instance.
type Option func(*Config)

// WithPath sets the settings file. The extension picks the format.
func WithPath(path string) Option {
	return func(c *Config) {
		c.path = path
	}
}

// WithFS sets the file system settings are read from.
func WithFS(fs loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fs
	}
}

// WithEnv replaces the environment layer.
func WithEnv(l loader.Loader) Option {
	return func(c *Config) {
		c.env = l
	}
}

// WithLogger sets the logger for load and reload events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.logger = logger
	}
}

// New creates a Config holding Defaults. Call Load to read the layers.
func New(opts ...Option) *Config {
	c := &Config{
		fs:        loader.DefaultFS(),
		env:       loader.NewEnvLoader(),
		logger:    zerolog.Nop(),
		observers: make(map[uint64]Observer),
	}
	for _, opt := range opts {
		opt(c)
	}
	defaults := Defaults()
	c.current.Store(&defaults)
	return c
}

// DefaultPath returns the per-user settings file path.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "emtoggle", "config.toml")
}

// Path returns the settings file path, which may be empty.
func (c *Config) Path() string {
	return c.path
}

// Settings returns the current settings.
func (c *Config) Settings() Settings {
	return *c.current.Load()
}

// Load reads defaults, the settings file and the environment, validates
// the result and makes it current. On error the current settings are kept.
func (c *Config) Load(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	merged := map[string]any{}
	if c.path != "" {
		file, err := loader.ForPath(c.fs, c.path).Load()
		if err != nil {
			return errors.Wrap(err, "loading settings file")
		}
		merged = loader.DeepMerge(merged, file)
	}
	env, err := c.env.Load()
	if err != nil {
		return errors.Wrap(err, "loading environment")
	}
	merged = loader.DeepMerge(merged, env)

	s, err := decode(merged)
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	c.replace(s)
	c.logger.Debug().
		Str("path", c.path).
		Str("delimiter", s.Emphasis.Delimiter.Name()).
		Str("structure", s.Emphasis.Structure).
		Msg("settings loaded")
	return nil
}

// Save validates s, writes it to the settings file and makes it current.
// The file is replaced atomically.
func (c *Config) Save(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if c.path == "" {
		return ErrNoPath
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := Encode(s, loader.FormatOf(c.path))
	if err != nil {
		return err
	}
	if err := writeAtomic(c.path, data); err != nil {
		return err
	}
	c.replace(s)
	c.logger.Info().Str("path", c.path).Msg("settings saved")
	return nil
}

// Subscribe registers fn for every replacement. The returned function
// removes it.
func (c *Config) Subscribe(fn Observer) func() {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	c.nextID++
	id := c.nextID
	c.observers[id] = fn
	return func() {
		c.obsMu.Lock()
		defer c.obsMu.Unlock()
		delete(c.observers, id)
	}
}

func (c *Config) replace(s Settings) {
	old := c.current.Swap(&s)

	c.obsMu.RLock()
	observers := make([]Observer, 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.obsMu.RUnlock()

	for _, fn := range observers {
		fn(*old, s)
	}
}

// decode lays the merged map over Defaults.
func decode(merged map[string]any) (Settings, error) {
	s := Defaults()
	data, err := toml.Marshal(merged)
	if err != nil {
		return Settings{}, errors.Wrap(err, "encoding merged settings")
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, errors.Mark(errors.Wrap(err, "decoding settings"), ErrInvalidSetting)
	}
	return s, nil
}

// Encode renders s in the given format.
func Encode(s Settings, format loader.Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if format == loader.FormatYAML {
		data, err = yaml.Marshal(s)
	} else {
		data, err = toml.Marshal(s)
	}
	return data, errors.Wrap(err, "encoding settings")
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	tmp, err := os.CreateTemp(dir, ".emtoggle-*")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing settings")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "writing settings")
	}
	return errors.Wrapf(os.Rename(tmp.Name(), path), "replacing %s", path)
}
