// Package config loads the game settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"territory/pkg/engine/world"
	"territory/pkg/game/generator"
	"territory/pkg/game/savegame"
	"territory/pkg/game/setup"
)

// Config holds the game settings. Zero or invalid fields are replaced with
// their defaults by Validate.
type Config struct {
	// Generator names the grid generator: random, walker, bsp or fallback.
	Generator       string   `yaml:"generator"`
	WallProbability float64  `yaml:"wall_probability"`
	Chests          int      `yaml:"chests"`
	MaxAttempts     int      `yaml:"max_attempts"`
	ItemPool        []string `yaml:"item_pool"`
	KeyItem         string   `yaml:"key_item"`

	RevealRadius int `yaml:"reveal_radius"`

	SavePath    string `yaml:"save_path"`
	SaveBackend string `yaml:"save_backend"` // file | sqlite

	Locale     string `yaml:"locale"`
	LocalesDir string `yaml:"locales_dir"`
}

// Default returns a Config with the standard settings.
func Default() *Config {
	return &Config{
		Generator:       generator.DefaultGenerator.Name(),
		WallProbability: 0.25,
		Chests:          6,
		MaxAttempts:     setup.DefaultMaxAttempts,
		ItemPool:        slices.Clone(setup.DefaultItemPool),
		KeyItem:         setup.DefaultKeyItem,
		RevealRadius:    world.FOVRadius,
		SavePath:        "data/save.txt",
		SaveBackend:     savegame.BackendFile,
		Locale:          "pt_BR",
		LocalesDir:      "locales",
	}
}

// Load reads path over the defaults. A missing file gives the defaults;
// a file that is not valid YAML is an error. Values are not checked until
// Validate is called.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Validate replaces out of range values with their defaults and returns
// the names of the fields it reset.
func (c *Config) Validate() []string {
	def := Default()
	var reset []string

	if generator.ByName(c.Generator) == nil {
		c.Generator = def.Generator
		reset = append(reset, "generator")
	}
	if c.WallProbability < 0 || c.WallProbability >= 1 {
		c.WallProbability = def.WallProbability
		reset = append(reset, "wall_probability")
	}
	if c.Chests < 1 {
		c.Chests = def.Chests
		reset = append(reset, "chests")
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = def.MaxAttempts
		reset = append(reset, "max_attempts")
	}
	if c.KeyItem == "" {
		c.KeyItem = def.KeyItem
		reset = append(reset, "key_item")
	}
	if c.RevealRadius < 0 {
		c.RevealRadius = def.RevealRadius
		reset = append(reset, "reveal_radius")
	}
	if c.SavePath == "" {
		c.SavePath = def.SavePath
		reset = append(reset, "save_path")
	}
	if c.SaveBackend != savegame.BackendFile && c.SaveBackend != savegame.BackendSQLite {
		c.SaveBackend = def.SaveBackend
		reset = append(reset, "save_backend")
	}
	return reset
}

// SetupOptions turns the settings into world generation options
func (c *Config) SetupOptions() setup.Options {
	opts := setup.DefaultOptions()
	opts.MaxAttempts = c.MaxAttempts
	opts.ItemPool = c.ItemPool
	opts.KeyItem = c.KeyItem

	switch c.Generator {
	case generator.Random.Name():
		g := generator.NewRandomGenerator()
		g.WallProbability = c.WallProbability
		g.Chests = c.Chests
		opts.Generator = g
	case generator.LineWalker.Name():
		g := generator.NewLineWalkerGenerator()
		g.Chests = c.Chests
		opts.Generator = g
	case generator.BSP.Name():
		g := generator.NewBSPGenerator()
		g.Chests = c.Chests
		opts.Generator = g
	default:
		if g := generator.ByName(c.Generator); g != nil {
			opts.Generator = g
		}
	}
	return opts
}
