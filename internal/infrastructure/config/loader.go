package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the loader's filesystem
const FileName = "game.yaml"

// EnvPrefix prefixes environment overrides, e.g. FINN_DISPLAY_WIDTH
const EnvPrefix = "FINN"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads game.yaml over the defaults, applies environment overrides and
// validates the result. A missing file is not an error.
func (l *Loader) Load() (*GameConfig, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	data, err := fs.ReadFile(l.fsys, FileName)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read %s/%s: %w", l.basePath, FileName, err)
	default:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to parse %s/%s: %w", l.basePath, FileName, err)
		}
	}

	var cfg GameConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration
func Default() *GameConfig {
	v := viper.New()
	SetDefaults(v)

	var cfg GameConfig
	// Defaults are plain scalars; decoding them cannot fail.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// SetDefaults registers the default value of every key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("display.width", 800)
	v.SetDefault("display.height", 600)
	v.SetDefault("display.scale", 1)
	v.SetDefault("display.tps", 60)
	v.SetDefault("display.title", "Finn")

	v.SetDefault("character.health", 100)
	v.SetDefault("character.damage", 10.0)
	v.SetDefault("character.fireRate", 10.0)
	v.SetDefault("character.speed", 3.5)
	v.SetDefault("character.radius", 20.0)
	v.SetDefault("character.width", 70.0)
	v.SetDefault("character.height", 100.0)

	v.SetDefault("projectile.width", 10.0)
	v.SetDefault("projectile.height", 10.0)
	v.SetDefault("projectile.speed", 9.0)

	v.SetDefault("sprite.frames", 15)
	v.SetDefault("sprite.frameWidth", 20)
	v.SetDefault("sprite.frameHeight", 35)
	v.SetDefault("sprite.paddingX", 12)
	v.SetDefault("sprite.paddingY", 2)
	v.SetDefault("sprite.offsetX", 47.5)
	v.SetDefault("sprite.offsetY", 30.0)

	v.SetDefault("arena.maxEnemies", 4)
	v.SetDefault("arena.spawnInterval", 150)
	v.SetDefault("arena.enemyHealth", 30)
	v.SetDefault("arena.enemySpeed", 1.2)
	v.SetDefault("arena.enemyRadius", 16.0)
	v.SetDefault("arena.contactDamage", 10)
	v.SetDefault("arena.attackCooldown", 45)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	v.SetDefault("startScene", "pretty_main_menu")
	v.SetDefault("clock", "wall")
}

// Validate checks the values the simulation divides by or sizes with
func (c *GameConfig) Validate() error {
	switch {
	case c.Display.Width <= 0 || c.Display.Height <= 0:
		return fmt.Errorf("%w: display size %dx%d", ErrInvalid, c.Display.Width, c.Display.Height)
	case c.Display.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.Display.TPS)
	case c.Display.Scale <= 0:
		return fmt.Errorf("%w: scale %d", ErrInvalid, c.Display.Scale)
	case c.Character.FireRate <= 0:
		return fmt.Errorf("%w: fire rate %v", ErrInvalid, c.Character.FireRate)
	case c.Character.Speed < 0:
		return fmt.Errorf("%w: speed %v", ErrInvalid, c.Character.Speed)
	case c.Sprite.Frames <= 0 || c.Sprite.FrameWidth <= 0 || c.Sprite.FrameHeight <= 0:
		return fmt.Errorf("%w: sprite layout", ErrInvalid)
	case c.Clock != "wall" && c.Clock != "frame":
		return fmt.Errorf("%w: clock %q", ErrInvalid, c.Clock)
	}
	return nil
}
