package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display    DisplayConfig    `mapstructure:"display"`
	Character  CharacterConfig  `mapstructure:"character"`
	Projectile ProjectileConfig `mapstructure:"projectile"`
	Sprite     SpriteConfig     `mapstructure:"sprite"`
	Arena      ArenaConfig      `mapstructure:"arena"`
	Log        LogConfig        `mapstructure:"log"`

	// StartScene names the first scene: main_menu, pretty_main_menu or playing
	StartScene string `mapstructure:"startScene"`
	// Clock selects the simulation time source: wall or frame
	Clock string `mapstructure:"clock"`
}

type DisplayConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Scale  int    `mapstructure:"scale"`
	TPS    int    `mapstructure:"tps"`
	Title  string `mapstructure:"title"`
}

type CharacterConfig struct {
	Health   int     `mapstructure:"health"`
	Damage   float64 `mapstructure:"damage"`
	FireRate float64 `mapstructure:"fireRate"` // shots per second
	Speed    float64 `mapstructure:"speed"`    // units per tick
	Radius   float64 `mapstructure:"radius"`
	Width    float64 `mapstructure:"width"`
	Height   float64 `mapstructure:"height"`
}

type ProjectileConfig struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Speed  float64 `mapstructure:"speed"` // units per tick
}

// SpriteConfig lays out the character sheet and where it lands relative to
// the character position.
type SpriteConfig struct {
	Frames      int     `mapstructure:"frames"`
	FrameWidth  int     `mapstructure:"frameWidth"`
	FrameHeight int     `mapstructure:"frameHeight"`
	PaddingX    int     `mapstructure:"paddingX"`
	PaddingY    int     `mapstructure:"paddingY"`
	OffsetX     float64 `mapstructure:"offsetX"`
	OffsetY     float64 `mapstructure:"offsetY"`
}

type ArenaConfig struct {
	MaxEnemies     int     `mapstructure:"maxEnemies"`
	SpawnInterval  int     `mapstructure:"spawnInterval"` // ticks
	EnemyHealth    int     `mapstructure:"enemyHealth"`
	EnemySpeed     float64 `mapstructure:"enemySpeed"`
	EnemyRadius    float64 `mapstructure:"enemyRadius"`
	ContactDamage  int     `mapstructure:"contactDamage"`
	AttackCooldown int     `mapstructure:"attackCooldown"` // ticks
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}
