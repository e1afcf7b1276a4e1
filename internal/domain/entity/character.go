package entity

// Clock reports wall-clock time in milliseconds
type Clock interface {
	NowMillis() int64
}

// HealthIndicator receives the character's health every tick
type HealthIndicator interface {
	UpdateHealth(value int)
	Update()
}

// Initial animation state, shared by every new character
const (
	initialFrame        = 10
	initialFrameCounter = 10
)

// CharacterSpec holds the per-session constants of a Character
type CharacterSpec struct {
	Health   int
	Damage   float64
	FireRate float64 // shots per second
	Speed    float64 // units per tick
	Radius   float64
	Width    float64
	Height   float64

	ShotWidth  float64
	ShotHeight float64
}

// DefaultCharacterSpec returns the stock character
func DefaultCharacterSpec() CharacterSpec {
	return CharacterSpec{
		Health:     100,
		Damage:     10,
		FireRate:   10,
		Speed:      3.5,
		Radius:     20,
		Width:      70,
		Height:     100,
		ShotWidth:  10,
		ShotHeight: 10,
	}
}

// Character is the player-controlled entity.
//
// Input handlers (KeyDown, KeyUp, MouseMove) mutate intent between ticks;
// Update turns that intent into movement, shots and animation. Nothing here is
// safe for concurrent use: callers serialize handlers against Update.
type Character struct {
	spec CharacterSpec

	position  Vec2 // top-left of the sprite box
	direction Direction
	aim       Vec2

	health int
	damage float64

	cooldown Cooldown
	time     int64
	firing   bool
	moving   bool

	// bullets is a stack; the newest projectile is handed out first.
	bullets []*Projectile

	currentFrame int
	frameCounter int

	clock     Clock
	indicator HealthIndicator
}

// NewCharacter creates a character centred horizontally on the surface,
// standing on the three-quarter line.
func NewCharacter(spec CharacterSpec, surface Bounds, clock Clock, indicator HealthIndicator) *Character {
	if indicator == nil {
		indicator = nopIndicator{}
	}
	return &Character{
		spec: spec,
		position: Vec2{
			X: (surface.Width - spec.Width) / 2,
			Y: surface.Height*0.75 - spec.Height,
		},
		health:       spec.Health,
		damage:       spec.Damage,
		cooldown:     NewCooldown(spec.FireRate),
		time:         clock.NowMillis(),
		bullets:      make([]*Projectile, 0, 16),
		currentFrame: initialFrame,
		frameCounter: initialFrameCounter,
		clock:        clock,
		indicator:    indicator,
	}
}

// MouseMove records the pointer position relative to the surface origin
func (c *Character) MouseMove(x, y float64) {
	c.aim = Vec2{X: x, Y: y}
}

// KeyDown handles a key press. The latest movement key on an axis wins.
func (c *Character) KeyDown(key string) {
	switch key {
	case "d":
		c.direction = c.direction.WithX(1)
		c.moving = true
	case "a":
		c.direction = c.direction.WithX(-1)
		c.moving = true
	case "w":
		c.direction = c.direction.WithY(-1)
		c.moving = true
	case "s":
		c.direction = c.direction.WithY(1)
		c.moving = true
	case "f":
		c.firing = true
	}
}

// KeyUp handles a key release. A movement key only clears its axis when it
// still matches the held sign; releasing an overridden key does nothing.
func (c *Character) KeyUp(key string) {
	if (key == "d" && c.direction.X == 1) || (key == "a" && c.direction.X == -1) {
		c.moving = false
		c.direction = c.direction.WithX(0)
	}
	if key == "f" {
		c.firing = false
	}
	if (key == "w" && c.direction.Y == -1) || (key == "s" && c.direction.Y == 1) {
		c.moving = false
		c.direction = c.direction.WithY(0)
	}
}

// UpdateDamage multiplies the current damage. Calls compound.
func (c *Character) UpdateDamage(multiplier float64) {
	c.damage *= multiplier
}

// TakeDamage subtracts amount from health
func (c *Character) TakeDamage(amount int) {
	c.health -= amount
}

// IsDead reports whether health has dropped to zero or below
func (c *Character) IsDead() bool {
	return c.health <= 0
}

// NextBullet pops the most recently created projectile
func (c *Character) NextBullet() (*Projectile, bool) {
	n := len(c.bullets)
	if n == 0 {
		return nil, false
	}
	p := c.bullets[n-1]
	c.bullets[n-1] = nil
	c.bullets = c.bullets[:n-1]
	return p, true
}

// AnyBullets reports whether projectiles are waiting to be popped
func (c *Character) AnyBullets() bool {
	return len(c.bullets) > 0
}

// Fire creates one projectile if the cooldown allows it, measured against the
// time captured by the last Update. Returns true when a projectile was created.
func (c *Character) Fire() bool {
	if !c.cooldown.Ready(c.time) {
		return false
	}
	spawn := float64(c.clock.NowMillis()) + c.aim.Y
	c.bullets = append(c.bullets, NewProjectile(
		spawn,
		c.position,
		c.aim,
		c.spec.ShotWidth,
		c.spec.ShotHeight,
		c.damage,
	))
	c.cooldown.Trigger(c.clock.NowMillis())
	return true
}

// Update runs one simulation tick
func (c *Character) Update() {
	c.indicator.UpdateHealth(c.health)
	c.indicator.Update()

	c.time = c.clock.NowMillis()

	if c.firing {
		c.Fire()
	}

	c.move()

	if c.moving {
		c.currentFrame = MovingCadence.Next(c.currentFrame, c.frameCounter)
	} else {
		c.currentFrame = IdleCadence.Next(c.currentFrame, c.frameCounter)
	}

	c.frameCounter++
}

// move applies one tick of movement; speed is in units per tick
func (c *Character) move() {
	c.position = c.position.Add(Vec2{X: c.spec.Speed * float64(c.direction.X)})
	c.position = c.position.Add(Vec2{Y: float64(c.direction.Y) * c.spec.Speed})
}

// Position returns the top-left of the sprite box
func (c *Character) Position() Vec2 { return c.position }

// Direction returns the held movement intent
func (c *Character) Direction() Direction { return c.direction }

// Aim returns the last pointer position
func (c *Character) Aim() Vec2 { return c.aim }

// Health returns the current health
func (c *Character) Health() int { return c.health }

// MaxHealth returns the starting health
func (c *Character) MaxHealth() int { return c.spec.Health }

// Damage returns the current outgoing damage per shot
func (c *Character) Damage() float64 { return c.damage }

// Radius returns the hit and indicator radius
func (c *Character) Radius() float64 { return c.spec.Radius }

// Size returns the sprite box dimensions
func (c *Character) Size() (w, h float64) { return c.spec.Width, c.spec.Height }

// IsMoving reports whether a movement key is considered held
func (c *Character) IsMoving() bool { return c.moving }

// IsFiring reports whether the fire key is held
func (c *Character) IsFiring() bool { return c.firing }

// CurrentFrame returns the sprite frame index
func (c *Character) CurrentFrame() int { return c.currentFrame }

// FrameCounter returns the number of ticks seen, starting from the initial offset
func (c *Character) FrameCounter() int { return c.frameCounter }

// LastFired returns the timestamp of the last successful shot
func (c *Character) LastFired() int64 { return c.cooldown.LastFired }

type nopIndicator struct{}

func (nopIndicator) UpdateHealth(int) {}
func (nopIndicator) Update()          {}
