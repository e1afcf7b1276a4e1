package entity

// Projectile is a shot created by the Character.
// The Character only constructs it; flight and collision belong to whoever
// pops it off the character's bullet stack.
type Projectile struct {
	// SpawnTime is the creation timestamp (ms) offset by the aim's Y coordinate.
	SpawnTime float64
	Origin    Vec2
	Target    Vec2
	Width     float64
	Height    float64
	Damage    float64

	Pos    Vec2
	Vel    Vec2 // units per tick
	Active bool
}

// NewProjectile creates a projectile at origin aimed at target.
// It does not move until Launch is called.
func NewProjectile(spawnTime float64, origin, target Vec2, width, height, damage float64) *Projectile {
	return &Projectile{
		SpawnTime: spawnTime,
		Origin:    origin,
		Target:    target,
		Width:     width,
		Height:    height,
		Damage:    damage,
		Pos:       origin,
		Active:    true,
	}
}

// Launch sets the velocity to speed units per tick toward the target.
// A projectile whose target equals its origin has no heading and is deactivated.
func (p *Projectile) Launch(speed float64) {
	heading := p.Target.Sub(p.Origin).Normalize()
	if heading == (Vec2{}) {
		p.Active = false
		return
	}
	p.Vel = heading.Scale(speed)
}

// Update advances the projectile by one tick
func (p *Projectile) Update() {
	if !p.Active {
		return
	}
	p.Pos = p.Pos.Add(p.Vel)
}

// Center returns the centre of the projectile box
func (p *Projectile) Center() Vec2 {
	return p.Pos.Add(Vec2{X: p.Width / 2, Y: p.Height / 2})
}

// HitRadius returns the radius used for circle overlap tests
func (p *Projectile) HitRadius() float64 {
	if p.Width > p.Height {
		return p.Width / 2
	}
	return p.Height / 2
}

// Deactivate marks the projectile as inactive
func (p *Projectile) Deactivate() {
	p.Active = false
}
