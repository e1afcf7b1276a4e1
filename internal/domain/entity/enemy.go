package entity

// Enemy is a chaser that walks toward the character and deals contact damage.
type Enemy struct {
	ID     EntityID
	Pos    Vec2 // centre
	Radius float64
	Active bool

	MaxHealth     int
	Health        float64
	Speed         float64 // units per tick
	ContactDamage int

	// AttackCooldown is the number of ticks between two contact hits.
	AttackCooldown int
	attackTimer    int

	// HitTimer counts down ticks of hit flash after taking damage
	HitTimer int
}

// NewEnemy creates a new enemy at pos
func NewEnemy(id EntityID, pos Vec2, radius float64, health int, speed float64, contactDamage, attackCooldown int) *Enemy {
	return &Enemy{
		ID:             id,
		Pos:            pos,
		Radius:         radius,
		Active:         true,
		MaxHealth:      health,
		Health:         float64(health),
		Speed:          speed,
		ContactDamage:  contactDamage,
		AttackCooldown: attackCooldown,
	}
}

// Chase moves the enemy one tick toward target
func (e *Enemy) Chase(target Vec2) {
	if !e.IsAlive() {
		return
	}
	if e.HitTimer > 0 {
		e.HitTimer--
	}
	if e.attackTimer > 0 {
		e.attackTimer--
	}

	delta := target.Sub(e.Pos)
	if delta.Len() <= e.Speed {
		e.Pos = target
		return
	}
	e.Pos = e.Pos.Add(delta.Normalize().Scale(e.Speed))
}

// TryAttack returns the damage dealt to a circle at pos with radius r,
// or 0 when not touching or still cooling down.
func (e *Enemy) TryAttack(pos Vec2, r float64) int {
	if !e.IsAlive() || e.attackTimer > 0 {
		return 0
	}
	if !circlesOverlap(e.Pos, e.Radius, pos, r) {
		return 0
	}
	e.attackTimer = e.AttackCooldown
	return e.ContactDamage
}

// Hits reports whether the projectile overlaps the enemy
func (e *Enemy) Hits(p *Projectile) bool {
	return e.IsAlive() && p.Active && circlesOverlap(e.Pos, e.Radius, p.Center(), p.HitRadius())
}

// TakeDamage applies damage to the enemy and returns true when it died
func (e *Enemy) TakeDamage(damage float64) bool {
	e.Health -= damage
	e.HitTimer = 6
	if e.Health <= 0 {
		e.Active = false
	}
	return e.Health <= 0
}

// IsAlive returns true if enemy is still alive
func (e *Enemy) IsAlive() bool {
	return e.Health > 0 && e.Active
}
