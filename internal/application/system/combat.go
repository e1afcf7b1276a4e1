package system

import (
	"math/rand"

	"github.com/younwookim/finnshooter/internal/domain/entity"
	"github.com/younwookim/finnshooter/internal/infrastructure/config"
)

// Shooter is the character as seen by the combat system
type Shooter interface {
	NextBullet() (*entity.Projectile, bool)
	TakeDamage(amount int)
	Radius() float64
}

// CombatSystem is the playfield around the character: it takes over the
// character's projectiles, flies them, and runs the enemies that chase the
// character.
type CombatSystem struct {
	arena           config.ArenaConfig
	projectileSpeed float64
	bounds          entity.Bounds
	rng             *rand.Rand

	projectiles []*entity.Projectile
	enemies     []*entity.Enemy
	nextID      entity.EntityID
	ticks       int
	kills       int

	// Event callbacks
	OnKill      func(e *entity.Enemy)
	OnPlayerHit func(damage int)
}

// NewCombatSystem creates a new combat system over bounds
func NewCombatSystem(cfg *config.GameConfig, bounds entity.Bounds, rng *rand.Rand) *CombatSystem {
	return &CombatSystem{
		arena:           cfg.Arena,
		projectileSpeed: cfg.Projectile.Speed,
		bounds:          bounds,
		rng:             rng,
		projectiles:     make([]*entity.Projectile, 0, 32),
		enemies:         make([]*entity.Enemy, 0, cfg.Arena.MaxEnemies),
	}
}

// Update runs one tick. target is the point enemies chase and hit.
func (s *CombatSystem) Update(shooter Shooter, target entity.Vec2) {
	s.collectBullets(shooter)
	s.updateProjectiles()

	s.ticks++
	if s.arena.SpawnInterval > 0 && s.ticks%s.arena.SpawnInterval == 0 {
		s.spawnEnemy()
	}

	for _, e := range s.enemies {
		e.Chase(target)
	}
	s.checkCollisions(shooter, target)
	s.compact()
}

// collectBullets pops every pending projectile, newest first, and launches it
func (s *CombatSystem) collectBullets(shooter Shooter) {
	for p, ok := shooter.NextBullet(); ok; p, ok = shooter.NextBullet() {
		p.Launch(s.projectileSpeed)
		if p.Active {
			s.projectiles = append(s.projectiles, p)
		}
	}
}

func (s *CombatSystem) updateProjectiles() {
	for _, p := range s.projectiles {
		p.Update()
		if !s.bounds.Contains(p.Center()) {
			p.Deactivate()
		}
	}
}

// SpawnEnemy adds an enemy at pos
func (s *CombatSystem) SpawnEnemy(pos entity.Vec2) *entity.Enemy {
	s.nextID++
	e := entity.NewEnemy(
		s.nextID,
		pos,
		s.arena.EnemyRadius,
		s.arena.EnemyHealth,
		s.arena.EnemySpeed,
		s.arena.ContactDamage,
		s.arena.AttackCooldown,
	)
	s.enemies = append(s.enemies, e)
	return e
}

// spawnEnemy places a new enemy on a random point of the arena edge
func (s *CombatSystem) spawnEnemy() {
	if s.alive() >= s.arena.MaxEnemies {
		return
	}

	w, h := s.bounds.Width, s.bounds.Height
	var pos entity.Vec2
	switch s.rng.Intn(4) {
	case 0:
		pos = entity.Vec2{X: s.rng.Float64() * w, Y: 0}
	case 1:
		pos = entity.Vec2{X: s.rng.Float64() * w, Y: h}
	case 2:
		pos = entity.Vec2{X: 0, Y: s.rng.Float64() * h}
	default:
		pos = entity.Vec2{X: w, Y: s.rng.Float64() * h}
	}
	s.SpawnEnemy(pos)
}

func (s *CombatSystem) checkCollisions(shooter Shooter, target entity.Vec2) {
	for _, p := range s.projectiles {
		if !p.Active {
			continue
		}
		for _, e := range s.enemies {
			if !e.Hits(p) {
				continue
			}
			p.Deactivate()
			if e.TakeDamage(p.Damage) {
				s.kills++
				if s.OnKill != nil {
					s.OnKill(e)
				}
			}
			break
		}
	}

	for _, e := range s.enemies {
		dmg := e.TryAttack(target, shooter.Radius())
		if dmg == 0 {
			continue
		}
		shooter.TakeDamage(dmg)
		if s.OnPlayerHit != nil {
			s.OnPlayerHit(dmg)
		}
	}
}

// compact drops inactive projectiles and dead enemies in place
func (s *CombatSystem) compact() {
	projectiles := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.Active {
			projectiles = append(projectiles, p)
		}
	}
	clear(s.projectiles[len(projectiles):])
	s.projectiles = projectiles

	enemies := s.enemies[:0]
	for _, e := range s.enemies {
		if e.IsAlive() {
			enemies = append(enemies, e)
		}
	}
	clear(s.enemies[len(enemies):])
	s.enemies = enemies
}

func (s *CombatSystem) alive() int {
	n := 0
	for _, e := range s.enemies {
		if e.IsAlive() {
			n++
		}
	}
	return n
}

// GetProjectiles returns the projectiles in flight
func (s *CombatSystem) GetProjectiles() []*entity.Projectile {
	return s.projectiles
}

// GetEnemies returns the living enemies
func (s *CombatSystem) GetEnemies() []*entity.Enemy {
	return s.enemies
}

// Kills returns the number of enemies destroyed
func (s *CombatSystem) Kills() int {
	return s.kills
}

// Ticks returns the number of updates run
func (s *CombatSystem) Ticks() int {
	return s.ticks
}
