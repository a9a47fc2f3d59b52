package goblins

import "github.com/vovakirdan/goblin-arcade/internal/core"

// Kind identifies the entity type behind a Body.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindEffect
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// Body is the view of an entity the host needs for overlap testing.
type Body interface {
	Kind() Kind
	Position() core.Vec2
	BoundsRadius() float64
}

// Player is the wizard controlled by the user.
type Player struct {
	ID     uint32
	Pos    core.Vec2
	Angle  float64 // facing, radians
	Radius float64
}

func (p *Player) Kind() Kind            { return KindPlayer }
func (p *Player) Position() core.Vec2   { return p.Pos }
func (p *Player) BoundsRadius() float64 { return p.Radius }

// Enemy is a goblin. Speed is fixed at creation.
type Enemy struct {
	ID     uint32
	Pos    core.Vec2
	Angle  float64
	Health int
	Speed  float64
	Radius float64

	dead bool
}

func (e *Enemy) Kind() Kind            { return KindEnemy }
func (e *Enemy) Position() core.Vec2   { return e.Pos }
func (e *Enemy) BoundsRadius() float64 { return e.Radius }

// Alive reports whether the enemy has not been destroyed this tick.
func (e *Enemy) Alive() bool { return !e.dead }

// Projectile is a spell flying along a fixed angle.
type Projectile struct {
	ID     uint32
	Pos    core.Vec2
	Angle  float64
	Speed  float64
	Radius float64

	dead bool
}

func (p *Projectile) Kind() Kind            { return KindProjectile }
func (p *Projectile) Position() core.Vec2   { return p.Pos }
func (p *Projectile) BoundsRadius() float64 { return p.Radius }

// Alive reports whether the projectile has not been destroyed this tick.
func (p *Projectile) Alive() bool { return !p.dead }

// Effect is a spark flash that fades out and removes itself.
type Effect struct {
	ID      uint32
	Pos     core.Vec2
	Angle   float64 // display only
	Opacity float64

	dead bool
}

func (e *Effect) Kind() Kind            { return KindEffect }
func (e *Effect) Position() core.Vec2   { return e.Pos }
func (e *Effect) BoundsRadius() float64 { return 0 }

// Alive reports whether the effect is still visible.
func (e *Effect) Alive() bool { return !e.dead }
