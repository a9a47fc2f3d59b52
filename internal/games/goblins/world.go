package goblins

import "github.com/vovakirdan/goblin-arcade/internal/core"

// World owns every live entity collection. Destroyed entities are flagged
// during a tick and removed by compact before the tick returns.
type World struct {
	Enemies     []*Enemy
	Projectiles []*Projectile
	Effects     []*Effect

	nextID uint32
}

func (w *World) id() uint32 {
	w.nextID++
	return w.nextID
}

func (w *World) addEnemy(pos core.Vec2, angle, speed float64, t Tuning) *Enemy {
	e := &Enemy{
		ID:     w.id(),
		Pos:    pos,
		Angle:  angle,
		Health: t.EnemyHealth,
		Speed:  speed,
		Radius: t.EnemyRadius,
	}
	w.Enemies = append(w.Enemies, e)
	return e
}

func (w *World) addProjectile(pos core.Vec2, angle float64, t Tuning) *Projectile {
	p := &Projectile{
		ID:     w.id(),
		Pos:    pos,
		Angle:  angle,
		Speed:  t.ProjectileSpeed,
		Radius: t.ProjectileRadius,
	}
	w.Projectiles = append(w.Projectiles, p)
	return p
}

func (w *World) addEffect(pos core.Vec2, angle float64) *Effect {
	e := &Effect{
		ID:      w.id(),
		Pos:     pos,
		Angle:   angle,
		Opacity: 1,
	}
	w.Effects = append(w.Effects, e)
	return e
}

// removeAll drops every entity. IDs keep increasing across sessions.
func (w *World) removeAll() {
	w.Enemies = w.Enemies[:0]
	w.Projectiles = w.Projectiles[:0]
	w.Effects = w.Effects[:0]
}

// compact removes entities destroyed during the current tick, preserving order.
func (w *World) compact() {
	w.Enemies = compactSlice(w.Enemies, func(e *Enemy) bool { return !e.dead })
	w.Projectiles = compactSlice(w.Projectiles, func(p *Projectile) bool { return !p.dead })
	w.Effects = compactSlice(w.Effects, func(e *Effect) bool { return !e.dead })
}

func compactSlice[T any](items []T, keep func(T) bool) []T {
	n := 0
	for _, it := range items {
		if keep(it) {
			items[n] = it
			n++
		}
	}
	var zero T
	for i := n; i < len(items); i++ {
		items[i] = zero
	}
	return items[:n]
}
