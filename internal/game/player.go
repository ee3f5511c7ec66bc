package game

import (
	"math"

	"mirkhollow/internal/mathutil"
	"mirkhollow/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	playerMoveSpeed = 5.0 // units per second
	playerTurnSpeed = 2.5 // radians per second
)

// Player is the human-driven threat the agent reacts to. WASD moves relative
// to facing, arrow keys turn. Movement is blocked by walls but not by cover.
type Player struct {
	pos mathutil.Vec3
	yaw float64

	zone *world.Zone
}

func NewPlayer(zone *world.Zone, start mathutil.Vec3) *Player {
	return &Player{pos: start, zone: zone}
}

func (p *Player) Position() mathutil.Vec3 { return p.pos }

func (p *Player) Forward() mathutil.Vec3 {
	return mathutil.Vec3{X: math.Sin(p.yaw), Z: math.Cos(p.yaw)}
}

// Update reads movement input for one frame.
func (p *Player) Update(dt float64) {
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		p.yaw -= playerTurnSpeed * dt
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		p.yaw += playerTurnSpeed * dt
	}

	fwd := p.Forward()
	right := mathutil.Vec3{X: fwd.Z, Z: -fwd.X}

	var move mathutil.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		move = move.Add(fwd)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		move = move.Sub(fwd)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		move = move.Sub(right)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		move = move.Add(right)
	}
	if move.IsZero() {
		return
	}

	next := p.pos.Add(move.Normalized().Scale(playerMoveSpeed * dt))
	p.tryMove(next)
}

// tryMove slides along walls: the full step first, then each axis alone.
func (p *Player) tryMove(next mathutil.Vec3) {
	if p.walkableAt(next) {
		p.pos = next
		return
	}
	xOnly := mathutil.Vec3{X: next.X, Y: p.pos.Y, Z: p.pos.Z}
	if p.walkableAt(xOnly) {
		p.pos = xOnly
		return
	}
	zOnly := mathutil.Vec3{X: p.pos.X, Y: p.pos.Y, Z: next.Z}
	if p.walkableAt(zOnly) {
		p.pos = zOnly
	}
}

func (p *Player) walkableAt(pos mathutil.Vec3) bool {
	cx, cz, ok := p.zone.CellAt(pos)
	return ok && p.zone.Walkable(cx, cz)
}
