package game

import (
	"image/color"

	"mirkhollow/internal/mathutil"
	"mirkhollow/internal/monster"
	"mirkhollow/internal/nav"
	"mirkhollow/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorFloor = color.RGBA{44, 44, 52, 255}
	colorWall  = color.RGBA{110, 110, 125, 255}
	colorCover = color.RGBA{40, 78, 48, 255}
	colorSpawn = color.RGBA{60, 60, 80, 255}

	colorPath      = color.RGBA{230, 200, 60, 255}
	colorSightSeen = color.RGBA{80, 220, 80, 200}
	colorSightMiss = color.RGBA{140, 60, 60, 140}
	colorPlayer    = color.RGBA{70, 140, 240, 255}

	levelColors = map[monster.Level]color.RGBA{
		monster.LevelDocile:   {120, 200, 120, 255},
		monster.LevelCautious: {200, 200, 90, 255},
		monster.LevelCurious:  {230, 160, 60, 255},
		monster.LevelBold:     {230, 100, 50, 255},
		monster.LevelHostile:  {230, 40, 40, 255},
	}
)

// Renderer draws the top-down zone view: cells, the agent, the threat and,
// when the overlay is on, the planned path and the last sight ray.
type Renderer struct {
	zone  *world.Zone
	scale float64
	offX  float64
	offY  float64
}

func NewRenderer(zone *world.Zone, screenW, screenH int) *Renderer {
	r := &Renderer{zone: zone}
	worldW := float64(zone.Width) * zone.CellSize
	worldH := float64(zone.Height) * zone.CellSize
	sx := float64(screenW) / worldW
	sy := float64(screenH-hudHeight) / worldH
	r.scale = sx
	if sy < sx {
		r.scale = sy
	}
	// Center the zone in the free area above the HUD.
	r.offX = (float64(screenW) - worldW*r.scale) / 2
	r.offY = (float64(screenH-hudHeight) - worldH*r.scale) / 2
	return r
}

func (r *Renderer) toScreen(p mathutil.Vec3) (float32, float32) {
	return float32(r.offX + p.X*r.scale), float32(r.offY + p.Z*r.scale)
}

func (r *Renderer) DrawZone(screen *ebiten.Image) {
	cell := float32(r.zone.CellSize * r.scale)
	for cz := 0; cz < r.zone.Height; cz++ {
		for cx := 0; cx < r.zone.Width; cx++ {
			var c color.RGBA
			switch r.zone.Cell(cx, cz) {
			case world.CellFloor:
				c = colorFloor
			case world.CellWall:
				c = colorWall
			case world.CellCover:
				c = colorCover
			default:
				continue
			}
			x := float32(r.offX + float64(cx)*r.zone.CellSize*r.scale)
			y := float32(r.offY + float64(cz)*r.zone.CellSize*r.scale)
			vector.DrawFilledRect(screen, x, y, cell, cell, c, false)
		}
	}
	for _, sc := range r.zone.SpawnCells() {
		x, y := r.toScreen(r.zone.CellCenter(sc[0], sc[1]))
		vector.DrawFilledCircle(screen, x, y, 3, colorSpawn, true)
	}
}

func (r *Renderer) DrawNodes(screen *ebiten.Image, nodes []nav.Node) {
	c := color.RGBA{70, 70, 85, 160}
	for _, n := range nodes {
		x, y := r.toScreen(n.Centroid)
		vector.DrawFilledCircle(screen, x, y, 1.5, c, false)
	}
}

func (r *Renderer) DrawOverlay(screen *ebiten.Image, events *eventLog) {
	if len(events.lastPath) > 1 {
		for i := 1; i < len(events.lastPath); i++ {
			x0, y0 := r.toScreen(events.lastPath[i-1])
			x1, y1 := r.toScreen(events.lastPath[i])
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, colorPath, true)
		}
	}

	if events.sightFrom != events.sightTo {
		sc := colorSightMiss
		if events.sightVisible {
			sc = colorSightSeen
		}
		x0, y0 := r.toScreen(events.sightFrom)
		x1, y1 := r.toScreen(events.sightTo)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, sc, true)
	}
}

func (r *Renderer) DrawAgent(screen *ebiten.Image, a monster.Agent) {
	x, y := r.toScreen(a.Pos)
	c, ok := levelColors[a.Level]
	if !ok {
		c = levelColors[monster.LevelDocile]
	}
	vector.DrawFilledCircle(screen, x, y, 7, c, true)
	r.drawFacing(screen, a.Pos, a.Forward, 14, c)
}

func (r *Renderer) DrawPlayer(screen *ebiten.Image, p *Player) {
	x, y := r.toScreen(p.Position())
	vector.DrawFilledCircle(screen, x, y, 6, colorPlayer, true)
	r.drawFacing(screen, p.Position(), p.Forward(), 16, colorPlayer)
}

func (r *Renderer) drawFacing(screen *ebiten.Image, pos, fwd mathutil.Vec3, length float64, c color.RGBA) {
	dir := fwd.Flatten().Normalized()
	if dir.IsZero() {
		return
	}
	x0, y0 := r.toScreen(pos)
	tip := pos.Add(dir.Scale(length / r.scale))
	x1, y1 := r.toScreen(tip)
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, c, true)
}
