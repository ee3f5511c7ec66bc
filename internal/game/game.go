package game

import (
	"fmt"
	"image/color"
	"sync/atomic"

	"mirkhollow/internal/config"
	"mirkhollow/internal/game/keytracker"
	"mirkhollow/internal/mathutil"
	"mirkhollow/internal/monster"
	"mirkhollow/internal/nav"
	"mirkhollow/internal/perception"
	"mirkhollow/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game is the interactive shell: one agent, one player-driven threat, a
// top-down view of the zone. It implements ebiten.Game.
type Game struct {
	cfg  *config.Config
	zone *world.Zone

	controller *monster.Controller
	player     *Player

	events    *eventLog
	heartbeat *Heartbeat
	anim      *animLabel
	renderer  *Renderer
	keys      *keytracker.Tracker

	nodes []nav.Node // agent's group, for the overlay

	// pending holds a freshly loaded config until the loop goroutine picks
	// it up. All mutation of cfg happens in Update; the file watcher only
	// ever stores here.
	pending atomic.Pointer[config.Config]

	overlay bool
}

func NewGame(cfg *config.Config, zone *world.Zone, mesh *nav.Mesh) (*Game, error) {
	player := NewPlayer(zone, playerStart(zone))
	eyes := perception.NewRaycaster(zone)

	g := &Game{
		cfg:       cfg,
		zone:      zone,
		player:    player,
		events:    &eventLog{},
		heartbeat: &Heartbeat{},
		anim:      &animLabel{},
		renderer:  NewRenderer(zone, cfg.GetScreenWidth(), cfg.GetScreenHeight()),
		keys:      keytracker.New(),
		overlay:   true,
	}

	g.controller = monster.NewController(cfg, mesh, eyes, player, zone.Name)
	g.controller.SetAudioSink(g.heartbeat)
	g.controller.SetAnimationSink(g.anim)
	g.controller.SetObserver(g.events)
	if err := g.controller.Spawn(); err != nil {
		return nil, fmt.Errorf("game init: %w", err)
	}
	g.nodes = mesh.NodesIn(zone.Name, g.controller.Group())
	return g, nil
}

// playerStart puts the threat on the first spawn cell's opposite corner when
// possible, else the zone center.
func playerStart(zone *world.Zone) mathutil.Vec3 {
	center := zone.CellCenter(zone.Width/2, zone.Height/2)
	if cx, cz, ok := zone.CellAt(center); ok && zone.Walkable(cx, cz) {
		return center
	}
	for cz := 0; cz < zone.Height; cz++ {
		for cx := 0; cx < zone.Width; cx++ {
			if zone.Walkable(cx, cz) {
				return zone.CellCenter(cx, cz)
			}
		}
	}
	return center
}

// QueueConfig hands a freshly loaded config to the game. Safe to call from
// any goroutine; the values are applied in Update before the next tick, and
// only the latest queued config wins.
func (g *Game) QueueConfig(next *config.Config) {
	g.pending.Store(next)
}

func (g *Game) applyPendingConfig() {
	next := g.pending.Swap(nil)
	if next == nil {
		return
	}
	// Behavior tuning only; display and world geometry need a restart.
	g.cfg.Monster = next.Monster
	g.cfg.Audio = next.Audio
}

func (g *Game) Update() error {
	dt := 1.0 / float64(g.cfg.GetTPS())

	g.applyPendingConfig()
	g.handleInput()
	g.player.Update(dt)
	g.controller.Tick(dt)
	g.heartbeat.step(dt)
	g.events.frameDone()
	return nil
}

func (g *Game) handleInput() {
	if g.keys.JustPressed(ebiten.KeyTab) {
		g.controller.CycleLevel()
	}
	if g.keys.JustPressed(ebiten.KeyR) {
		g.controller.SetLevel(monster.LevelDocile)
		if err := g.controller.Spawn(); err == nil {
			g.events.lastPath = nil
		}
	}
	if g.keys.JustPressed(ebiten.KeyF3) {
		g.overlay = !g.overlay
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{10, 10, 12, 255})
	g.renderer.DrawZone(screen)
	if g.overlay {
		g.renderer.DrawNodes(screen, g.nodes)
		g.renderer.DrawOverlay(screen, g.events)
	}
	g.renderer.DrawAgent(screen, g.controller.Agent())
	g.renderer.DrawPlayer(screen, g.player)
	g.heartbeat.Draw(screen)
	g.drawHUD(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
}
