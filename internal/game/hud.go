package game

import (
	"fmt"
	"image/color"

	"mirkhollow/internal/monster"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const hudHeight = 64

// animLabel remembers the controller's last animation trigger for the HUD.
// It implements monster.AnimationSink.
type animLabel struct {
	state monster.AnimState
}

func (a *animLabel) SetState(s monster.AnimState) { a.state = s }

// drawHUD paints the status strip along the bottom edge.
func (g *Game) drawHUD(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	top := h - hudHeight
	vector.DrawFilledRect(screen, 0, float32(top), float32(w), hudHeight, color.RGBA{16, 16, 20, 230}, false)

	face := basicfont.Face7x13
	a := g.controller.Agent()

	lc, ok := levelColors[a.Level]
	if !ok {
		lc = levelColors[monster.LevelDocile]
	}
	label := fmt.Sprintf("[%d] %s", a.Level, a.Level)
	ebitext.Draw(screen, label, face, 12, top+22, lc)
	labelW := font.MeasureString(face, label).Round()

	status := fmt.Sprintf("speed %.1f  anim %s", a.Speed, g.anim.state)
	if a.Fleeing {
		status += "  FLEEING"
	}
	if a.DirectPursuit {
		status += "  PURSUIT"
	}
	ebitext.Draw(screen, status, face, 24+labelW, top+22, color.White)

	if g.events.bannerTTL > 0 {
		ebitext.Draw(screen, g.events.banner, face, 12, top+40, color.RGBA{240, 240, 160, 255})
	}

	ebitenutil.DebugPrintAt(screen,
		"WASD move  arrows turn  Tab cycle level  R respawn  F3 overlay",
		12, h-18)
}
