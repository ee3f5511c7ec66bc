package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Heartbeat renders the proximity pulse: a screen-edge vignette that beats
// faster and harder as the threat closes in. It implements monster.AudioSink.
type Heartbeat struct {
	active    bool
	intensity float64 // 0 far away .. 1 point blank
	phase     float64
}

func (h *Heartbeat) PlayHeartbeat() {
	h.active = true
}

func (h *Heartbeat) UpdateHeartbeat(distance, maxDistance float64) {
	if maxDistance <= 0 {
		h.intensity = 0
		return
	}
	h.intensity = math.Max(0, 1-distance/maxDistance)
}

// step advances the beat; rate scales from ~0.8 Hz at rest to ~3 Hz up close.
func (h *Heartbeat) step(dt float64) {
	if !h.active {
		return
	}
	rate := 0.8 + 2.2*h.intensity
	h.phase += rate * dt * 2 * math.Pi
	if h.phase > 2*math.Pi {
		h.phase -= 2 * math.Pi
	}
}

func (h *Heartbeat) Draw(screen *ebiten.Image) {
	if !h.active || h.intensity <= 0 {
		return
	}
	beat := math.Max(0, math.Sin(h.phase))
	alpha := uint8(beat * h.intensity * 90)
	if alpha == 0 {
		return
	}
	w, ht := screen.Bounds().Dx(), screen.Bounds().Dy()
	border := float32(18 + 22*h.intensity)
	c := color.RGBA{170, 20, 20, alpha}
	vector.DrawFilledRect(screen, 0, 0, float32(w), border, c, false)
	vector.DrawFilledRect(screen, 0, float32(ht)-border, float32(w), border, c, false)
	vector.DrawFilledRect(screen, 0, 0, border, float32(ht), c, false)
	vector.DrawFilledRect(screen, float32(w)-border, 0, border, float32(ht), c, false)
}
