// keytracker.go - edge-detecting input utility for Ebiten v2.8.8
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Tracker remembers the previous frame's state of any number of keys so
// callers can detect the press edge.
type Tracker struct {
	prev map[ebiten.Key]bool
}

func New() *Tracker {
	return &Tracker{prev: make(map[ebiten.Key]bool)}
}

// JustPressed reports whether the key went down this frame. Call at most
// once per key per frame.
func (t *Tracker) JustPressed(key ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(key)
	edge := pressed && !t.prev[key]
	t.prev[key] = pressed
	return edge
}
