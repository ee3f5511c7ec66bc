package game

import (
	"fmt"

	"mirkhollow/internal/mathutil"
	"mirkhollow/internal/monster"
)

const bannerFrames = 120 // two seconds at 60 TPS

// eventLog collects the controller's debug events for the overlay renderer.
// It implements monster.Observer.
type eventLog struct {
	lastPath []mathutil.Vec3

	sightFrom    mathutil.Vec3
	sightTo      mathutil.Vec3
	sightVisible bool
	sightFresh   bool

	banner    string
	bannerTTL int
}

func (e *eventLog) PathPlanned(path []mathutil.Vec3) {
	e.lastPath = path
}

func (e *eventLog) SightChecked(from, to mathutil.Vec3, visible bool) {
	e.sightFrom = from
	e.sightTo = to
	e.sightVisible = visible
	e.sightFresh = true
}

func (e *eventLog) LevelChanged(from, to monster.Level) {
	e.banner = fmt.Sprintf("%s -> %s", from, to)
	e.bannerTTL = bannerFrames
}

// frameDone ages per-frame state; call once per Update.
func (e *eventLog) frameDone() {
	e.sightFresh = false
	if e.bannerTTL > 0 {
		e.bannerTTL--
	}
}
