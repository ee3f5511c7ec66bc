package monster

import (
	"time"

	"mirkhollow/internal/mathutil"
)

// Agent is the monster's mutable simulation state. It is owned and mutated
// exclusively by one Controller; nothing else writes to it.
type Agent struct {
	Pos     mathutil.Vec3
	Forward mathutil.Vec3

	Level Level
	Speed float64

	// Path is the current plan, consumed front-first. It is replaced
	// wholesale on every recalculation and is never nil-vs-empty
	// significant: an empty path means "no route / arrived".
	Path []mathutil.Vec3

	DirectPursuit bool

	Fleeing   bool
	FleeStart time.Duration // simulated time; meaningful only while Fleeing

	LastPathRecalc time.Duration

	// HasWanderTarget marks an in-flight wander destination. Cleared by the
	// path follower when the path runs out so a fresh one gets picked.
	HasWanderTarget bool
}

// pathNeverPlanned backdates LastPathRecalc so the first planning window
// after a reset opens immediately instead of waiting out a full interval.
const pathNeverPlanned = -time.Hour

// FaceToward orients the agent at a world point on the ground plane.
func (a *Agent) FaceToward(p mathutil.Vec3) {
	dir := p.Sub(a.Pos).Flatten().Normalized()
	if !dir.IsZero() {
		a.Forward = dir
	}
}

// ClearPlans drops the current path and every in-flight behavior flag.
// Called on any transition that changes behavior mode.
func (a *Agent) ClearPlans() {
	a.Path = nil
	a.DirectPursuit = false
	a.Fleeing = false
	a.HasWanderTarget = false
	a.LastPathRecalc = pathNeverPlanned
}
