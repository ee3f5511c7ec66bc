package monster

import "math"

// waypointRadius is how close the agent must get to the head waypoint before
// it is considered reached and popped.
const waypointRadius = 0.15

// PathFollower steers an agent along its path with one-waypoint look-ahead:
// movement aims at the second waypoint while the first is still pending,
// which rounds corners instead of visiting every centroid exactly.
type PathFollower struct{}

// Advance moves the agent for one time step and reports whether it moved.
// An empty path is a no-op that also clears the pending wander target so the
// controller picks a new one at the next wander window.
func (PathFollower) Advance(a *Agent, dt float64) bool {
	if len(a.Path) == 0 {
		a.HasWanderTarget = false
		return false
	}

	look := a.Path[0]
	if len(a.Path) > 1 {
		look = a.Path[1]
	}

	dir := look.Sub(a.Pos).Flatten()
	moved := false
	if !dir.IsZero() {
		step := math.Min(a.Speed*dt, dir.Length())
		a.Pos = a.Pos.Add(dir.Normalized().Scale(step))
		a.Forward = dir.Normalized()
		moved = step > 0
	}

	head := a.Path[0]
	reached := a.Pos.Flatten().DistanceTo(head.Flatten()) < waypointRadius
	if !reached && len(a.Path) > 1 {
		// Corner-cutting can skip the head waypoint entirely; drop it once
		// it falls behind the direction of travel.
		seg := a.Path[1].Sub(head).Flatten()
		reached = head.Sub(a.Pos).Flatten().Dot(seg) < 0
	}
	if reached {
		a.Path = a.Path[1:]
	}

	return moved
}
