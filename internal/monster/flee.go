package monster

import (
	"log/slog"

	"mirkhollow/internal/mathutil"
)

// fleeRange is how far past the agent the escape target is projected.
const fleeRange = 15.0

// FleePlanner computes an escape route directly away from a threat. A failed
// plan leaves the agent stalled with an empty path; the flee timer keeps
// running and the controller retries at the next recalculation window.
type FleePlanner struct {
	nav  Navigator
	zone string
}

func NewFleePlanner(nav Navigator, zone string) *FleePlanner {
	return &FleePlanner{nav: nav, zone: zone}
}

// Plan returns a path away from threatPos, or nil when no route exists.
func (p *FleePlanner) Plan(a *Agent, threatPos mathutil.Vec3, group int) []mathutil.Vec3 {
	dir := a.Pos.Sub(threatPos).Flatten().Normalized()
	if dir.IsZero() {
		// Threat is on top of the agent; run the way we are facing.
		dir = a.Forward.Flatten().Normalized()
	}
	if dir.IsZero() {
		return nil
	}

	target := a.Pos.Add(dir.Scale(fleeRange))

	from, ok := p.nav.ClosestNode(a.Pos, p.zone, group)
	if !ok {
		return nil
	}
	to, ok := p.nav.ClosestNode(target, p.zone, group)
	if !ok {
		return nil
	}

	path := p.nav.FindPath(from.Centroid, to.Centroid, p.zone, group)
	if len(path) == 0 {
		if IsDebugEnabled() {
			slog.Debug("flee plan found no route", "fromNode", from.ID, "toNode", to.ID)
		}
		return nil
	}
	return path
}
