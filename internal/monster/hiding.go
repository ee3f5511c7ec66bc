package monster

import (
	"log/slog"

	"mirkhollow/internal/config"
	"mirkhollow/internal/mathutil"
	"mirkhollow/internal/nav"
)

// Candidate filter and scoring constants for hiding spots.
const (
	hideMinDist   = 3.0  // too close to be worth moving to
	hideMaxDist   = 20.0 // too far to reach in time
	awayDotLimit  = 0.3  // candidate must lie generally away from the threat
	hideBaseScore = 1000.0
	ambushBonus   = 200.0 // agent could watch the threat from the spot
	coneBonusMax  = 50.0  // scaled by how far outside the threat's view cone
)

// HidingSpotSelector scores concealment nodes and plans a path to the best
// one. A spot visible from the threat's position is never a hiding spot.
// Sight range is read from the config on every scan so a live tuning reload
// takes effect immediately.
type HidingSpotSelector struct {
	nav  Navigator
	eyes Perception
	zone string
	cfg  *config.Config
}

func NewHidingSpotSelector(nav Navigator, eyes Perception, zone string, cfg *config.Config) *HidingSpotSelector {
	return &HidingSpotSelector{nav: nav, eyes: eyes, zone: zone, cfg: cfg}
}

// Select returns a path to the best hiding spot, or nil when no candidate
// survives the filters or no route exists. Candidates are scanned in
// ascending node id order and ties keep the first maximum, so selection is
// deterministic for a given world state.
func (s *HidingSpotSelector) Select(a *Agent, threatPos, threatForward mathutil.Vec3, group int) []mathutil.Vec3 {
	nodes := s.nav.NodesIn(s.zone, group)
	if len(nodes) == 0 {
		return nil
	}

	sightRange := s.cfg.Monster.RaycastLimit
	threatDir := threatPos.Sub(a.Pos).Flatten().Normalized()
	threatFwd := threatForward.Flatten().Normalized()

	var (
		best      nav.Node
		bestScore float64
		found     bool
	)
	for _, node := range nodes {
		dist := node.Centroid.Flatten().DistanceTo(a.Pos.Flatten())
		if dist <= hideMinDist || dist >= hideMaxDist {
			continue
		}

		candDir := node.Centroid.Sub(a.Pos).Flatten().Normalized()
		if !threatDir.IsZero() && candDir.Dot(threatDir) >= awayDotLimit {
			continue
		}

		if s.eyes.IsVisible(threatPos, node.Centroid, sightRange) {
			continue // seen from the threat's position: not a hiding spot
		}

		score := hideBaseScore
		if s.eyes.IsVisible(node.Centroid, threatPos, sightRange) {
			score += ambushBonus
		}
		if !threatFwd.IsZero() {
			offCone := threatFwd.Dot(node.Centroid.Sub(threatPos).Flatten().Normalized())
			// 0 when dead ahead of the threat, coneBonusMax directly behind it.
			score += coneBonusMax * (1 - offCone) / 2
		}
		score -= dist

		if !found || score > bestScore {
			best = node
			bestScore = score
			found = true
		}
	}

	if !found {
		return nil
	}

	from, ok := s.nav.ClosestNode(a.Pos, s.zone, group)
	if !ok {
		return nil
	}
	path := s.nav.FindPath(from.Centroid, best.Centroid, s.zone, group)
	if len(path) == 0 {
		return nil
	}

	if IsDebugEnabled() {
		slog.Debug("hiding spot chosen", "node", best.ID, "score", bestScore, "waypoints", len(path))
	}
	return path
}
