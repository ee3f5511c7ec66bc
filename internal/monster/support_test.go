package monster

import (
	"math"

	"mirkhollow/internal/config"
	"mirkhollow/internal/mathutil"
	"mirkhollow/internal/nav"
)

// stubNav implements Navigator over a fixed node list. FindPath defaults to
// a two-point straight path and records its arguments.
type stubNav struct {
	nodes []nav.Node
	group int

	pathFn func(from, to mathutil.Vec3) []mathutil.Vec3

	pathCalls    int
	lastPathFrom mathutil.Vec3
	lastPathTo   mathutil.Vec3
	closestArgs  []mathutil.Vec3
}

func (s *stubNav) Group(zone string, p mathutil.Vec3, autoCorrect bool) (int, bool) {
	return s.group, true
}

func (s *stubNav) ClosestNode(p mathutil.Vec3, zone string, group int) (nav.Node, bool) {
	s.closestArgs = append(s.closestArgs, p)
	if len(s.nodes) == 0 {
		return nav.Node{}, false
	}
	best := s.nodes[0]
	bestDist := math.Inf(1)
	for _, n := range s.nodes {
		if d := n.Centroid.Flatten().DistanceTo(p.Flatten()); d < bestDist {
			best = n
			bestDist = d
		}
	}
	return best, true
}

func (s *stubNav) FindPath(from, to mathutil.Vec3, zone string, group int) []mathutil.Vec3 {
	s.pathCalls++
	s.lastPathFrom = from
	s.lastPathTo = to
	if s.pathFn != nil {
		return s.pathFn(from, to)
	}
	return []mathutil.Vec3{from, to}
}

func (s *stubNav) NodesIn(zone string, group int) []nav.Node {
	return s.nodes
}

// stubEyes implements Perception with a pluggable answer.
type stubEyes struct {
	visibleFn func(from, to mathutil.Vec3, maxRange float64) bool
	calls     int
}

func (s *stubEyes) IsVisible(from, to mathutil.Vec3, maxRange float64) bool {
	s.calls++
	if s.visibleFn == nil {
		return true
	}
	return s.visibleFn(from, to, maxRange)
}

// stubThreat is a positionable threat.
type stubThreat struct {
	pos mathutil.Vec3
	fwd mathutil.Vec3
}

func (s *stubThreat) Position() mathutil.Vec3 { return s.pos }
func (s *stubThreat) Forward() mathutil.Vec3  { return s.fwd }

// recordingAudio counts heartbeat triggers.
type recordingAudio struct {
	plays    int
	updates  int
	lastDist float64
	lastMax  float64
}

func (r *recordingAudio) PlayHeartbeat() { r.plays++ }
func (r *recordingAudio) UpdateHeartbeat(dist, max float64) {
	r.updates++
	r.lastDist = dist
	r.lastMax = max
}

// recordingAnim keeps the animation trigger history.
type recordingAnim struct {
	states []AnimState
}

func (r *recordingAnim) SetState(s AnimState) {
	r.states = append(r.states, s)
}

func (r *recordingAnim) last() AnimState {
	if len(r.states) == 0 {
		return AnimNone
	}
	return r.states[len(r.states)-1]
}

func testConfig() *config.Config {
	return config.Default()
}

func vec(x, z float64) mathutil.Vec3 {
	return mathutil.Vec3{X: x, Z: z}
}

func node(id int, x, z float64) nav.Node {
	return nav.Node{ID: id, Centroid: vec(x, z)}
}
