package monster

import (
	"mirkhollow/internal/mathutil"
	"mirkhollow/internal/nav"
)

// Navigator answers navmesh queries. Implemented by nav.Mesh; tests use
// stubs. NodesIn must return nodes in ascending id order; hiding-spot
// tie-breaking depends on it.
type Navigator interface {
	Group(zone string, p mathutil.Vec3, autoCorrect bool) (int, bool)
	ClosestNode(p mathutil.Vec3, zone string, group int) (nav.Node, bool)
	FindPath(from, to mathutil.Vec3, zone string, group int) []mathutil.Vec3
	NodesIn(zone string, group int) []nav.Node
}

// Perception answers line-of-sight queries. A failing or absent service must
// read as "not visible".
type Perception interface {
	IsVisible(from, to mathutil.Vec3, maxRange float64) bool
}

// Threat is the tracked target. The controller polls it each tick and never
// mutates it.
type Threat interface {
	Position() mathutil.Vec3
	Forward() mathutil.Vec3
}

// AnimState is the animation trigger selected after each tick.
type AnimState int

const (
	AnimNone AnimState = iota
	AnimWalk
	AnimRun
)

func (s AnimState) String() string {
	switch s {
	case AnimWalk:
		return "walk"
	case AnimRun:
		return "run"
	default:
		return "none"
	}
}

// AudioSink receives the controller's audio triggers.
type AudioSink interface {
	PlayHeartbeat()
	UpdateHeartbeat(distance, maxDistance float64)
}

// AnimationSink receives animation state changes.
type AnimationSink interface {
	SetState(s AnimState)
}

// Observer receives debug events. The controller emits into it but takes no
// decisions from it; a nil observer is valid.
type Observer interface {
	PathPlanned(path []mathutil.Vec3)
	SightChecked(from, to mathutil.Vec3, visible bool)
	LevelChanged(from, to Level)
}

// NopAudio and NopAnimation are the defaults when no sink is injected.
type NopAudio struct{}

func (NopAudio) PlayHeartbeat() {}
func (NopAudio) UpdateHeartbeat(float64, float64) {}

type NopAnimation struct{}

func (NopAnimation) SetState(AnimState) {}
