package monster

import (
	"testing"

	"mirkhollow/internal/mathutil"
	"mirkhollow/internal/nav"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hiddenFromThreat builds a Perception stub where every point except the
// listed node centroids is visible from anywhere.
func hiddenFromThreat(threat mathutil.Vec3, hidden ...mathutil.Vec3) *stubEyes {
	return &stubEyes{visibleFn: func(from, to mathutil.Vec3, maxRange float64) bool {
		if from != threat {
			return true
		}
		for _, h := range hidden {
			if to == h {
				return false
			}
		}
		return true
	}}
}

func selectorWith(sn *stubNav, eyes Perception) *HidingSpotSelector {
	return NewHidingSpotSelector(sn, eyes, "zone", testConfig())
}

func TestNeverPicksSpotVisibleFromThreat(t *testing.T) {
	agent := &Agent{Pos: vec(0, 0)}
	threat := vec(0, 10)

	// Both candidates pass the geometric filters; only node 1 is concealed.
	sn := &stubNav{nodes: []nav.Node{node(0, 0, -5), node(1, 4, -5)}}
	eyes := hiddenFromThreat(threat, vec(4, -5))

	path := selectorWith(sn, eyes).Select(agent, threat, vec(0, 1), 0)
	require.NotEmpty(t, path)
	assert.Equal(t, vec(4, -5), sn.lastPathTo, "only the concealed node can win")
}

func TestAllCandidatesVisibleMeansNoSpot(t *testing.T) {
	agent := &Agent{Pos: vec(0, 0)}
	threat := vec(0, 10)

	sn := &stubNav{nodes: []nav.Node{node(0, 0, -5), node(1, 4, -5)}}
	eyes := &stubEyes{} // everything visible

	assert.Nil(t, selectorWith(sn, eyes).Select(agent, threat, vec(0, 1), 0))
	assert.Zero(t, sn.pathCalls)
}

func TestGeometricFilters(t *testing.T) {
	agent := &Agent{Pos: vec(0, 0)}
	threat := vec(0, 10)

	sn := &stubNav{nodes: []nav.Node{
		node(0, 0, -2),  // too close (dist 2 <= 3)
		node(1, 0, -25), // too far (dist 25 >= 20)
		node(2, 0, 5),   // toward the threat (dot = 1)
	}}
	eyes := hiddenFromThreat(threat, vec(0, -2), vec(0, -25), vec(0, 5))

	assert.Nil(t, selectorWith(sn, eyes).Select(agent, threat, vec(0, 1), 0),
		"every candidate fails a geometric filter")
}

func TestAmbushSpotOutscoresBlindSpot(t *testing.T) {
	agent := &Agent{Pos: vec(0, 0)}
	threat := vec(0, 10)

	ambush := vec(5, -5)
	blind := vec(-5, -5)
	sn := &stubNav{nodes: []nav.Node{node(0, blind.X, blind.Z), node(1, ambush.X, ambush.Z)}}

	// Neither spot is seen from the threat; only the ambush spot sees back.
	eyes := &stubEyes{visibleFn: func(from, to mathutil.Vec3, maxRange float64) bool {
		if from == threat {
			return false
		}
		return from == ambush
	}}

	path := selectorWith(sn, eyes).Select(agent, threat, vec(0, 1), 0)
	require.NotEmpty(t, path)
	assert.Equal(t, ambush, sn.lastPathTo,
		"the +200 ambush bonus dominates the symmetric layout")
}

func TestViewConeBonusOrdering(t *testing.T) {
	agent := &Agent{Pos: vec(0, 0)}
	threat := vec(0, 10)
	threatFwd := vec(1, 0) // looking east

	west := vec(-6, -6) // behind the threat's gaze
	east := vec(6, -6)  // more inside the view cone
	sn := &stubNav{nodes: []nav.Node{node(0, east.X, east.Z), node(1, west.X, west.Z)}}
	eyes := &stubEyes{visibleFn: func(from, to mathutil.Vec3, maxRange float64) bool {
		return from != threat // hidden from the threat, no ambush asymmetry
	}}

	path := selectorWith(sn, eyes).Select(agent, threat, threatFwd, 0)
	require.NotEmpty(t, path)
	assert.Equal(t, west, sn.lastPathTo, "spot outside the view cone scores higher")
}

func TestCloserSpotWinsWhenOtherwiseEqual(t *testing.T) {
	agent := &Agent{Pos: vec(0, 0)}
	threat := vec(0, 10)

	near := vec(0, -5)
	far := vec(0, -12)
	sn := &stubNav{nodes: []nav.Node{node(0, far.X, far.Z), node(1, near.X, near.Z)}}
	eyes := &stubEyes{visibleFn: func(from, to mathutil.Vec3, maxRange float64) bool {
		return from != threat
	}}

	path := selectorWith(sn, eyes).Select(agent, threat, vec(0, 1), 0)
	require.NotEmpty(t, path)
	assert.Equal(t, near, sn.lastPathTo)
}

func TestSelectTracksSightRangeTuning(t *testing.T) {
	agent := &Agent{Pos: vec(0, 0)}
	threat := vec(0, 10)
	cfg := testConfig()

	sn := &stubNav{nodes: []nav.Node{node(0, 0, -5)}}
	var gotRange float64
	eyes := &stubEyes{visibleFn: func(from, to mathutil.Vec3, maxRange float64) bool {
		gotRange = maxRange
		return from != threat
	}}
	sel := NewHidingSpotSelector(sn, eyes, "zone", cfg)

	sel.Select(agent, threat, vec(0, 1), 0)
	assert.Equal(t, 60.0, gotRange)

	// A live tuning change must reach the next scan without rebuilding.
	cfg.Monster.RaycastLimit = 25.0
	sel.Select(agent, threat, vec(0, 1), 0)
	assert.Equal(t, 25.0, gotRange)
}

func TestTieBreaksOnLowestNodeID(t *testing.T) {
	agent := &Agent{Pos: vec(0, 0)}
	threat := vec(0, 10)

	// Perfectly symmetric candidates: identical distance, away-dot, cone
	// term and visibility. The first node in ascending id order must win.
	a := vec(5, -5)
	b := vec(-5, -5)
	sn := &stubNav{nodes: []nav.Node{node(3, a.X, a.Z), node(7, b.X, b.Z)}}
	eyes := &stubEyes{visibleFn: func(from, to mathutil.Vec3, maxRange float64) bool {
		return from != threat
	}}

	path := selectorWith(sn, eyes).Select(agent, threat, vec(0, 1), 0)
	require.NotEmpty(t, path)
	assert.Equal(t, a, sn.lastPathTo, "strict-greater comparison keeps the first maximum")
}
