package monster

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"mirkhollow/internal/config"
	"mirkhollow/internal/mathutil"
)

const (
	// boldMeleeRange is the Bold-tier distance that forces terminal
	// escalation to Hostile.
	boldMeleeRange = 1.5
	// threatFacingDot: above this the threat counts as looking at the agent,
	// so a Bold agent freezes instead of approaching.
	threatFacingDot = 0.5
)

// Controller owns one agent and runs its five-state behavior machine, one
// decision-and-movement pass per simulation tick. It consumes Navigator and
// Perception as read-only services and pushes side effects through the audio,
// animation and observer bridges. Single-threaded by design: all state is
// owned here and time gating uses a simulated monotonic clock advanced by
// Tick, never the wall clock.
type Controller struct {
	cfg    *config.Config
	nav    Navigator
	eyes   Perception
	threat Threat

	audio AudioSink
	anim  AnimationSink
	obs   Observer
	rng   *rand.Rand

	zone  string
	group int

	agent    Agent
	follower PathFollower
	hider    *HidingSpotSelector
	fleer    *FleePlanner

	now            time.Duration
	lastWanderPick time.Duration
	lastHideScan   time.Duration
	spawned        bool
	lastAnim       AnimState
}

// NewController wires a controller for one agent in its home zone. Audio,
// animation, observer and RNG are injected through setters; defaults are
// no-op sinks and a time-seeded RNG.
func NewController(cfg *config.Config, navigator Navigator, eyes Perception, threat Threat, zone string) *Controller {
	c := &Controller{
		cfg:    cfg,
		nav:    navigator,
		eyes:   eyes,
		threat: threat,
		zone:   zone,
		audio:  NopAudio{},
		anim:   NopAnimation{},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	c.agent.Level = LevelDocile
	c.agent.Forward = mathutil.Vec3{Z: 1}
	c.agent.LastPathRecalc = pathNeverPlanned
	c.hider = NewHidingSpotSelector(navigator, eyes, zone, cfg)
	c.fleer = NewFleePlanner(navigator, zone)
	return c
}

// SetAudioSink replaces the audio bridge.
func (c *Controller) SetAudioSink(a AudioSink) {
	if a != nil {
		c.audio = a
	}
}

// SetAnimationSink replaces the animation bridge.
func (c *Controller) SetAnimationSink(a AnimationSink) {
	if a != nil {
		c.anim = a
	}
}

// SetObserver installs the debug event sink. May be nil.
func (c *Controller) SetObserver(o Observer) {
	c.obs = o
}

// SetRand injects a deterministic RNG, used by tests and replays.
func (c *Controller) SetRand(r *rand.Rand) {
	if r != nil {
		c.rng = r
	}
}

// Agent returns a snapshot of the agent state.
func (c *Controller) Agent() Agent {
	return c.agent
}

// Level returns the current aggression tier.
func (c *Controller) Level() Level {
	return c.agent.Level
}

// Group returns the connectivity group the agent spawned into.
func (c *Controller) Group() int {
	return c.group
}

// Now returns the simulated clock reading.
func (c *Controller) Now() time.Duration {
	return c.now
}

// Spawn places the agent at a random navmesh node of its home zone, falling
// back to the configured origin when the spawn group is empty. The first
// successful spawn starts the heartbeat loop.
func (c *Controller) Spawn() error {
	fallback := mathutil.Vec3{
		X: c.cfg.Monster.SpawnFallbackX,
		Y: c.cfg.Monster.SpawnFallbackY,
		Z: c.cfg.Monster.SpawnFallbackZ,
	}

	group, ok := c.nav.Group(c.zone, fallback, true)
	if !ok {
		return fmt.Errorf("spawn: zone %q has no navigation graph", c.zone)
	}
	c.group = group

	pos := fallback
	if nodes := c.nav.NodesIn(c.zone, group); len(nodes) > 0 {
		pos = nodes[c.rng.Intn(len(nodes))].Centroid
	} else {
		slog.Warn("spawn group empty, using fallback position", "zone", c.zone, "group", group)
	}

	c.agent.Pos = pos
	angle := c.rng.Float64() * 2 * math.Pi
	c.agent.Forward = mathutil.Vec3{X: math.Cos(angle), Z: math.Sin(angle)}
	c.agent.ClearPlans()

	// Let the first wander pick and hide scan fire on the next tick instead
	// of waiting out a full interval.
	c.lastWanderPick = c.now - c.cfg.WanderInterval()
	c.lastHideScan = c.now - c.cfg.HideScanInterval()

	if !c.spawned {
		c.spawned = true
		c.audio.PlayHeartbeat()
	}

	if IsDebugEnabled() {
		slog.Debug("agent spawned", "zone", c.zone, "group", c.group, "x", pos.X, "z", pos.Z)
	}
	return nil
}

// Tick advances the simulation by dt seconds: one full decision pass, then
// movement, then animation and heartbeat updates. It never blocks and never
// panics out; every service failure degrades per the error model.
func (c *Controller) Tick(dt float64) {
	if !c.spawned || c.threat == nil || dt <= 0 {
		return
	}
	c.now += time.Duration(dt * float64(time.Second))

	threatPos := c.threat.Position()
	dist := c.agent.Pos.Flatten().DistanceTo(threatPos.Flatten())

	switch c.agent.Level {
	case LevelDocile:
		c.tickDocile(threatPos)
	case LevelCautious:
		c.tickCautious(threatPos, dist)
	case LevelCurious:
		c.tickCurious(threatPos, dist)
	case LevelBold:
		c.tickBold(threatPos, dist)
	case LevelHostile:
		c.tickHostile(threatPos)
	}

	c.agent.Speed = c.cfg.Monster.BaseSpeed * params(c.agent.Level).SpeedMult
	if c.agent.Fleeing {
		c.agent.Speed *= c.cfg.Monster.FleeSpeedMultiplier
	}

	moving := len(c.agent.Path) > 0 || c.agent.DirectPursuit
	c.applyMovement(dt, threatPos)
	c.updateSideEffects(moving, dist)
}

// tickDocile wanders between random nodes until the threat is spotted.
func (c *Controller) tickDocile(threatPos mathutil.Vec3) {
	if c.threatVisible(threatPos) {
		c.escalate(LevelCautious)
		return
	}
	if !c.agent.HasWanderTarget && c.now-c.lastWanderPick >= c.cfg.WanderInterval() {
		c.lastWanderPick = c.now
		c.pickWanderTarget()
	}
}

// tickCautious watches the threat and periodically retreats to cover.
func (c *Controller) tickCautious(threatPos mathutil.Vec3, dist float64) {
	if dist < params(LevelCautious).EngageDist {
		c.escalate(LevelCurious)
		return
	}
	if len(c.agent.Path) > 0 {
		return // keep heading for the current hiding spot
	}
	c.agent.FaceToward(threatPos)
	if c.now-c.lastHideScan >= c.cfg.HideScanInterval() {
		c.lastHideScan = c.now
		c.setPath(c.hider.Select(&c.agent, threatPos, c.threat.Forward(), c.group))
	}
}

// tickCurious alternates between fleeing when crowded and stalking from a
// distance. An expired flee session with the threat still close escalates.
func (c *Controller) tickCurious(threatPos mathutil.Vec3, dist float64) {
	p := params(LevelCurious)

	if c.agent.Fleeing {
		if c.now-c.agent.FleeStart >= c.cfg.FleeDuration() {
			if dist < p.FleeDist {
				c.escalate(LevelHostile)
				return
			}
			c.agent.Fleeing = false
			c.agent.Path = nil
			return
		}
		if c.now-c.agent.LastPathRecalc >= c.cfg.PathRecalcInterval() {
			c.agent.LastPathRecalc = c.now
			c.setPath(c.fleer.Plan(&c.agent, threatPos, c.group))
		}
		return
	}

	if dist < p.FleeDist {
		c.agent.Fleeing = true
		c.agent.FleeStart = c.now
		c.agent.LastPathRecalc = c.now
		c.setPath(c.fleer.Plan(&c.agent, threatPos, c.group))
		if IsDebugEnabled() {
			slog.Debug("flee session started", "dist", dist)
		}
		return
	}

	if dist > p.EngageDist {
		if c.now-c.agent.LastPathRecalc >= c.cfg.PathRecalcInterval() {
			c.chase(threatPos)
		}
		return
	}

	c.agent.Path = nil
	c.agent.FaceToward(threatPos)
}

// tickBold closes in unless the threat is watching.
func (c *Controller) tickBold(threatPos mathutil.Vec3, dist float64) {
	if dist < boldMeleeRange {
		c.escalate(LevelHostile)
		return
	}

	threatFwd := c.threat.Forward().Flatten().Normalized()
	dirToAgent := c.agent.Pos.Sub(threatPos).Flatten().Normalized()
	if !threatFwd.IsZero() && threatFwd.Dot(dirToAgent) > threatFacingDot {
		c.agent.Path = nil
		c.agent.FaceToward(threatPos)
		return
	}

	if dist > params(LevelBold).EngageDist && c.now-c.agent.LastPathRecalc >= c.cfg.PathRecalcInterval() {
		c.chase(threatPos)
	}
}

// tickHostile pursues directly on sight, via the navmesh otherwise.
func (c *Controller) tickHostile(threatPos mathutil.Vec3) {
	if c.threatVisible(threatPos) {
		c.agent.DirectPursuit = true
		c.agent.Path = nil
		return
	}
	c.agent.DirectPursuit = false
	if c.now-c.agent.LastPathRecalc >= c.cfg.HostileRecalcInterval() {
		c.chase(threatPos)
	}
}

// pickWanderTarget paths to a random reachable node of the agent's group.
func (c *Controller) pickWanderTarget() {
	nodes := c.nav.NodesIn(c.zone, c.group)
	if len(nodes) == 0 {
		return
	}
	node := nodes[c.rng.Intn(len(nodes))]
	path := c.nav.FindPath(c.agent.Pos, node.Centroid, c.zone, c.group)
	c.setPath(path)
	if len(path) > 0 {
		c.agent.HasWanderTarget = true
	}
}

// chase replans a navmesh route to the threat and stamps the recalc clock.
func (c *Controller) chase(threatPos mathutil.Vec3) {
	c.agent.LastPathRecalc = c.now
	c.setPath(c.nav.FindPath(c.agent.Pos, threatPos, c.zone, c.group))
}

// setPath adopts a plan wholesale. nil means "no route": an empty path, not
// an error; the agent holds position until the next recalculation window.
func (c *Controller) setPath(path []mathutil.Vec3) {
	c.agent.Path = path
	if c.obs != nil {
		c.obs.PathPlanned(path)
	}
}

// threatVisible asks Perception whether the threat can be seen at the current
// tier's detection range. Docile additionally requires the threat inside the
// agent's forward half-space. A missing perception service reads as unseen.
func (c *Controller) threatVisible(threatPos mathutil.Vec3) bool {
	p := params(c.agent.Level)
	maxRange := p.DetectRange
	if maxRange == 0 {
		maxRange = c.cfg.Monster.RaycastLimit
	}

	if c.agent.Level == LevelDocile {
		dir := threatPos.Sub(c.agent.Pos).Flatten().Normalized()
		if c.agent.Forward.Flatten().Normalized().Dot(dir) < 0 {
			return false
		}
	}

	visible := c.eyes != nil && c.eyes.IsVisible(c.agent.Pos, threatPos, maxRange)
	if c.obs != nil {
		c.obs.SightChecked(c.agent.Pos, threatPos, visible)
	}
	return visible
}

// applyMovement advances the agent: straight at the threat in direct pursuit,
// along the path otherwise.
func (c *Controller) applyMovement(dt float64, threatPos mathutil.Vec3) {
	if c.agent.DirectPursuit {
		dir := threatPos.Sub(c.agent.Pos).Flatten()
		if !dir.IsZero() {
			step := math.Min(c.agent.Speed*dt, dir.Length())
			c.agent.Pos = c.agent.Pos.Add(dir.Normalized().Scale(step))
			c.agent.Forward = dir.Normalized()
		}
		return
	}
	c.follower.Advance(&c.agent, dt)
}

// updateSideEffects pushes the tick's animation trigger and heartbeat volume.
func (c *Controller) updateSideEffects(moving bool, dist float64) {
	state := AnimNone
	if moving {
		if c.agent.Level == LevelHostile {
			state = AnimRun
		} else {
			state = AnimWalk
		}
	}
	if state != c.lastAnim {
		c.lastAnim = state
		c.anim.SetState(state)
	}
	c.audio.UpdateHeartbeat(dist, c.cfg.Audio.HeartbeatMaxDistance)
}

// escalate raises the aggression tier, discarding all in-flight plans.
// Escalation is monotonic; de-escalation happens only via SetLevel.
func (c *Controller) escalate(to Level) {
	if to <= c.agent.Level {
		return
	}
	from := c.agent.Level
	c.agent.Level = to
	c.agent.ClearPlans()
	if c.obs != nil {
		c.obs.LevelChanged(from, to)
	}
	if IsDebugEnabled() {
		slog.Debug("aggression escalated", "from", from, "to", to)
	}
}

// SetLevel is the external override: it clamps to the valid range and clears
// the in-flight path, wander and flee state. This is the only way the level
// ever decreases.
func (c *Controller) SetLevel(l Level) {
	if l < LevelDocile {
		l = LevelDocile
	}
	if l > LevelHostile {
		l = LevelHostile
	}
	from := c.agent.Level
	c.agent.Level = l
	c.agent.ClearPlans()
	if from != l && c.obs != nil {
		c.obs.LevelChanged(from, l)
	}
	slog.Info("aggression level set", "from", from, "to", l)
}

// CycleLevel steps to the next tier, wrapping Hostile back to Docile.
func (c *Controller) CycleLevel() {
	next := c.agent.Level + 1
	if next > LevelHostile {
		next = LevelDocile
	}
	c.SetLevel(next)
}
