package system

import (
	"io"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
	"github.com/sirupsen/logrus"
)

// PlayerController is the fixed-tick movement simulation for one character.
// GatherInput runs once per rendered frame and FixedUpdate once per tick;
// both must be called from the same goroutine.
type PlayerController struct {
	cfg       component.Config
	abilities component.Abilities
	geo       Geometry
	source    component.InputSource
	events    *Events
	log       logrus.FieldLogger

	defaultCollider component.Collider
	collider        component.Collider

	tick          int
	input         component.FrameInput
	col           component.CollisionState
	groundContact component.Contact
	rawMovement   cp.Vector
	ch            component.Character

	updating bool
}

// NewPlayerController creates a controller at the origin. A nil geo is open
// space with no ground.
func NewPlayerController(cfg component.Config, abilities component.Abilities, collider component.Collider, geo Geometry, src component.InputSource) *PlayerController {
	if geo == nil {
		geo = openSpace{}
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return &PlayerController{
		cfg:             cfg,
		abilities:       abilities,
		geo:             geo,
		source:          src,
		events:          NewEvents(),
		log:             discard,
		defaultCollider: collider,
		collider:        collider,
		ch:              component.NewCharacter(cp.Vector{}),
	}
}

// SetLogger routes transition logs to l. Events are logged at debug level.
func (c *PlayerController) SetLogger(l logrus.FieldLogger) {
	if c == nil || l == nil {
		return
	}
	c.log = l
}

// SetPosition places the character without moving through geometry.
func (c *PlayerController) SetPosition(pos cp.Vector) {
	if c == nil {
		return
	}
	c.ch.Position = pos
	c.ch.LastPosition = pos
	c.ch.Velocity = cp.Vector{}
}

// Events returns the controller's event sink.
func (c *PlayerController) Events() *Events {
	if c == nil {
		return nil
	}
	return c.events
}

// GatherInput samples the input source and latches jump and dash presses so
// a press between two ticks is never lost.
func (c *PlayerController) GatherInput() {
	if c == nil || c.source == nil {
		return
	}
	if c.updating {
		c.log.WithField("tick", c.tick).Warn("GatherInput called during a tick; ignored")
		return
	}
	c.source.Update()
	c.input = component.ReadFrameInput(c.source)
	if c.input.JumpDown {
		c.ch.JumpToConsume = true
		c.ch.LastJumpPressedTick = c.tick
	}
	if c.input.DashDown && c.abilities.Dash {
		c.ch.DashToConsume = true
		c.ch.LastDashPressedTick = c.tick
	}
}

// FixedUpdate advances the simulation by one tick.
func (c *PlayerController) FixedUpdate() {
	if c == nil {
		return
	}
	if c.updating {
		c.log.WithField("tick", c.tick).Warn("FixedUpdate called during a tick; ignored")
		return
	}
	c.updating = true
	defer func() { c.updating = false }()

	c.tick++
	c.ch.FrameClamp = c.cfg.MoveClamp

	c.runCollisionChecks()

	c.calculateCrouch()
	c.calculateWalk()
	c.calculateJumpApex()
	c.calculateGravity()
	c.calculateJump()
	c.calculateDash()

	c.moveCharacter()
	c.runCornerPrevention()
}

// Step gathers input and runs one tick, for callers whose render rate equals
// the tick rate.
func (c *PlayerController) Step() {
	c.GatherInput()
	c.FixedUpdate()
}

func (c *PlayerController) emit(kind EventKind, value bool) {
	evt := Event{Kind: kind, Tick: c.tick, Value: value}
	c.log.WithFields(logrus.Fields{
		"tick":  evt.Tick,
		"event": evt.Kind,
		"value": evt.Value,
	}).Debug("movement event")
	c.events.emit(evt)
}

// Input returns the last sampled frame input.
func (c *PlayerController) Input() component.FrameInput {
	if c == nil {
		return component.FrameInput{}
	}
	return c.input
}

// RawMovement is the last tick's requested velocity before effectors and
// collision.
func (c *PlayerController) RawMovement() cp.Vector {
	if c == nil {
		return cp.Vector{}
	}
	return c.rawMovement
}

func (c *PlayerController) Grounded() bool {
	if c == nil {
		return false
	}
	return c.col.Grounded
}

func (c *PlayerController) Collision() component.CollisionState {
	if c == nil {
		return component.CollisionState{}
	}
	return c.col
}

func (c *PlayerController) Position() cp.Vector {
	if c == nil {
		return cp.Vector{}
	}
	return c.ch.Position
}

// Bounds returns the current hurtbox in world space.
func (c *PlayerController) Bounds() cp.BB {
	if c == nil {
		return cp.BB{}
	}
	return c.collider.Bounds(c.ch.Position)
}

// Collider returns the current hurtbox, shrunk while crouching.
func (c *PlayerController) Collider() component.Collider {
	if c == nil {
		return component.Collider{}
	}
	return c.collider
}

// State returns a copy of the character state.
func (c *PlayerController) State() component.Character {
	if c == nil {
		return component.NewCharacter(cp.Vector{})
	}
	return c.ch
}

// Tick returns the number of ticks simulated so far.
func (c *PlayerController) Tick() int {
	if c == nil {
		return 0
	}
	return c.tick
}

func (c *PlayerController) Config() component.Config {
	if c == nil {
		return component.Config{}
	}
	return c.cfg
}
