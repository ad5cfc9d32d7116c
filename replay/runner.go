package replay

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/physics"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/system"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

// Options configures a headless run. Level and Source are required; a nil
// Spec uses the built-in defaults.
type Options struct {
	Level  *levels.Level
	Spec   *prefabs.PlayerSpec
	Source component.InputSource
	Logger logrus.FieldLogger
}

// Result summarises a finished run. Digest hashes the full per-tick state
// so two runs with the same inputs agree bit for bit.
type Result struct {
	Ticks    int
	Digest   uint64
	Final    component.Character
	Position cp.Vector
	Events   []system.Event
	Stamina  float64
}

// Runner drives one controller through a level without a window.
type Runner struct {
	Controller *system.PlayerController
	World      *physics.World
	Stamina    *component.Stamina

	log    logrus.FieldLogger
	hasher *xxh3.Hasher
	queue  *system.EventQueue
	events []system.Event
	buf    [8]byte
}

func New(opts Options) (*Runner, error) {
	if opts.Level == nil {
		return nil, fmt.Errorf("replay: nil level")
	}
	if opts.Source == nil {
		return nil, fmt.Errorf("replay: nil input source")
	}
	spec := opts.Spec
	if spec == nil {
		def := prefabs.DefaultPlayerSpec()
		spec = &def
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	src := opts.Source
	if spec.ForwardOnly {
		src = input.ForwardOnly{InputSource: src}
	}

	cfg := spec.Config()
	world, err := physics.BuildLevel(opts.Level, cfg.DeltaTime())
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	collider := spec.HurtboxCollider()
	ctrl := system.NewPlayerController(cfg, spec.AbilitySet(), collider, world, src)
	ctrl.SetLogger(log)
	ctrl.SetPosition(physics.SpawnPosition(opts.Level, collider))

	r := &Runner{
		Controller: ctrl,
		World:      world,
		Stamina:    spec.NewStamina(),
		log:        log,
		hasher:     xxh3.New(),
		queue:      &system.EventQueue{},
	}
	ctrl.Events().Subscribe("replay", r.queue.Push)
	if r.Stamina != nil {
		drain := &system.StaminaDrain{
			Stamina:        r.Stamina,
			JumpCost:       spec.Stamina.JumpCost,
			DoubleJumpCost: spec.Stamina.DoubleJumpCost,
			LandingRestore: spec.Stamina.LandingRestore,
		}
		drain.Attach(ctrl.Events(), "stamina")
	}
	return r, nil
}

// Step runs a single tick and folds the resulting state into the digest.
func (r *Runner) Step() []system.Event {
	r.Controller.Step()
	evts := r.queue.Drain()
	for _, evt := range evts {
		r.log.WithFields(logrus.Fields{
			"tick":  evt.Tick,
			"event": evt.Kind,
			"value": evt.Value,
		}).Info("event")
	}
	r.events = append(r.events, evts...)
	r.hashTick(evts)
	return evts
}

// Run steps n ticks and returns the result so far.
func (r *Runner) Run(n int) Result {
	for i := 0; i < n; i++ {
		r.Step()
	}
	return r.Result()
}

func (r *Runner) Result() Result {
	res := Result{
		Ticks:    r.Controller.Tick(),
		Digest:   r.hasher.Sum64(),
		Final:    r.Controller.State(),
		Position: r.Controller.Position(),
		Events:   append([]system.Event(nil), r.events...),
	}
	if r.Stamina != nil {
		res.Stamina = r.Stamina.Current
	}
	return res
}

func (r *Runner) hashTick(evts []system.Event) {
	ch := r.Controller.State()
	r.writeUint(uint64(r.Controller.Tick()))
	for _, f := range []float64{
		ch.Position.X, ch.Position.Y,
		ch.Velocity.X, ch.Velocity.Y,
		ch.HorizontalSpeed, ch.VerticalSpeed,
		ch.ApexPoint, ch.FallSpeed,
	} {
		r.writeUint(math.Float64bits(f))
	}

	var flags uint64
	for i, b := range []bool{
		r.Controller.Grounded(),
		ch.CoyoteUsable,
		ch.DoubleJumpUsable,
		ch.EndedJumpEarly,
		ch.Crouching,
		ch.CanDash,
		ch.Dashing,
		ch.CornerStuck,
	} {
		if b {
			flags |= 1 << i
		}
	}
	r.writeUint(flags)

	for _, evt := range evts {
		_, _ = r.hasher.WriteString(string(evt.Kind))
		if evt.Value {
			r.writeUint(1)
		} else {
			r.writeUint(0)
		}
	}
}

func (r *Runner) writeUint(v uint64) {
	binary.LittleEndian.PutUint64(r.buf[:], v)
	_, _ = r.hasher.Write(r.buf[:])
}
