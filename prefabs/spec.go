package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSpec is wrapped by every validation failure.
var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// LoadSpec decodes filename over defaults. Fields absent from the file keep
// their default value.
func LoadSpec[T any](filename string, defaults T) (T, error) {
	spec := defaults
	if err := decodeSpec(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// decodeSpec unmarshals filename over out. Fields absent from the file keep
// whatever out already holds.
func decodeSpec(filename string, out any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	TickRate  int           `yaml:"tick_rate"`
	Collider  ColliderSpec  `yaml:"collider"`
	Abilities AbilitiesSpec `yaml:"abilities"`
	Collision CollisionSpec `yaml:"collision"`
	Walk      WalkSpec      `yaml:"walk"`
	Gravity   GravitySpec   `yaml:"gravity"`
	Jump      JumpSpec      `yaml:"jump"`
	Crouch    CrouchSpec    `yaml:"crouch"`
	Dash      DashSpec      `yaml:"dash"`
	Stamina   StaminaSpec   `yaml:"stamina"`
	Debug     DebugSpec     `yaml:"debug"`

	// ForwardOnly runs the character as an auto-runner: input can slow it
	// down but never turn it around.
	ForwardOnly bool `yaml:"forward_only"`
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
}

type AbilitiesSpec struct {
	DoubleJump bool `yaml:"double_jump"`
	Dash       bool `yaml:"dash"`
	Crouch     bool `yaml:"crouch"`
}

type CollisionSpec struct {
	DetectionRayLength float64 `yaml:"detection_ray_length"`
}

type WalkSpec struct {
	Acceleration float64 `yaml:"acceleration"`
	MoveClamp    float64 `yaml:"move_clamp"`
	Deceleration float64 `yaml:"deceleration"`
	ApexBonus    float64 `yaml:"apex_bonus"`
}

type GravitySpec struct {
	FallClamp    float64 `yaml:"fall_clamp"`
	MinFallSpeed float64 `yaml:"min_fall_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

type JumpSpec struct {
	Height                  float64 `yaml:"height"`
	ApexThreshold           float64 `yaml:"apex_threshold"`
	CoyoteTicks             int     `yaml:"coyote_ticks"`
	BufferTicks             int     `yaml:"buffer_ticks"`
	EndEarlyGravityModifier float64 `yaml:"end_early_gravity_modifier"`
}

type CrouchSpec struct {
	SizeModifier               float64 `yaml:"size_modifier"`
	SpeedModifier              float64 `yaml:"speed_modifier"`
	SlowdownTicks              int     `yaml:"slowdown_ticks"`
	ImmediateSlowdownThreshold float64 `yaml:"immediate_slowdown_threshold"`
	StandClearance             float64 `yaml:"stand_clearance"`
}

type DashSpec struct {
	Power                   float64 `yaml:"power"`
	Ticks                   int     `yaml:"ticks"`
	EndHorizontalMultiplier float64 `yaml:"end_horizontal_multiplier"`
}

type StaminaSpec struct {
	Max            float64 `yaml:"max"`
	JumpCost       float64 `yaml:"jump_cost"`
	DoubleJumpCost float64 `yaml:"double_jump_cost"`
	LandingRestore float64 `yaml:"landing_restore"`
}

type DebugSpec struct {
	Color       *YAMLColor `yaml:"color"`
	CrouchColor *YAMLColor `yaml:"crouch_color"`
	ShowProbes  bool       `yaml:"show_probes"`
}

// DefaultPlayerSpec mirrors component.DefaultConfig with every ability on
// and a 0.9x1.8 hurtbox.
func DefaultPlayerSpec() PlayerSpec {
	cfg := component.DefaultConfig()
	return PlayerSpec{
		Name:      "player",
		TickRate:  cfg.TickRate,
		Collider:  ColliderSpec{Width: 0.9, Height: 1.8},
		Abilities: AbilitiesSpec{DoubleJump: true, Dash: true, Crouch: true},
		Collision: CollisionSpec{DetectionRayLength: cfg.DetectionRayLength},
		Walk: WalkSpec{
			Acceleration: cfg.Acceleration,
			MoveClamp:    cfg.MoveClamp,
			Deceleration: cfg.Deceleration,
			ApexBonus:    cfg.ApexBonus,
		},
		Gravity: GravitySpec{
			FallClamp:    cfg.FallClamp,
			MinFallSpeed: cfg.MinFallSpeed,
			MaxFallSpeed: cfg.MaxFallSpeed,
		},
		Jump: JumpSpec{
			Height:                  cfg.JumpHeight,
			ApexThreshold:           cfg.JumpApexThreshold,
			CoyoteTicks:             cfg.CoyoteTicks,
			BufferTicks:             cfg.JumpBufferTicks,
			EndEarlyGravityModifier: cfg.JumpEndEarlyGravityModifier,
		},
		Crouch: CrouchSpec{
			SizeModifier:               cfg.CrouchSizeModifier,
			SpeedModifier:              cfg.CrouchSpeedModifier,
			SlowdownTicks:              cfg.CrouchSlowdownTicks,
			ImmediateSlowdownThreshold: cfg.ImmediateCrouchSlowdownThreshold,
			StandClearance:             cfg.StandClearance,
		},
		Dash: DashSpec{
			Power:                   cfg.DashPower,
			Ticks:                   cfg.DashTicks,
			EndHorizontalMultiplier: cfg.DashEndHorizontalMultiplier,
		},
		Stamina: StaminaSpec{Max: 100, JumpCost: 5, DoubleJumpCost: 10, LandingRestore: 2},
	}
}

// LoadPlayerSpec reads player.yaml over the defaults and validates it.
func LoadPlayerSpec() (*PlayerSpec, error) {
	return LoadPlayerSpecFile("player.yaml")
}

func LoadPlayerSpecFile(filename string) (*PlayerSpec, error) {
	spec, err := LoadSpec(filename, DefaultPlayerSpec())
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// Validate reports every out-of-range tunable at once.
func (s *PlayerSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil spec", ErrInvalidSpec)
	}
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidSpec}, args...)...))
		}
	}
	check(s.TickRate > 0, "tick_rate must be positive, got %d", s.TickRate)
	check(s.Collider.Width > 0 && s.Collider.Height > 0, "collider must have a positive size, got %vx%v", s.Collider.Width, s.Collider.Height)
	check(s.Collision.DetectionRayLength > 0, "detection_ray_length must be positive, got %v", s.Collision.DetectionRayLength)
	check(s.Walk.MoveClamp >= 0, "walk.move_clamp must not be negative, got %v", s.Walk.MoveClamp)
	check(s.Gravity.FallClamp <= 0, "gravity.fall_clamp must not be positive, got %v", s.Gravity.FallClamp)
	check(s.Jump.CoyoteTicks >= 0, "jump.coyote_ticks must not be negative, got %d", s.Jump.CoyoteTicks)
	check(s.Jump.BufferTicks >= 0, "jump.buffer_ticks must not be negative, got %d", s.Jump.BufferTicks)
	check(s.Crouch.SlowdownTicks >= 0, "crouch.slowdown_ticks must not be negative, got %d", s.Crouch.SlowdownTicks)
	check(s.Crouch.SizeModifier > 0 && s.Crouch.SizeModifier <= 1, "crouch.size_modifier must be in (0, 1], got %v", s.Crouch.SizeModifier)
	check(s.Crouch.StandClearance > 0 && s.Crouch.StandClearance <= 1, "crouch.stand_clearance must be in (0, 1], got %v", s.Crouch.StandClearance)
	check(s.Dash.Ticks >= 0, "dash.ticks must not be negative, got %d", s.Dash.Ticks)
	check(s.Stamina.Max >= 0, "stamina.max must not be negative, got %v", s.Stamina.Max)
	return errors.Join(errs...)
}

func (s *PlayerSpec) Config() component.Config {
	return component.Config{
		TickRate:                         s.TickRate,
		DetectionRayLength:               s.Collision.DetectionRayLength,
		Acceleration:                     s.Walk.Acceleration,
		MoveClamp:                        s.Walk.MoveClamp,
		Deceleration:                     s.Walk.Deceleration,
		ApexBonus:                        s.Walk.ApexBonus,
		FallClamp:                        s.Gravity.FallClamp,
		MinFallSpeed:                     s.Gravity.MinFallSpeed,
		MaxFallSpeed:                     s.Gravity.MaxFallSpeed,
		JumpHeight:                       s.Jump.Height,
		JumpApexThreshold:                s.Jump.ApexThreshold,
		CoyoteTicks:                      s.Jump.CoyoteTicks,
		JumpBufferTicks:                  s.Jump.BufferTicks,
		JumpEndEarlyGravityModifier:      s.Jump.EndEarlyGravityModifier,
		CrouchSizeModifier:               s.Crouch.SizeModifier,
		CrouchSpeedModifier:              s.Crouch.SpeedModifier,
		CrouchSlowdownTicks:              s.Crouch.SlowdownTicks,
		ImmediateCrouchSlowdownThreshold: s.Crouch.ImmediateSlowdownThreshold,
		StandClearance:                   s.Crouch.StandClearance,
		DashPower:                        s.Dash.Power,
		DashTicks:                        s.Dash.Ticks,
		DashEndHorizontalMultiplier:      s.Dash.EndHorizontalMultiplier,
	}
}

func (s *PlayerSpec) AbilitySet() component.Abilities {
	return component.Abilities{
		DoubleJump: s.Abilities.DoubleJump,
		Dash:       s.Abilities.Dash,
		Crouch:     s.Abilities.Crouch,
	}
}

func (s *PlayerSpec) HurtboxCollider() component.Collider {
	return component.Collider{
		Size:   cp.Vector{X: s.Collider.Width, Y: s.Collider.Height},
		Offset: cp.Vector{X: s.Collider.OffsetX, Y: s.Collider.OffsetY},
	}
}

// NewStamina returns a full pool of Stamina.Max, or nil when stamina is
// disabled.
func (s *PlayerSpec) NewStamina() *component.Stamina {
	if s.Stamina.Max <= 0 {
		return nil
	}
	return component.NewStamina(s.Stamina.Max)
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns the parsed colour or def when unset.
func (c *YAMLColor) ColorOr(def color.Color) color.Color {
	if c == nil || c.Color == nil {
		return def
	}
	return c.Color
}
