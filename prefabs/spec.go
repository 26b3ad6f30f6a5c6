package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"
)

const (
	ActorFile      = "wizard.yaml"
	ProjectileFile = "bolt.yaml"
	WorldFile      = "world.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ActorSpec tunes the player-controlled wizard.
type ActorSpec struct {
	Name      string  `yaml:"name"`
	Speed     float64 `yaml:"speed"`
	JumpCount int     `yaml:"jump_count"`
	JumpScale float64 `yaml:"jump_scale"`
	AnimStep  float64 `yaml:"anim_step"`
	GroundY   float64 `yaml:"ground_y"`
	MaxHealth int     `yaml:"max_health"`
	// Animations maps a motion state name to the directory holding its frames.
	Animations map[string]string `yaml:"animations"`
	Hitbox     HitboxSpec        `yaml:"hitbox"`
}

// HitboxSpec sizes the debug hitbox as a fraction of the sprite rect.
type HitboxSpec struct {
	WidthDivisor  float64    `yaml:"width_divisor"`
	HeightDivisor float64    `yaml:"height_divisor"`
	StrokeWidth   float32    `yaml:"stroke_width"`
	Color         *YAMLColor `yaml:"color"`
}

func DefaultActorSpec() ActorSpec {
	return ActorSpec{
		Name:      "wizard",
		Speed:     5,
		JumpCount: 10,
		JumpScale: 0.3,
		AnimStep:  0.15,
		GroundY:   790,
		MaxHealth: 100,
		Animations: map[string]string{
			"idle":   "wizard/idle",
			"run":    "wizard/run",
			"jump":   "wizard/jump",
			"attack": "wizard/attack2",
			"death":  "wizard/death",
		},
		Hitbox: HitboxSpec{
			WidthDivisor:  3.5,
			HeightDivisor: 2,
			StrokeWidth:   2,
		},
	}
}

func (s ActorSpec) Validate() error {
	var errs []error
	if s.Speed < 0 {
		errs = append(errs, fmt.Errorf("speed must be >= 0, got %v", s.Speed))
	}
	if s.JumpCount <= 0 {
		errs = append(errs, fmt.Errorf("jump_count must be > 0, got %d", s.JumpCount))
	}
	if s.AnimStep <= 0 {
		errs = append(errs, fmt.Errorf("anim_step must be > 0, got %v", s.AnimStep))
	}
	if s.Hitbox.WidthDivisor <= 0 || s.Hitbox.HeightDivisor <= 0 {
		errs = append(errs, fmt.Errorf("hitbox divisors must be > 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("prefabs: actor %q: %w", s.Name, errors.Join(errs...))
	}
	return nil
}

func LoadActorSpec() (ActorSpec, error) {
	spec, err := LoadSpec[ActorSpec](ActorFile)
	if err != nil {
		return ActorSpec{}, err
	}
	return spec, spec.Validate()
}

// ProjectileSpec tunes the bolt fired by the wizard.
type ProjectileSpec struct {
	Name     string  `yaml:"name"`
	Speed    float64 `yaml:"speed"`
	AnimStep float64 `yaml:"anim_step"`
	DelayMS  int     `yaml:"delay_ms"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Frames   string  `yaml:"frames"`
}

func DefaultProjectileSpec() ProjectileSpec {
	return ProjectileSpec{
		Name:     "bolt",
		Speed:    10,
		AnimStep: 0.3,
		DelayMS:  550,
		Width:    10,
		Height:   10,
		Frames:   "projectile",
	}
}

// Delay is the time a bolt stays inert after it is created.
func (s ProjectileSpec) Delay() time.Duration {
	return time.Duration(s.DelayMS) * time.Millisecond
}

func (s ProjectileSpec) Validate() error {
	if s.Speed <= 0 {
		return fmt.Errorf("prefabs: projectile %q: speed must be > 0, got %v", s.Name, s.Speed)
	}
	if s.AnimStep <= 0 {
		return fmt.Errorf("prefabs: projectile %q: anim_step must be > 0, got %v", s.Name, s.AnimStep)
	}
	if s.DelayMS < 0 {
		return fmt.Errorf("prefabs: projectile %q: delay_ms must be >= 0, got %d", s.Name, s.DelayMS)
	}
	if s.Frames == "" {
		return fmt.Errorf("prefabs: projectile %q: frames directory is empty", s.Name)
	}
	return nil
}

func LoadProjectileSpec() (ProjectileSpec, error) {
	spec, err := LoadSpec[ProjectileSpec](ProjectileFile)
	if err != nil {
		return ProjectileSpec{}, err
	}
	return spec, spec.Validate()
}

// WorldSpec describes the playfield; projectiles leaving it are removed.
type WorldSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func DefaultWorldSpec() WorldSpec {
	return WorldSpec{Width: 1500, Height: 900}
}

func (s WorldSpec) Bounds() cp.BB {
	return cp.BB{L: 0, B: 0, R: s.Width, T: s.Height}
}

func LoadWorldSpec() (WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](WorldFile)
	if err != nil {
		return WorldSpec{}, err
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return WorldSpec{}, fmt.Errorf("prefabs: world size must be positive, got %vx%v", spec.Width, spec.Height)
	}
	return spec, nil
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
