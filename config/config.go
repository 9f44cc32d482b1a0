package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/milk9111/cubehop/input"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Bindings KeyBindings   `yaml:"bindings"`
	Physics  PhysicsConfig `yaml:"physics"`
	Logging  LoggingConfig `yaml:"logging"`
}

// KeyBindings maps logical actions to physical buttons and carries the
// pointer sensitivities used by the orbit camera.
type KeyBindings struct {
	MoveForward           input.Button `yaml:"move_forward"`
	MoveLeft              input.Button `yaml:"move_left"`
	MoveRight             input.Button `yaml:"move_right"`
	MoveBackwards         input.Button `yaml:"move_backwards"`
	Jump                  input.Button `yaml:"jump"`
	Exit                  input.Button `yaml:"exit"`
	PrimaryClick          input.Button `yaml:"primary_click"`
	SecondaryClick        input.Button `yaml:"secondary_click"`
	VerticalSensitivity   float64      `yaml:"vertical_sensitivity"`
	HorizontalSensitivity float64      `yaml:"horizontal_sensitivity"`
}

type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`
	JumpSpeed float64 `yaml:"jump_speed"`
	TimeScale float64 `yaml:"time_scale"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		Bindings: KeyBindings{
			MoveForward:           "W",
			MoveBackwards:         "S",
			MoveRight:             "D",
			MoveLeft:              "A",
			Jump:                  "Space",
			Exit:                  "Escape",
			PrimaryClick:          input.MouseLeft,
			SecondaryClick:        input.MouseRight,
			VerticalSensitivity:   0.05,
			HorizontalSensitivity: 0.05,
		},
		Physics: PhysicsConfig{
			Gravity:   9.81,
			JumpSpeed: 5.0,
			TimeScale: 1.0,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Button returns the physical button bound to a.
func (k KeyBindings) Button(a input.Action) input.Button {
	switch a {
	case input.MoveForward:
		return k.MoveForward
	case input.MoveLeft:
		return k.MoveLeft
	case input.MoveRight:
		return k.MoveRight
	case input.MoveBackwards:
		return k.MoveBackwards
	case input.Jump:
		return k.Jump
	case input.Exit:
		return k.Exit
	case input.PrimaryClick:
		return k.PrimaryClick
	case input.SecondaryClick:
		return k.SecondaryClick
	}
	return ""
}

func (k *KeyBindings) set(a input.Action, b input.Button) {
	switch a {
	case input.MoveForward:
		k.MoveForward = b
	case input.MoveLeft:
		k.MoveLeft = b
	case input.MoveRight:
		k.MoveRight = b
	case input.MoveBackwards:
		k.MoveBackwards = b
	case input.Jump:
		k.Jump = b
	case input.Exit:
		k.Exit = b
	case input.PrimaryClick:
		k.PrimaryClick = b
	case input.SecondaryClick:
		k.SecondaryClick = b
	}
}

// Load reads a YAML file layered over Default and validates the result.
// Button names are normalised to their canonical spelling.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and canonicalises button names in place.
func (c *Config) Validate() error {
	var problems []string
	for _, a := range input.Actions {
		raw := c.Bindings.Button(a)
		if raw == "" {
			problems = append(problems, fmt.Sprintf("binding %s is empty", a))
			continue
		}
		b, ok := input.ParseButton(string(raw))
		if !ok {
			problems = append(problems, fmt.Sprintf("binding %s: unknown button %q", a, raw))
			continue
		}
		c.Bindings.set(a, b)
	}
	if c.Bindings.VerticalSensitivity <= 0 {
		problems = append(problems, "vertical_sensitivity must be > 0")
	}
	if c.Bindings.HorizontalSensitivity <= 0 {
		problems = append(problems, "horizontal_sensitivity must be > 0")
	}
	if c.Physics.Gravity < 0 {
		problems = append(problems, "gravity must be >= 0")
	}
	if c.Physics.JumpSpeed < 0 {
		problems = append(problems, "jump_speed must be >= 0")
	}
	if c.Physics.TimeScale <= 0 {
		problems = append(problems, "time_scale must be > 0")
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown logging level %q", c.Logging.Level))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Provider hands out the current configuration. Swap is only called
// between ticks, so a tick always sees one immutable Config.
type Provider struct {
	current atomic.Pointer[Config]
}

func NewProvider(cfg *Config) *Provider {
	if cfg == nil {
		cfg = Default()
	}
	p := &Provider{}
	p.current.Store(cfg)
	return p
}

func (p *Provider) Current() *Config {
	return p.current.Load()
}

// Swap installs cfg and returns the previous value. A nil cfg is ignored.
func (p *Provider) Swap(cfg *Config) *Config {
	if cfg == nil {
		return p.Current()
	}
	return p.current.Swap(cfg)
}
