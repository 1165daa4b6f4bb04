package specs

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SystemSpec describes a whole star system: the camera's home pose and
// the body tree.
type SystemSpec struct {
	Name   string     `yaml:"name"`
	Camera CameraSpec `yaml:"camera"`
	Bodies []BodySpec `yaml:"bodies"`
}

// CameraSpec is the camera's home placement.
type CameraSpec struct {
	Position VecSpec `yaml:"position"`
	LookAt   VecSpec `yaml:"look_at"`
}

// VecSpec is a world-space point.
type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// BodySpec describes one celestial body. OrbitRadius and PeriodSec are
// zero for the central star. Moons nest one level deep.
type BodySpec struct {
	Name        string     `yaml:"name"`
	Radius      float64    `yaml:"radius"`
	Color       string     `yaml:"color"`
	Glow        bool       `yaml:"glow"`
	OrbitRadius float64    `yaml:"orbit_radius"`
	PeriodSec   float64    `yaml:"period_sec"`
	Inclination float64    `yaml:"inclination_deg"`
	StartAngle  float64    `yaml:"start_angle_deg"`
	SpinSec     float64    `yaml:"spin_sec"`
	Moons       []BodySpec `yaml:"moons"`
}

// LoadSystemSpec reads and validates a system spec from disk.
func LoadSystemSpec(path string) (*SystemSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("specs: read %s: %w", path, err)
	}
	return parseSystemSpec(data, path)
}

// DefaultSystemSpec returns the embedded solar system definition.
func DefaultSystemSpec() (*SystemSpec, error) {
	return parseSystemSpec(defaultSystem, "embedded solar.yaml")
}

func parseSystemSpec(data []byte, origin string) (*SystemSpec, error) {
	var spec SystemSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("specs: unmarshal %s: %w", origin, err)
	}
	if err := spec.validate(); err != nil {
		return nil, fmt.Errorf("specs: %s: %w", origin, err)
	}
	return &spec, nil
}

func (s *SystemSpec) validate() error {
	if len(s.Bodies) == 0 {
		return fmt.Errorf("no bodies defined")
	}
	seen := make(map[string]bool)
	for i := range s.Bodies {
		if err := s.Bodies[i].validate(seen); err != nil {
			return err
		}
	}
	return nil
}

func (b *BodySpec) validate(seen map[string]bool) error {
	if b.Name == "" {
		return fmt.Errorf("body with empty name")
	}
	if seen[b.Name] {
		return fmt.Errorf("duplicate body name %q", b.Name)
	}
	seen[b.Name] = true
	if b.Radius <= 0 {
		return fmt.Errorf("body %q: radius must be positive", b.Name)
	}
	if b.OrbitRadius < 0 {
		return fmt.Errorf("body %q: orbit_radius must not be negative", b.Name)
	}
	if b.OrbitRadius > 0 && b.PeriodSec <= 0 {
		return fmt.Errorf("body %q: orbiting body needs a positive period_sec", b.Name)
	}
	if _, err := b.RGBA(); err != nil {
		return fmt.Errorf("body %q: %w", b.Name, err)
	}
	for i := range b.Moons {
		if len(b.Moons[i].Moons) > 0 {
			return fmt.Errorf("body %q: moons of moons are not supported", b.Moons[i].Name)
		}
		if err := b.Moons[i].validate(seen); err != nil {
			return err
		}
	}
	return nil
}

// RGBA parses the body's hex color ("#rrggbb" or "rrggbb").
func (b *BodySpec) RGBA() (color.RGBA, error) {
	return ParseHexColor(b.Color)
}

// ParseHexColor converts "#rrggbb" to a color.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
