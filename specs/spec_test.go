package specs

import (
	"image/color"
	"strings"
	"testing"
)

func TestDefaultSystemSpec(t *testing.T) {
	spec, err := DefaultSystemSpec()
	if err != nil {
		t.Fatalf("embedded spec should parse: %v", err)
	}
	if spec.Name == "" {
		t.Fatal("system name missing")
	}
	if len(spec.Bodies) < 2 {
		t.Fatalf("expected a star and planets, got %d bodies", len(spec.Bodies))
	}

	star := spec.Bodies[0]
	if !star.Glow || star.OrbitRadius != 0 {
		t.Fatalf("first body should be the glowing central star, got %+v", star)
	}

	foundMoon := false
	for _, b := range spec.Bodies {
		if len(b.Moons) > 0 {
			foundMoon = true
		}
	}
	if !foundMoon {
		t.Fatal("expected at least one planet with moons")
	}
}

func TestParseSystemSpecValidation(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no_bodies",
			yaml:    "name: empty\nbodies: []\n",
			wantErr: "no bodies",
		},
		{
			name: "duplicate_names",
			yaml: `
bodies:
  - { name: A, radius: 1, color: "#ffffff" }
  - { name: A, radius: 1, color: "#ffffff" }
`,
			wantErr: "duplicate body name",
		},
		{
			name: "orbit_without_period",
			yaml: `
bodies:
  - { name: A, radius: 1, color: "#ffffff", orbit_radius: 10 }
`,
			wantErr: "period_sec",
		},
		{
			name: "bad_color",
			yaml: `
bodies:
  - { name: A, radius: 1, color: "notacolor" }
`,
			wantErr: "invalid color",
		},
		{
			name: "negative_radius",
			yaml: `
bodies:
  - { name: A, radius: -1, color: "#ffffff" }
`,
			wantErr: "radius must be positive",
		},
		{
			name: "nested_moons",
			yaml: `
bodies:
  - name: A
    radius: 1
    color: "#ffffff"
    moons:
      - name: B
        radius: 1
        color: "#ffffff"
        orbit_radius: 2
        period_sec: 1
        moons:
          - { name: C, radius: 1, color: "#ffffff", orbit_radius: 1, period_sec: 1 }
`,
			wantErr: "moons of moons",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parseSystemSpec([]byte(c.yaml), c.name)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", c.wantErr)
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#4f7fd6", want: color.RGBA{R: 0x4f, G: 0x7f, B: 0xd6, A: 0xff}},
		{in: "ffd75e", want: color.RGBA{R: 0xff, G: 0xd7, B: 0x5e, A: 0xff}},
		{in: " #c8c8c8 ", want: color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}},
		{in: "#fff", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, c := range cases {
		got, err := ParseHexColor(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseHexColor(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}
