// Package config loads the YAML observing configuration: the site and
// the target list. Files are validated against a CUE schema before
// unmarshalling.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-skyplan/internal/astro"
	"github.com/litescript/ls-skyplan/internal/target"
)

// Site describes the observing location.
type Site struct {
	Name   string  `yaml:"name"`
	LatDeg float64 `yaml:"latitude_deg"`
	LonDeg float64 `yaml:"longitude_deg"`
	ElevM  float64 `yaml:"elevation_m"`
}

// TargetEntry is one entry of the target list. Kind selects which of the
// optional field groups applies.
type TargetEntry struct {
	Kind   string `yaml:"kind"`
	Name   string `yaml:"name,omitempty"`
	Marker string `yaml:"marker,omitempty"`

	// kind: fixed
	Frame  string   `yaml:"frame,omitempty"`
	LonDeg *float64 `yaml:"lon_deg,omitempty"`
	LatDeg *float64 `yaml:"lat_deg,omitempty"`
	DistKm *float64 `yaml:"distance_km,omitempty"`

	// kind: constant_elevation
	AltDeg       *float64 `yaml:"alt_deg,omitempty"`
	AzMinDeg     *float64 `yaml:"az_min_deg,omitempty"`
	AzMaxDeg     *float64 `yaml:"az_max_deg,omitempty"`
	RAMinDeg     *float64 `yaml:"ra_min_deg,omitempty"`
	DecCenterDeg *float64 `yaml:"dec_center_deg,omitempty"`
	AltMinDeg    *float64 `yaml:"alt_min_deg,omitempty"`
	AltMaxDeg    *float64 `yaml:"alt_max_deg,omitempty"`

	// kind: solar_system
	Body string `yaml:"body,omitempty"`
}

// Config is the root configuration.
type Config struct {
	Site    *Site         `yaml:"site,omitempty"`
	Targets []TargetEntry `yaml:"targets"`
}

// Load reads a YAML config, validates it against the CUE schema when a
// schema path is given, and checks the typed constraints.
func Load(configPath, cueSchemaPath string) (*Config, error) {
	if cueSchemaPath != "" {
		if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the kind-specific required fields of every entry.
func (c *Config) Validate() error {
	for i, e := range c.Targets {
		if err := e.validate(); err != nil {
			return fmt.Errorf("target %d (%s): %w", i, e.describe(), err)
		}
	}
	return nil
}

func (e TargetEntry) validate() error {
	switch e.Kind {
	case "fixed":
		if e.LonDeg == nil || e.LatDeg == nil {
			return fmt.Errorf("fixed target needs lon_deg and lat_deg")
		}
		switch e.Frame {
		case "", "icrs", "galactic":
		default:
			return fmt.Errorf("unknown frame %q", e.Frame)
		}
	case "constant_elevation":
		if e.AltDeg == nil || e.AzMinDeg == nil || e.AzMaxDeg == nil {
			return fmt.Errorf("constant_elevation target needs alt_deg, az_min_deg, az_max_deg")
		}
		if (e.AltMinDeg == nil) != (e.AltMaxDeg == nil) {
			return fmt.Errorf("alt_min_deg and alt_max_deg must be set together")
		}
	case "solar_system":
		if e.Body == "" {
			return fmt.Errorf("solar_system target needs body")
		}
	case "":
		return fmt.Errorf("missing kind")
	default:
		return fmt.Errorf("unknown kind %q", e.Kind)
	}
	return nil
}

func (e TargetEntry) describe() string {
	if e.Name != "" {
		return e.Name
	}
	if e.Body != "" {
		return e.Body
	}
	return e.Kind
}

// Observer returns the configured site as an observer, and whether a
// site was configured at all.
func (c *Config) Observer() (astro.Observer, bool) {
	if c.Site == nil {
		return astro.Observer{}, false
	}
	return astro.Observer{
		LatDeg: c.Site.LatDeg,
		LonDeg: c.Site.LonDeg,
		ElevM:  c.Site.ElevM,
		Name:   c.Site.Name,
	}, true
}

// BuildTargets converts the entry list into target values.
func (c *Config) BuildTargets() ([]target.Target, error) {
	targets := make([]target.Target, 0, len(c.Targets))
	for i, e := range c.Targets {
		t, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("target %d (%s): %w", i, e.describe(), err)
		}
		targets = append(targets, t)
	}
	return targets, nil
}

func (e TargetEntry) build() (target.Target, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}

	opts := []target.Option{}
	if e.Name != "" {
		opts = append(opts, target.WithName(e.Name))
	}
	if e.Marker != "" {
		opts = append(opts, target.WithMarker(e.Marker))
	}

	switch e.Kind {
	case "fixed":
		frame := astro.Frame(astro.ICRS{})
		if e.Frame == "galactic" {
			frame = astro.Galactic{}
		}
		var coord astro.Coord
		if e.DistKm != nil {
			coord = astro.NewCoordWithDistance(frame, *e.LonDeg, *e.LatDeg, *e.DistKm)
		} else {
			coord = astro.NewCoord(frame, *e.LonDeg, *e.LatDeg)
		}
		return target.NewFixed(coord, opts...)

	case "constant_elevation":
		if e.RAMinDeg != nil {
			opts = append(opts, target.WithRAMin(*e.RAMinDeg))
		}
		if e.DecCenterDeg != nil {
			opts = append(opts, target.WithDecCenter(*e.DecCenterDeg))
		}
		if e.AltMinDeg != nil && e.AltMaxDeg != nil {
			opts = append(opts, target.WithAltRange(*e.AltMinDeg, *e.AltMaxDeg))
		}
		return target.NewConstantElevation(*e.AltDeg, *e.AzMinDeg, *e.AzMaxDeg, opts...), nil

	case "solar_system":
		return target.NewSolarSystem(e.Body, opts...), nil
	}

	return nil, fmt.Errorf("unknown kind %q", e.Kind)
}
