package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-skyplan/internal/astro"
	"github.com/litescript/ls-skyplan/internal/config"
	"github.com/litescript/ls-skyplan/internal/logging"
	"github.com/litescript/ls-skyplan/internal/report"
	"github.com/litescript/ls-skyplan/internal/target"
)

var (
	resolveStars   []string
	resolveBodies  []string
	resolveFixed   []string
	resolveScans   []string
	resolveTimes   []string
	resolveJSON    bool
	resolveOutput  string
	resolveOffline bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve targets to sky positions",
	Long: `resolve turns targets into coordinate positions at the requested times.

Targets come from --star/--body/--fixed/--scan flags, or from the
configuration file when no target flags are given. Times and targets
broadcast against each other: one target with many times, many targets
with one time, or matched lists.`,
	Example: `  ls-skyplan resolve --star Vega --star Sirius
  ls-skyplan resolve --body moon --body mars --lat 35.43 --lon -116.89
  ls-skyplan resolve --fixed "M99=184.7,14.42" --time 2026-03-01T22:00:00Z --json
  ls-skyplan resolve --config targets.yaml --output positions.json --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		targets, err := gatherTargets(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		if len(targets) == 0 {
			return fmt.Errorf("no targets: pass --star/--body/--fixed/--scan or a config file")
		}

		times, err := parseTimes(resolveTimes)
		if err != nil {
			return err
		}

		obs := observer(cfg)
		provider := newProvider(log)

		seq, err := target.Resolve(targets, times, obs, target.WithEphemeris(provider))
		if err != nil {
			return err
		}
		pairs, err := target.Pairs(targets, times)
		if err != nil {
			return err
		}
		snap := report.Build(pairs, seq, obs)

		out := os.Stdout
		if resolveOutput != "" && resolveOutput != "-" {
			f, err := os.Create(resolveOutput)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		if resolveJSON {
			return snap.WriteJSON(out)
		}
		snap.WriteTable(out)
		return nil
	},
}

func init() {
	f := resolveCmd.Flags()
	f.StringArrayVar(&resolveStars, "star", nil, "Catalog object to resolve by name (repeatable)")
	f.StringArrayVar(&resolveBodies, "body", nil, "Solar system body (repeatable; see 'bodies')")
	f.StringArrayVar(&resolveFixed, "fixed", nil, `Fixed ICRS target "[name=]ra,dec[,dist_km]" (repeatable)`)
	f.StringArrayVar(&resolveScans, "scan", nil, `Constant-elevation scan "[name=]alt,az_min,az_max" (repeatable)`)
	f.StringArrayVar(&resolveTimes, "time", []string{"now"}, "Observation time, RFC3339 or 'now' (repeatable)")
	f.BoolVar(&resolveJSON, "json", false, "Write a JSON snapshot instead of a table")
	f.StringVar(&resolveOutput, "output", "", "Output file (default stdout)")
	f.BoolVar(&resolveOffline, "offline", false, "Resolve names against the bundled catalog only")
}

// gatherTargets builds the target list from the CLI flags, falling back
// to the configuration file when no target flags were given.
func gatherTargets(ctx context.Context, cfg *config.Config, log *logging.Logger) ([]target.Target, error) {
	if len(resolveStars)+len(resolveBodies)+len(resolveFixed)+len(resolveScans) == 0 {
		return cfg.BuildTargets()
	}

	var targets []target.Target
	resolver := newResolver(resolveOffline)
	for _, name := range resolveStars {
		tgt, err := target.FromName(ctx, resolver, name)
		if err != nil {
			return nil, err
		}
		log.Debug("resolved %q to ra=%.4f dec=%.4f", name, tgt.RA(), tgt.Dec())
		targets = append(targets, tgt)
	}
	for _, body := range resolveBodies {
		targets = append(targets, target.NewSolarSystem(body))
	}
	for _, spec := range resolveFixed {
		tgt, err := parseFixedSpec(spec)
		if err != nil {
			return nil, err
		}
		targets = append(targets, tgt)
	}
	for _, spec := range resolveScans {
		tgt, err := parseScanSpec(spec)
		if err != nil {
			return nil, err
		}
		targets = append(targets, tgt)
	}
	return targets, nil
}

// splitSpecName peels an optional "name=" prefix off a target spec.
func splitSpecName(spec string) (name, rest string) {
	if i := strings.Index(spec, "="); i >= 0 {
		return strings.TrimSpace(spec[:i]), spec[i+1:]
	}
	return "", spec
}

func parseFixedSpec(spec string) (target.FixedTarget, error) {
	name, rest := splitSpecName(spec)
	parts := strings.Split(rest, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return target.FixedTarget{}, fmt.Errorf("fixed spec %q: want \"[name=]ra,dec[,dist_km]\"", spec)
	}

	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return target.FixedTarget{}, fmt.Errorf("fixed spec %q: %w", spec, err)
		}
		vals[i] = v
	}

	coord := astro.ICRSCoord(vals[0], vals[1])
	if len(vals) == 3 {
		coord = astro.ICRSCoordWithDistance(vals[0], vals[1], vals[2])
	}

	var opts []target.Option
	if name != "" {
		opts = append(opts, target.WithName(name))
	}
	return target.NewFixed(coord, opts...)
}

func parseScanSpec(spec string) (target.ConstantElevationTarget, error) {
	name, rest := splitSpecName(spec)
	parts := strings.Split(rest, ",")
	if len(parts) != 3 {
		return target.ConstantElevationTarget{}, fmt.Errorf("scan spec %q: want \"[name=]alt,az_min,az_max\"", spec)
	}

	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return target.ConstantElevationTarget{}, fmt.Errorf("scan spec %q: %w", spec, err)
		}
		vals[i] = v
	}

	var opts []target.Option
	if name != "" {
		opts = append(opts, target.WithName(name))
	}
	return target.NewConstantElevation(vals[0], vals[1], vals[2], opts...), nil
}

// parseTimes turns --time values into instants. "now" means the shared
// current time, taken once so repeated flags agree.
func parseTimes(specs []string) ([]time.Time, error) {
	now := time.Now().UTC()
	times := make([]time.Time, 0, len(specs))
	for _, s := range specs {
		if strings.EqualFold(strings.TrimSpace(s), "now") {
			times = append(times, now)
			continue
		}
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("time %q: want RFC3339 (2026-03-01T22:00:00Z) or 'now'", s)
		}
		times = append(times, t.UTC())
	}
	return times, nil
}
