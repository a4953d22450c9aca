package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-skyplan/internal/astro"
	"github.com/litescript/ls-skyplan/internal/config"
	"github.com/litescript/ls-skyplan/internal/ephem"
	"github.com/litescript/ls-skyplan/internal/logging"
	"github.com/litescript/ls-skyplan/internal/names"
	"github.com/litescript/ls-skyplan/internal/target"
	"github.com/litescript/ls-skyplan/internal/version"
)

// Persistent flags shared by every subcommand
var (
	flagConfig   string
	flagSchema   string
	flagLogLevel string
	flagEphem    string
	flagLat      float64
	flagLon      float64
	flagElev     float64
	flagSiteName string
)

var rootCmd = &cobra.Command{
	Use:     "ls-skyplan",
	Short:   "Observation target planning toolkit",
	Long:    "ls-skyplan resolves observation targets (catalog stars, solar system bodies, fixed coordinates and elevation scans) into sky positions for a configured observing site.",
	Version: version.Version,
}

// Execute runs the root command.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to target configuration YAML (or LS_SKYPLAN_CONFIG)")
	pf.StringVar(&flagSchema, "schema", "schemas/targets.cue", "Path to CUE schema file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&flagEphem, "ephem", "auto", "Ephemeris source (auto, builtin, horizons)")
	pf.Float64Var(&flagLat, "lat", 0, "Observer latitude in degrees (overrides config)")
	pf.Float64Var(&flagLon, "lon", 0, "Observer longitude in degrees (overrides config)")
	pf.Float64Var(&flagElev, "elevation", 0, "Observer elevation in meters (overrides config)")
	pf.StringVar(&flagSiteName, "site", "", "Observer site name")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(bodiesCmd)
	rootCmd.AddCommand(watchCmd)
}

func newLogger() *logging.Logger {
	return logging.New(logging.ParseLevel(flagLogLevel), os.Stderr)
}

// configPath returns the configuration path from the flag or the
// LS_SKYPLAN_CONFIG environment variable. Empty means no config.
func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return os.Getenv("LS_SKYPLAN_CONFIG")
}

// loadConfig loads the target configuration. Without a configured path
// the result is an empty config, not an error. The stock schema path is
// optional; an explicitly given one is not.
func loadConfig() (*config.Config, error) {
	path := configPath()
	if path == "" {
		return &config.Config{}, nil
	}
	schema := flagSchema
	if !rootCmd.PersistentFlags().Changed("schema") {
		if _, err := os.Stat(schema); err != nil {
			schema = ""
		}
	}
	return config.Load(path, schema)
}

// observer assembles the observing site from config plus flag overrides.
// Returns nil when neither supplies one.
func observer(cfg *config.Config) *astro.Observer {
	obs, ok := cfg.Observer()
	pf := rootCmd.PersistentFlags()
	if pf.Changed("lat") {
		obs.LatDeg = flagLat
		ok = true
	}
	if pf.Changed("lon") {
		obs.LonDeg = flagLon
		ok = true
	}
	if pf.Changed("elevation") {
		obs.ElevM = flagElev
		ok = true
	}
	if flagSiteName != "" {
		obs.Name = flagSiteName
		ok = true
	}
	if !ok {
		return nil
	}
	return &obs
}

// newProvider builds the ephemeris source for the --ephem mode, with a
// drift-aware cache in front.
func newProvider(log *logging.Logger) ephem.Provider {
	var p ephem.Provider
	switch ephem.ParseMode(flagEphem) {
	case ephem.ModeBuiltin:
		p = ephem.NewBuiltin()
	case ephem.ModeHorizons:
		p = ephem.NewHorizonsProvider()
	default:
		p = ephem.NewFallback(ephem.NewHorizonsProvider(), ephem.NewBuiltin())
	}
	log.Debug("ephemeris provider: %s", p.Name())
	return ephem.NewCache(p, target.DriftFor)
}

// newResolver builds the name lookup chain. Sesame answers first with
// the bundled catalog as fallback; offline restricts lookup to the
// catalog.
func newResolver(offline bool) names.Resolver {
	table := names.NewTableResolver()
	if offline {
		return table
	}
	return names.NewChain(names.NewSesameClient(), table)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
