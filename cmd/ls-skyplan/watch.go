package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-skyplan/internal/logging"
	"github.com/litescript/ls-skyplan/internal/ui"
)

var (
	watchRefresh time.Duration
	watchOffline bool
	watchLogFile string
)

const (
	defaultWatchRefresh = 30 * time.Second
	minWatchRefresh     = 1 * time.Second
	maxWatchRefresh     = 5 * time.Minute
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live terminal view of resolved target positions",
	Long: `watch opens a terminal UI that re-resolves the configured targets on an
interval. Targets can be added by name from inside the view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("watch needs a terminal; use resolve for scripted output")
		}

		refresh := watchRefresh
		if refresh < minWatchRefresh {
			refresh = minWatchRefresh
		} else if refresh > maxWatchRefresh {
			refresh = maxWatchRefresh
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		targets, err := cfg.BuildTargets()
		if err != nil {
			return err
		}

		// The alternate screen owns the terminal, so logs go to a file
		// or nowhere.
		logWriter := io.Writer(io.Discard)
		if watchLogFile != "" {
			f, err := os.OpenFile(watchLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()
			logWriter = f
		}
		log := logging.New(logging.ParseLevel(flagLogLevel), logWriter)

		return ui.Run(ui.Options{
			Targets:  targets,
			Observer: observer(cfg),
			Provider: newProvider(log.WithPrefix("ephem")),
			Resolver: newResolver(watchOffline),
			Refresh:  refresh,
			Log:      log.WithPrefix("watch"),
		})
	},
}

func init() {
	f := watchCmd.Flags()
	f.DurationVar(&watchRefresh, "refresh", defaultWatchRefresh, "Re-resolve interval (clamped to 1s..5m)")
	f.BoolVar(&watchOffline, "offline", false, "Resolve added names against the bundled catalog only")
	f.StringVar(&watchLogFile, "log-file", "", "Append logs to a file instead of discarding them")
}
