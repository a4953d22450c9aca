// Package report renders resolution results as JSON snapshots or plain
// text tables for piped output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/litescript/ls-skyplan/internal/astro"
	"github.com/litescript/ls-skyplan/internal/target"
)

// Snapshot is the JSON-serializable result of one resolution run.
// AxisNames records what the frame calls its angle columns, so readers
// do not have to guess from the frame name.
type Snapshot struct {
	RunID       string      `json:"run_id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Site        *SiteExport `json:"site,omitempty"`
	Frame       string      `json:"frame"`
	AxisNames   [2]string   `json:"axis_names"`
	Rows        []Row       `json:"rows"`
}

// SiteExport is a JSON-friendly observer site.
type SiteExport struct {
	Name   string  `json:"name,omitempty"`
	LatDeg float64 `json:"latitude_deg"`
	LonDeg float64 `json:"longitude_deg"`
	ElevM  float64 `json:"elevation_m,omitempty"`
}

// Row is one resolved position. Angles is keyed by the frame's axis
// names ("ra"/"dec", "l"/"b", "az"/"alt"), not fixed field names.
type Row struct {
	Target      string             `json:"target"`
	Kind        string             `json:"kind"`
	Marker      string             `json:"marker,omitempty"`
	Time        *time.Time         `json:"time,omitempty"`
	Angles      map[string]float64 `json:"angles"`
	DistanceKm  *float64           `json:"distance_km,omitempty"`
	DriftWindow string             `json:"drift_window,omitempty"`
}

// Build assembles a snapshot from the pairing and the resolved sequence.
// The two must come from the same Resolve call, so their lengths match.
func Build(pairs []target.Pair, seq astro.Sequence, obs *astro.Observer) *Snapshot {
	lonName, latName := seq.AxisNames()

	snap := &Snapshot{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Frame:       seq.Frame.Name(),
		AxisNames:   [2]string{lonName, latName},
	}
	if obs != nil {
		snap.Site = &SiteExport{
			Name:   obs.Name,
			LatDeg: obs.LatDeg,
			LonDeg: obs.LonDeg,
			ElevM:  obs.ElevM,
		}
	}

	for i, p := range pairs {
		if i >= seq.Len() {
			break
		}

		row := Row{
			Target: displayName(p.Target),
			Kind:   kindOf(p.Target),
			Marker: p.Target.Marker(),
			Angles: map[string]float64{
				lonName: seq.LonDeg[i],
				latName: seq.LatDeg[i],
			},
		}
		if p.HasTime {
			t := p.Time
			row.Time = &t
		}
		if seq.DistKm != nil {
			d := seq.DistKm[i]
			row.DistanceKm = &d
		}
		if ss, ok := p.Target.(target.SolarSystemTarget); ok {
			if flag, ok := target.FlagFor(ss.Body()); ok {
				row.DriftWindow = flag.ApproxSiderealDrift().String()
			}
		}

		snap.Rows = append(snap.Rows, row)
	}

	return snap
}

// WriteJSON writes the snapshot as JSON to the given writer.
func (s *Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteTable writes a text table to the given writer.
func (s *Snapshot) WriteTable(w io.Writer) {
	lonName, latName := s.AxisNames[0], s.AxisNames[1]

	fmt.Fprintf(w, "Resolved positions (%s) @ %s\n", s.Frame, s.GeneratedAt.Format(time.RFC3339))
	if s.Site != nil {
		fmt.Fprintf(w, "Site: %s (%.4f, %.4f)\n", s.Site.Name, s.Site.LatDeg, s.Site.LonDeg)
	}
	fmt.Fprintln(w, strings.Repeat("─", 86))

	if len(s.Rows) == 0 {
		fmt.Fprintln(w, "No targets resolved")
		return
	}

	fmt.Fprintf(w, "%-20s %-18s %12s %12s %-12s %-8s\n",
		"Target", "Kind", lonName, latName, "Distance", "Drift")
	fmt.Fprintln(w, strings.Repeat("─", 86))

	for _, r := range s.Rows {
		dist := "-"
		if r.DistanceKm != nil {
			dist = FormatDistance(*r.DistanceKm)
		}
		drift := "-"
		if r.DriftWindow != "" {
			drift = r.DriftWindow
		}
		fmt.Fprintf(w, "%-20s %-18s %12.6f %12.6f %-12s %-8s\n",
			truncateStr(r.Target, 20),
			r.Kind,
			r.Angles[lonName],
			r.Angles[latName],
			dist,
			drift,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d positions\n", len(s.Rows))
}

// displayName names a target for output, falling back to its kind.
func displayName(t target.Target) string {
	if name := t.Name(); name != "" {
		return name
	}
	return "(" + kindOf(t) + ")"
}

// kindOf returns a short kind label for a target.
func kindOf(t target.Target) string {
	switch t.(type) {
	case target.FixedTarget:
		return "fixed"
	case target.NonFixedTarget:
		return "non-fixed"
	case target.ConstantElevationTarget:
		return "constant-elevation"
	case target.SolarSystemTarget:
		return "solar-system"
	case target.CoordTarget:
		return "coordinate"
	default:
		return "unknown"
	}
}

// FormatDistance renders a distance with a unit fitting its scale.
func FormatDistance(km float64) string {
	pc := km / astro.ParsecKm
	if pc >= 1000 {
		return fmt.Sprintf("%.1f kpc", pc/1000)
	}
	if pc >= 0.1 {
		return fmt.Sprintf("%.1f pc", pc)
	}
	au := astro.KmToAU(km)
	if au >= 0.01 {
		return fmt.Sprintf("%.3f AU", au)
	}
	return fmt.Sprintf("%.0f km", km)
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
