// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - CUE-validated target config, JSON snapshot export, watch mode
// 0.2.0 - Sesame name resolution with offline catalog fallback, cached Horizons ephemeris
// 0.1.0 - Initial release: fixed/solar-system/scan targets, batch coordinate resolution, TUI table
