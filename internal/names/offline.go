package names

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/litescript/ls-skyplan/internal/astro"
)

// Entry is one object in the built-in catalog.
type Entry struct {
	Name    string   // Canonical name (e.g., "Sirius", "M31")
	RADeg   float64  // Right Ascension in degrees (ICRS)
	DecDeg  float64  // Declination in degrees (ICRS)
	Mag     float64  // Apparent visual magnitude (lower = brighter)
	Aliases []string // Alternative names, matched case-insensitively
}

// builtinObjects lists bright stars and popular deep-sky objects so common
// lookups work without network access. The first-magnitude stars carry
// full Simbad precision; the rest are good to a few arcseconds, plenty
// for pointing a small telescope.
var builtinObjects = []Entry{
	// Magnitude < 0 (exceptionally bright)
	{Name: "Sirius", RADeg: 101.28715533, DecDeg: -16.71611586, Mag: -1.46, Aliases: []string{"Dog Star", "Alpha CMa"}},
	{Name: "Canopus", RADeg: 95.98795783, DecDeg: -52.69566138, Mag: -0.74},
	{Name: "Arcturus", RADeg: 213.91530030, DecDeg: 19.18240916, Mag: -0.05},
	{Name: "Vega", RADeg: 279.23473479, DecDeg: 38.78368896, Mag: 0.03, Aliases: []string{"Alpha Lyr"}},
	{Name: "Capella", RADeg: 79.17232794, DecDeg: 45.99799147, Mag: 0.08},
	{Name: "Rigel", RADeg: 78.63446707, DecDeg: -8.20163837, Mag: 0.13},
	{Name: "Procyon", RADeg: 114.82549791, DecDeg: 5.22498756, Mag: 0.34},
	{Name: "Achernar", RADeg: 24.42852283, DecDeg: -57.23675281, Mag: 0.46},
	{Name: "Betelgeuse", RADeg: 88.79293899, DecDeg: 7.40706399, Mag: 0.50, Aliases: []string{"Alpha Ori"}},
	{Name: "Hadar", RADeg: 210.956, DecDeg: -60.373, Mag: 0.61},

	// Magnitude 0.5-1.2
	{Name: "Altair", RADeg: 297.69582730, DecDeg: 8.86832120, Mag: 0.76},
	{Name: "Acrux", RADeg: 186.650, DecDeg: -63.099, Mag: 0.76},
	{Name: "Aldebaran", RADeg: 68.98016279, DecDeg: 16.50930235, Mag: 0.85},
	{Name: "Antares", RADeg: 247.35191542, DecDeg: -26.43200261, Mag: 0.96},
	{Name: "Spica", RADeg: 201.29824736, DecDeg: -11.16131949, Mag: 0.97},
	{Name: "Pollux", RADeg: 116.32895777, DecDeg: 28.02619889, Mag: 1.14},
	{Name: "Fomalhaut", RADeg: 344.41269272, DecDeg: -29.62223703, Mag: 1.16},

	// Magnitude 1.2-2.1
	{Name: "Deneb", RADeg: 310.35797975, DecDeg: 45.28033881, Mag: 1.25},
	{Name: "Mimosa", RADeg: 191.930, DecDeg: -59.689, Mag: 1.25},
	{Name: "Regulus", RADeg: 152.09296244, DecDeg: 11.96720878, Mag: 1.35},
	{Name: "Adhara", RADeg: 104.656, DecDeg: -28.972, Mag: 1.50},
	{Name: "Castor", RADeg: 113.650, DecDeg: 31.889, Mag: 1.58},
	{Name: "Gacrux", RADeg: 187.791, DecDeg: -57.113, Mag: 1.63},
	{Name: "Shaula", RADeg: 263.402, DecDeg: -37.104, Mag: 1.63},
	{Name: "Bellatrix", RADeg: 81.283, DecDeg: 6.350, Mag: 1.64},
	{Name: "Elnath", RADeg: 81.573, DecDeg: 28.608, Mag: 1.65},
	{Name: "Alnilam", RADeg: 84.053, DecDeg: -1.202, Mag: 1.69},
	{Name: "Alnitak", RADeg: 85.190, DecDeg: -1.943, Mag: 1.77},
	{Name: "Alioth", RADeg: 193.507, DecDeg: 55.960, Mag: 1.77},
	{Name: "Dubhe", RADeg: 165.932, DecDeg: 61.751, Mag: 1.79},
	{Name: "Mirfak", RADeg: 51.081, DecDeg: 49.861, Mag: 1.79},
	{Name: "Kaus Australis", RADeg: 276.043, DecDeg: -34.384, Mag: 1.85},
	{Name: "Alkaid", RADeg: 206.885, DecDeg: 49.313, Mag: 1.86},
	{Name: "Menkalinan", RADeg: 89.882, DecDeg: 44.948, Mag: 1.90},
	{Name: "Alhena", RADeg: 99.428, DecDeg: 16.399, Mag: 1.93},
	{Name: "Polaris", RADeg: 37.95456067, DecDeg: 89.26410897, Mag: 2.02, Aliases: []string{"North Star", "Alpha UMi"}},
	{Name: "Alphard", RADeg: 141.897, DecDeg: -8.659, Mag: 2.00},
	{Name: "Hamal", RADeg: 31.793, DecDeg: 23.463, Mag: 2.00},

	// Magnitude 2.1-2.7
	{Name: "Diphda", RADeg: 10.897, DecDeg: -17.987, Mag: 2.02},
	{Name: "Nunki", RADeg: 283.816, DecDeg: -26.297, Mag: 2.02},
	{Name: "Mizar", RADeg: 200.981, DecDeg: 54.925, Mag: 2.04},
	{Name: "Alpheratz", RADeg: 2.097, DecDeg: 29.091, Mag: 2.06},
	{Name: "Mirach", RADeg: 17.433, DecDeg: 35.621, Mag: 2.05},
	{Name: "Kochab", RADeg: 222.676, DecDeg: 74.156, Mag: 2.08},
	{Name: "Rasalhague", RADeg: 263.734, DecDeg: 12.560, Mag: 2.08},
	{Name: "Algol", RADeg: 47.042, DecDeg: 40.957, Mag: 2.12},
	{Name: "Denebola", RADeg: 177.265, DecDeg: 14.572, Mag: 2.13},
	{Name: "Alphecca", RADeg: 233.672, DecDeg: 26.715, Mag: 2.23},
	{Name: "Mintaka", RADeg: 83.002, DecDeg: -0.299, Mag: 2.23},
	{Name: "Sadr", RADeg: 305.557, DecDeg: 40.257, Mag: 2.23},
	{Name: "Eltanin", RADeg: 269.152, DecDeg: 51.489, Mag: 2.23},
	{Name: "Schedar", RADeg: 10.127, DecDeg: 56.537, Mag: 2.23},
	{Name: "Caph", RADeg: 2.295, DecDeg: 59.150, Mag: 2.27},
	{Name: "Dschubba", RADeg: 240.083, DecDeg: -22.622, Mag: 2.32},
	{Name: "Merak", RADeg: 165.460, DecDeg: 56.382, Mag: 2.37},
	{Name: "Izar", RADeg: 221.247, DecDeg: 27.074, Mag: 2.37},
	{Name: "Enif", RADeg: 326.046, DecDeg: 9.875, Mag: 2.39},
	{Name: "Phecda", RADeg: 178.458, DecDeg: 53.695, Mag: 2.44},
	{Name: "Scheat", RADeg: 345.944, DecDeg: 28.083, Mag: 2.42},
	{Name: "Alderamin", RADeg: 319.645, DecDeg: 62.586, Mag: 2.51},
	{Name: "Markab", RADeg: 346.190, DecDeg: 15.205, Mag: 2.49},
	{Name: "Gienah", RADeg: 183.952, DecDeg: -17.542, Mag: 2.59},
	{Name: "Unukalhai", RADeg: 236.067, DecDeg: 6.426, Mag: 2.65},

	// Magnitude 2.7-3.5
	{Name: "Zubenelgenubi", RADeg: 222.720, DecDeg: -16.042, Mag: 2.75},
	{Name: "Cursa", RADeg: 76.963, DecDeg: -5.086, Mag: 2.79},
	{Name: "Rastaban", RADeg: 262.608, DecDeg: 52.301, Mag: 2.79},
	{Name: "Cor Caroli", RADeg: 194.007, DecDeg: 38.318, Mag: 2.81},
	{Name: "Vindemiatrix", RADeg: 195.544, DecDeg: 10.959, Mag: 2.83},
	{Name: "Albireo", RADeg: 292.680, DecDeg: 27.960, Mag: 3.18},
	{Name: "Tarazed", RADeg: 296.565, DecDeg: 10.613, Mag: 2.72},
	{Name: "Megrez", RADeg: 183.857, DecDeg: 57.033, Mag: 3.31},
	{Name: "Thuban", RADeg: 211.097, DecDeg: 64.376, Mag: 3.65},

	// Deep-sky objects and exoplanet hosts
	{Name: "M31", RADeg: 10.68470833, DecDeg: 41.26875, Mag: 3.44, Aliases: []string{"Andromeda Galaxy", "NGC 224"}},
	{Name: "M33", RADeg: 23.46206906, DecDeg: 30.66017511, Mag: 5.72, Aliases: []string{"Triangulum Galaxy"}},
	{Name: "M42", RADeg: 83.82208, DecDeg: -5.39111, Mag: 4.00, Aliases: []string{"Orion Nebula", "NGC 1976"}},
	{Name: "M45", RADeg: 56.850, DecDeg: 24.117, Mag: 1.60, Aliases: []string{"Pleiades", "Seven Sisters"}},
	{Name: "M13", RADeg: 250.423475, DecDeg: 36.4613194, Mag: 5.80, Aliases: []string{"Hercules Cluster", "NGC 6205"}},
	{Name: "M51", RADeg: 202.46957, DecDeg: 47.19526, Mag: 8.40, Aliases: []string{"Whirlpool Galaxy"}},
	{Name: "M104", RADeg: 189.99763, DecDeg: -11.62305, Mag: 8.00, Aliases: []string{"Sombrero Galaxy"}},
	{Name: "HD 209458", RADeg: 330.794988, DecDeg: 18.884245, Mag: 7.65},
}

// TableResolver resolves names against the built-in object table. It
// never touches the network, so it works offline and makes a good
// fallback behind a SesameClient in a Chain.
type TableResolver struct {
	entries map[string]Entry
}

// NewTableResolver builds a resolver over the built-in catalog.
func NewTableResolver() *TableResolver {
	r := &TableResolver{
		entries: make(map[string]Entry, len(builtinObjects)*2),
	}
	for _, e := range builtinObjects {
		r.add(e)
	}
	return r
}

// Add registers an extra entry. Later additions override earlier ones
// with the same normalized name.
func (r *TableResolver) Add(e Entry) {
	r.add(e)
}

func (r *TableResolver) add(e Entry) {
	r.entries[normalizeName(e.Name)] = e
	for _, alias := range e.Aliases {
		r.entries[normalizeName(alias)] = e
	}
}

// Resolve implements Resolver.
func (r *TableResolver) Resolve(ctx context.Context, name string) (astro.Coord, error) {
	e, ok := r.Lookup(name)
	if !ok {
		return astro.Coord{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return astro.ICRSCoord(e.RADeg, e.DecDeg), nil
}

// Lookup returns the full catalog entry for a name, including magnitude.
func (r *TableResolver) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[normalizeName(name)]
	return e, ok
}

// Names returns the canonical names in the catalog, sorted.
func (r *TableResolver) Names() []string {
	seen := make(map[string]bool, len(r.entries))
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// normalizeName lowercases and collapses whitespace so "HD  209458" and
// "hd 209458" hit the same key.
func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
