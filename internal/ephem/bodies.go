package ephem

// BodyKind classifies a supported solar system body.
type BodyKind int

const (
	KindSun BodyKind = iota
	KindMoon
	KindPlanet
)

// String returns the kind name.
func (k BodyKind) String() string {
	switch k {
	case KindSun:
		return "sun"
	case KindMoon:
		return "moon"
	case KindPlanet:
		return "planet"
	default:
		return "unknown"
	}
}

// BodyInfo describes a supported solar system body.
type BodyInfo struct {
	Name       string   // Canonical lowercase name (e.g. "mars")
	Display    string   // Display name (e.g. "Mars")
	HorizonsID int      // Horizons COMMAND code for the body center
	Kind       BodyKind
	Aliases    []string // Alternative names
}

// Bodies is the canonical list of supported bodies with their Horizons codes.
// Earth is deliberately absent: there is no geocentric position of Earth.
var Bodies = []BodyInfo{
	{Name: "sun", Display: "Sun", HorizonsID: 10, Kind: KindSun, Aliases: []string{"sol"}},
	{Name: "moon", Display: "Moon", HorizonsID: 301, Kind: KindMoon, Aliases: []string{"luna"}},
	{Name: "mercury", Display: "Mercury", HorizonsID: 199, Kind: KindPlanet},
	{Name: "venus", Display: "Venus", HorizonsID: 299, Kind: KindPlanet},
	{Name: "mars", Display: "Mars", HorizonsID: 499, Kind: KindPlanet},
	{Name: "jupiter", Display: "Jupiter", HorizonsID: 599, Kind: KindPlanet},
	{Name: "saturn", Display: "Saturn", HorizonsID: 699, Kind: KindPlanet},
	{Name: "uranus", Display: "Uranus", HorizonsID: 799, Kind: KindPlanet},
	{Name: "neptune", Display: "Neptune", HorizonsID: 899, Kind: KindPlanet},
}

// BodiesByName maps normalized names and aliases to body info.
var BodiesByName = func() map[string]BodyInfo {
	m := make(map[string]BodyInfo, len(Bodies)*2)
	for _, b := range Bodies {
		m[b.Name] = b
		for _, alias := range b.Aliases {
			m[normalizeBody(alias)] = b
		}
	}
	return m
}()

// normalizeBody converts a body name to lowercase for matching.
func normalizeBody(name string) string {
	// Simple lowercase, handles most cases
	result := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			c = c + ('a' - 'A')
		}
		result = append(result, c)
	}
	return string(result)
}

// BodyByName returns body info for a name (case-insensitive).
func BodyByName(name string) (BodyInfo, bool) {
	b, ok := BodiesByName[normalizeBody(name)]
	return b, ok
}
