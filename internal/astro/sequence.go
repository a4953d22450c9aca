package astro

// Sequence is a column-ordered batch of sky positions sharing a single frame.
// The angle slices always have equal length. DistKm is nil when no entry
// carries a distance, otherwise it is parallel to the angle columns.
type Sequence struct {
	Frame  Frame
	LonDeg []float64
	LatDeg []float64
	DistKm []float64
}

// Len returns the number of positions in the sequence.
func (s Sequence) Len() int {
	return len(s.LonDeg)
}

// At returns the i-th position as a Coord.
func (s Sequence) At(i int) Coord {
	c := Coord{Frame: s.Frame, LonDeg: s.LonDeg[i], LatDeg: s.LatDeg[i]}
	if s.DistKm != nil {
		c.DistKm = s.DistKm[i]
		c.HasDist = true
	}
	return c
}

// AxisNames returns the angle labels of the sequence frame.
func (s Sequence) AxisNames() (lon, lat string) {
	return s.Frame.AxisNames()
}

// Append adds one position to the sequence. Distances must be supplied
// consistently: either every call carries one or none does.
func (s *Sequence) Append(c Coord) {
	s.LonDeg = append(s.LonDeg, c.LonDeg)
	s.LatDeg = append(s.LatDeg, c.LatDeg)
	if c.HasDist {
		s.DistKm = append(s.DistKm, c.DistKm)
	}
}
