package media

// TimeRanges is an ordered list of [start, end) intervals in seconds.
type TimeRanges interface {
	Len() int
	Start(i int) float64
	End(i int) float64
}

// Range is a single interval.
type Range struct {
	Start float64
	End   float64
}

// Ranges is a slice-backed TimeRanges.
type Ranges []Range

var _ TimeRanges = Ranges(nil)

func (r Ranges) Len() int            { return len(r) }
func (r Ranges) Start(i int) float64 { return r[i].Start }
func (r Ranges) End(i int) float64   { return r[i].End }
