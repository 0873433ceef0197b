package overlap

// Band classifies a slot's coverage ratio for display. The mapping to colors
// or glyphs belongs to the presentation layer; the band itself is a pure
// function of (count, total) so every frontend classifies identically.
type Band int

const (
	BandNone Band = iota
	BandMinimal
	BandLow
	BandMedium
	BandHigh
	BandFull
)

func (b Band) String() string {
	switch b {
	case BandFull:
		return "full"
	case BandHigh:
		return "high"
	case BandMedium:
		return "medium"
	case BandLow:
		return "low"
	case BandMinimal:
		return "minimal"
	default:
		return "none"
	}
}

// Classify maps a slot's participation count to its coverage band. Bands are
// checked highest threshold first, each inclusive of its lower bound. A total
// of zero classifies as BandNone, same as a zero count.
func Classify(count, total int) Band {
	if total == 0 || count == 0 {
		return BandNone
	}
	ratio := float64(count) / float64(total)
	switch {
	case ratio == 1.0:
		return BandFull
	case ratio >= 0.75:
		return BandHigh
	case ratio >= 0.5:
		return BandMedium
	case ratio >= 0.25:
		return BandLow
	default:
		return BandMinimal
	}
}
