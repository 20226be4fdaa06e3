package model

import "fmt"

// QualityRange selects items whose quality lies within [Min, Max], both ends included.
type QualityRange struct {
	Min float64
	Max float64
}

func FullQualityRange() QualityRange {
	return QualityRange{Min: MinQuality, Max: MaxQuality}
}

func (r QualityRange) Validate() error {
	if !(r.Min >= MinQuality) || !(r.Max <= MaxQuality) || r.Min > r.Max {
		return fmt.Errorf("%w: [%.2f, %.2f]", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

func (r QualityRange) Contains(c Coffee) bool {
	return c.Quality >= r.Min && c.Quality <= r.Max
}

type LoadSummary struct {
	Items     int
	UsedKg    float64
	MaxVolume float64
}
