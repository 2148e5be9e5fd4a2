package normalizer

import "time"

// Clock provides times.
type Clock interface {
	// Timestamp returns current unix timestamp in seconds.
	Timestamp() float64
}

type systemClock struct{}

// Timestamp returns current unix timestamp in seconds.
func (c systemClock) Timestamp() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
