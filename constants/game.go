package constants

import "time"

// Gravity & Speed Curve
const (
	// InitialFallInterval is the time between automatic descents at game start
	InitialFallInterval = 500 * time.Millisecond

	// MinFallInterval is the floor below which clears stop accelerating the fall.
	// The check runs before multiplying, so the last reduction may land under it.
	MinFallInterval = 80 * time.Millisecond

	// SpeedUpFactor is applied to the fall interval once per line clear event
	SpeedUpFactor = 0.95
)
