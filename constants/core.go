package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameSleepInterval is the unconditional pause between two engine ticks
	FrameSleepInterval = 10 * time.Millisecond

	// InputQueueSize is the capacity of the key event channel between poller and loop
	InputQueueSize = 64
)

// Board Defaults
const (
	// DefaultGridWidth is the number of columns on the board
	DefaultGridWidth = 10

	// DefaultGridHeight is the number of rows on the board
	DefaultGridHeight = 20

	// SpawnX and SpawnY are the anchor every new piece starts at
	SpawnX = 3
	SpawnY = 0
)
