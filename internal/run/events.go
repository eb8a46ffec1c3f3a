package run

import "github.com/vovakirdan/lane-jumper/internal/lane"

// Event is a notification sent from the controller to its listeners.
type Event interface {
	runEvent()
}

// PathReadyEvent is sent when a new run has generated its path.
// The presentation layer materializes one tile per solid index at index*TileSize.
type PathReadyEvent struct {
	Path     lane.Path
	TileSize float64
}

func (PathReadyEvent) runEvent() {}

// PositionChangedEvent is sent on every tick that moves the player.
type PositionChangedEvent struct {
	Offset float64 // Distance along the travel axis
}

func (PositionChangedEvent) runEvent() {}

// StepsChangedEvent carries the step counter shown to the player.
type StepsChangedEvent struct {
	Steps int
	Label string // Decimal form of Steps, ready for display
}

func (StepsChangedEvent) runEvent() {}

// StateChangedEvent is sent on every lifecycle transition.
type StateChangedEvent struct {
	From State
	To   State
}

func (StateChangedEvent) runEvent() {}

// RunEndedEvent is sent when a run leaves the Playing state.
type RunEndedEvent struct {
	Result Result
}

func (RunEndedEvent) runEvent() {}
