package run

import "fmt"

// State is the lifecycle state of a run.
type State int

const (
	StateIdle    State = iota // Setup/menu, waiting for Start
	StatePlaying              // Accepting moves
	StateEnded                // Terminal until Reset
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Outcome describes why a run left the Playing state.
type Outcome int

const (
	OutcomeNone      Outcome = iota // Run has not ended
	OutcomeFellInGap                // Landed on an empty tile
	OutcomeOvershot                 // Landed past the end of the path
	OutcomeFinished                 // Reached the end under FinishPolicyFinish
	OutcomeStopped                  // Stopped explicitly
)

// String returns a short identifier, also used when persisting runs.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeFellInGap:
		return "fell"
	case OutcomeOvershot:
		return "overshot"
	case OutcomeFinished:
		return "finished"
	case OutcomeStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Message returns a player-facing description of the outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeFellInGap:
		return "You fell into a gap"
	case OutcomeOvershot:
		return "You ran off the end of the road"
	case OutcomeFinished:
		return "You reached the end of the road"
	case OutcomeStopped:
		return "Run stopped"
	default:
		return ""
	}
}

// FinishPolicy decides what reaching the end of the road means.
type FinishPolicy string

const (
	// FinishPolicyReset treats overshooting the road like falling: back to Idle.
	// Landing exactly on the last tile keeps the run going.
	FinishPolicyReset FinishPolicy = "reset"

	// FinishPolicyFinish ends the run as a win on the last tile or beyond.
	FinishPolicyFinish FinishPolicy = "finish"
)

// ParseFinishPolicy parses a policy name. Empty selects FinishPolicyReset.
func ParseFinishPolicy(s string) (FinishPolicy, error) {
	switch FinishPolicy(s) {
	case "", FinishPolicyReset:
		return FinishPolicyReset, nil
	case FinishPolicyFinish:
		return FinishPolicyFinish, nil
	default:
		return "", fmt.Errorf("run: unknown finish policy %q", s)
	}
}

// Result summarizes a completed run.
type Result struct {
	Outcome    Outcome
	Steps      int // Step counter at the end of the run
	RoadLength int
}

// Won reports whether the run ended by reaching the finish.
func (r Result) Won() bool {
	return r.Outcome == OutcomeFinished
}
