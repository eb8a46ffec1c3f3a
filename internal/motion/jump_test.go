package motion

import (
	"errors"
	"testing"
)

// Durations are powers of two so tick sums are exact in float64.
func testConfig() Config {
	return Config{
		TileSize: 40,
		Durations: map[int]float64{
			StepOne: 0.25,
			StepTwo: 0.5,
		},
	}
}

func TestNewRequiresDurations(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"valid", testConfig(), nil},
		{"missing step two", Config{TileSize: 40, Durations: map[int]float64{1: 0.25}}, ErrNoDuration},
		{"zero duration", Config{TileSize: 40, Durations: map[int]float64{1: 0, 2: 0.5}}, ErrNoDuration},
		{"nil durations", Config{TileSize: 40}, ErrNoDuration},
		{"zero tile size", Config{TileSize: 0, Durations: map[int]float64{1: 0.25, 2: 0.5}}, ErrBadTileSize},
		{"extra step three", Config{TileSize: 40, Durations: map[int]float64{1: 0.25, 2: 0.5, 3: 0.5}}, ErrBadStep},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg)
			if !errors.Is(err, tc.want) {
				t.Errorf("New() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestBeginStepOneCompletesOnce(t *testing.T) {
	var completions []int
	j, err := New(testConfig(), WithCompleteHandler(func(index int) {
		completions = append(completions, index)
	}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	started, err := j.Begin(StepOne)
	if err != nil || !started {
		t.Fatalf("Begin(1) = %v, %v", started, err)
	}

	for i := 0; i < 4; i++ {
		j.Tick(0.0625)
	}
	// Elapsed now equals the duration exactly; that tick completes the jump.
	if len(completions) != 1 || j.InFlight() {
		t.Fatalf("after 4 ticks: completions=%v inFlight=%v, expected completion on the exact tick", completions, j.InFlight())
	}
	if j.Progress() != 0 {
		t.Errorf("Progress() = %v after landing, expected 0", j.Progress())
	}
	// Extra ticks after completion must not emit again.
	for i := 0; i < 10; i++ {
		j.Tick(0.0625)
	}

	if len(completions) != 1 {
		t.Fatalf("expected exactly 1 completion, got %d", len(completions))
	}
	if completions[0] != 1 {
		t.Errorf("completion index = %d, expected 1", completions[0])
	}
	if j.Position() != 40 {
		t.Errorf("Position() = %v, expected exactly 40", j.Position())
	}
	if j.InFlight() {
		t.Error("jump should not be in flight after completion")
	}
}

func TestTickSnapsWithoutDrift(t *testing.T) {
	cfg := Config{
		TileSize:  40,
		Durations: map[int]float64{StepOne: 0.1, StepTwo: 0.2},
	}
	j, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// 1/60 steps never sum exactly to the durations; position must still land on the grid.
	for n := 0; n < 5; n++ {
		j.Begin(StepOne)
		for j.InFlight() {
			j.Tick(1.0 / 60.0)
		}
		j.Begin(StepTwo)
		for j.InFlight() {
			j.Tick(1.0 / 60.0)
		}
	}

	if j.Index() != 15 {
		t.Errorf("Index() = %d, expected 15", j.Index())
	}
	if j.Position() != 600 {
		t.Errorf("Position() = %v, expected exactly 600", j.Position())
	}
}

func TestBeginDuringFlightIsNoOp(t *testing.T) {
	var completions []int
	j, _ := New(testConfig(), WithCompleteHandler(func(index int) {
		completions = append(completions, index)
	}))

	j.Begin(StepOne)
	j.Tick(0.125)

	started, err := j.Begin(StepTwo)
	if err != nil {
		t.Fatalf("Begin(2) during flight returned error: %v", err)
	}
	if started {
		t.Error("Begin(2) during flight should be ignored")
	}
	if j.Step() != StepOne {
		t.Errorf("Step() = %d, expected the original step 1", j.Step())
	}

	for i := 0; i < 20; i++ {
		j.Tick(0.125)
	}

	if len(completions) != 1 || completions[0] != 1 {
		t.Errorf("completions = %v, expected [1]", completions)
	}
	if j.Position() != 40 {
		t.Errorf("Position() = %v, expected 40", j.Position())
	}
}

func TestLinearInterpolation(t *testing.T) {
	var moves []float64
	j, _ := New(testConfig(), WithMoveHandler(func(p float64) {
		moves = append(moves, p)
	}))

	j.Begin(StepTwo) // 80 units over 0.5s = 160 units/s
	j.Tick(0.125)
	j.Tick(0.125)

	if j.Position() != 40 {
		t.Errorf("Position() after half the duration = %v, expected 40", j.Position())
	}
	if j.Progress() != 0.5 {
		t.Errorf("Progress() = %v, expected 0.5", j.Progress())
	}
	if len(moves) != 2 || moves[0] != 20 || moves[1] != 40 {
		t.Errorf("move updates = %v, expected [20 40]", moves)
	}
}

func TestNoCompletionWithoutBegin(t *testing.T) {
	called := false
	j, _ := New(testConfig(), WithCompleteHandler(func(int) { called = true }))

	for i := 0; i < 100; i++ {
		j.Tick(0.1)
	}

	if called {
		t.Error("completion emitted without Begin")
	}
	if j.Position() != 0 || j.Index() != 0 {
		t.Error("idle ticks should not move the jumper")
	}
}

func TestBeginUnknownStep(t *testing.T) {
	j, _ := New(testConfig())

	for _, step := range []int{-1, 0, 3} {
		started, err := j.Begin(step)
		if !errors.Is(err, ErrBadStep) {
			t.Errorf("Begin(%d) error = %v, expected ErrBadStep", step, err)
		}
		if started || j.InFlight() {
			t.Errorf("Begin(%d) should not start a jump", step)
		}
	}
}

func TestFinishLandsJumpInFlight(t *testing.T) {
	var completions []int
	var moves int
	j, _ := New(testConfig(),
		WithMoveHandler(func(float64) { moves++ }),
		WithCompleteHandler(func(index int) {
			completions = append(completions, index)
		}),
	)

	if j.Finish() {
		t.Error("Finish() without a jump should report false")
	}

	j.Begin(StepTwo)
	j.Tick(0.125)
	if !j.Finish() {
		t.Fatal("Finish() with a jump in flight should report true")
	}

	if len(completions) != 1 || completions[0] != 2 {
		t.Errorf("completions = %v, expected [2]", completions)
	}
	if j.Position() != 80 || j.Index() != 2 || j.InFlight() {
		t.Errorf("after Finish: pos=%v index=%d inFlight=%v", j.Position(), j.Index(), j.InFlight())
	}
	if moves != 2 {
		t.Errorf("move handler ran %d times, expected 2", moves)
	}

	for i := 0; i < 10; i++ {
		j.Tick(0.125)
	}
	if len(completions) != 1 {
		t.Errorf("completions after Finish = %v, expected no more", completions)
	}
}

func TestCompletionHandlerCanBeginNextJump(t *testing.T) {
	var j *Jump
	var completions []int
	j, _ = New(testConfig(), WithCompleteHandler(func(index int) {
		completions = append(completions, index)
		if index == 1 {
			j.Begin(StepOne)
		}
	}))

	j.Begin(StepOne)
	for i := 0; i < 8; i++ {
		j.Tick(0.125)
	}

	if len(completions) != 2 || completions[1] != 2 {
		t.Errorf("completions = %v, expected [1 2]", completions)
	}
}

func TestReset(t *testing.T) {
	j, _ := New(testConfig())
	j.Begin(StepTwo)
	j.Tick(0.5)
	j.Begin(StepOne)
	j.Tick(0.1)

	j.Reset()

	if j.InFlight() || j.Index() != 0 || j.Position() != 0 || j.Progress() != 0 {
		t.Errorf("Reset left state: inFlight=%v index=%d pos=%v", j.InFlight(), j.Index(), j.Position())
	}
}
