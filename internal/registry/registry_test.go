package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/lane-jumper/internal/core"
)

type stubGame struct{ id, title string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func register(t *testing.T, id, title string) {
	t.Helper()
	Register(id, func() Game { return &stubGame{id: id, title: title} })
	t.Cleanup(func() { unregister(id) })
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "zz-stub", "Stub")

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title() = %q", g.Title())
	}

	other, _ := Create("zz-stub")
	if other == g {
		t.Error("Create() should return a fresh instance")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() = %v, expected ErrUnknownGame", err)
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	register(t, "zz-dup", "Dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}

func TestListSortedWithTitles(t *testing.T) {
	register(t, "zz-b", "Bravo")
	register(t, "zz-a", "Alpha")

	var seen []GameInfo
	for _, info := range List() {
		if info.ID == "zz-a" || info.ID == "zz-b" {
			seen = append(seen, info)
		}
	}

	if len(seen) != 2 || seen[0].ID != "zz-a" || seen[1].Title != "Bravo" {
		t.Errorf("List() = %+v", seen)
	}
	if Default() == "" {
		t.Error("Default() should not be empty with games registered")
	}
}
