package lane

import (
	"errors"
	"math/rand"
	"testing"
)

// scriptedSource replays a fixed list of values, repeating the last one.
type scriptedSource struct {
	values []float64
	calls  int
}

func (s *scriptedSource) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	i := s.calls
	if i >= len(s.values) {
		i = len(s.values) - 1
	}
	s.calls++
	return s.values[i]
}

func TestGenerateLengthAndSafetyTiles(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for length := 2; length <= 200; length++ {
		p := Generate(length, rng)

		if p.Len() != length {
			t.Fatalf("Generate(%d) returned %d tiles", length, p.Len())
		}
		if p[0] != Solid {
			t.Errorf("Generate(%d): first tile is %v, expected Solid", length, p[0])
		}
		if p[length-1] != Solid {
			t.Errorf("Generate(%d): last tile is %v, expected Solid", length, p[length-1])
		}
	}
}

func TestGenerateNoConsecutiveGaps(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		p := Generate(50, rng)

		for i := 1; i < p.Len(); i++ {
			if p[i-1] == Empty && p[i] != Solid {
				t.Fatalf("seed %d: gap at %d followed by %v (path %s)", seed, i-1, p[i], p)
			}
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("seed %d: Validate() = %v for %s", seed, err, p)
		}
	}
}

func TestGenerateHighSourceIsAllSolid(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"exactly half", 0.5},
		{"above half", 0.75},
		{"just below one", 0.999999},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for n := 2; n <= 30; n++ {
				p := Generate(n, &scriptedSource{values: []float64{tc.value}})
				if p.Gaps() != 0 {
					t.Fatalf("Generate(%d) with source %v = %s, expected all solid", n, tc.value, p)
				}
			}
		})
	}
}

func TestGenerateLowSourceAlternates(t *testing.T) {
	p := Generate(7, &scriptedSource{values: []float64{0.1}})

	if got := p.String(); got != "#_#_#_#" {
		t.Errorf("Generate(7) with low source = %q, expected %q", got, "#_#_#_#")
	}
}

func TestGenerateConsultsSourceOncePerFreeTile(t *testing.T) {
	// Tile 1 draws 0.9 (solid), tile 2 draws 0.1 (gap), tile 3 is forced
	// solid without a draw, tile 4 draws 0.6 (solid), tile 5 is the end tile.
	src := &scriptedSource{values: []float64{0.9, 0.1, 0.6}}
	p := Generate(6, src)

	if got := p.String(); got != "##_###" {
		t.Errorf("Generate(6) = %q, expected %q", got, "##_###")
	}
	if src.calls != 3 {
		t.Errorf("source consulted %d times, expected 3", src.calls)
	}
}

func TestGenerateScriptedScenarioPath(t *testing.T) {
	src := &scriptedSource{values: []float64{0.9, 0.1}}
	p := Generate(5, src)

	expected := Path{Solid, Solid, Empty, Solid, Solid}
	if p.String() != expected.String() {
		t.Errorf("Generate(5) = %s, expected %s", p, expected)
	}
}

func TestGenerateDegenerateLengths(t *testing.T) {
	for _, n := range []int{-3, 0, 1} {
		src := &scriptedSource{values: []float64{0.1}}
		p := Generate(n, src)

		if p.String() != "##" {
			t.Errorf("Generate(%d) = %s, expected the two safety tiles", n, p)
		}
		if src.calls != 0 {
			t.Errorf("Generate(%d) consulted the source %d times", n, src.calls)
		}
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a := Generate(50, rand.New(rand.NewSource(12345)))
	b := Generate(50, rand.New(rand.NewSource(12345)))

	if a.String() != b.String() {
		t.Errorf("same seed produced different paths:\n%s\n%s", a, b)
	}
}

func TestGeneratorEmptyChance(t *testing.T) {
	tests := []struct {
		name     string
		chance   float64
		expected string
	}{
		{"never", 0, "########"},
		{"negative clamps to never", -1, "########"},
		{"always", 1, "#_#_#_##"},
		{"above one clamps to always", 5, "#_#_#_##"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewGenerator(tc.chance).Generate(8, &scriptedSource{values: []float64{0.5}})
			if p.String() != tc.expected {
				t.Errorf("Generate = %s, expected %s", p, tc.expected)
			}
		})
	}
}

func TestPathValidate(t *testing.T) {
	tests := []struct {
		path     string
		expected error
	}{
		{"##", nil},
		{"#_#_##", nil},
		{"#", ErrTooShort},
		{"_##", ErrUnsafeStart},
		{"##_", ErrUnsafeEnd},
		{"#__#", ErrDoubleGap},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			p, err := ParsePath(tc.path)
			if err != nil {
				t.Fatalf("ParsePath(%q) failed: %v", tc.path, err)
			}
			err = p.Validate()
			if !errors.Is(err, tc.expected) {
				t.Errorf("Validate() = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestParsePathRejectsUnknownGlyph(t *testing.T) {
	if _, err := ParsePath("#x#"); err == nil {
		t.Error("ParsePath should reject unknown glyphs")
	}
}

func TestPathOffsets(t *testing.T) {
	p, _ := ParsePath("##_#")
	offsets := p.Offsets(40)

	expected := []float64{0, 40, 120}
	if len(offsets) != len(expected) {
		t.Fatalf("Offsets() = %v, expected %v", offsets, expected)
	}
	for i := range expected {
		if offsets[i] != expected[i] {
			t.Errorf("Offsets()[%d] = %v, expected %v", i, offsets[i], expected[i])
		}
	}
}

func TestPathAtOutOfRange(t *testing.T) {
	p := Path{Solid, Solid}

	if p.At(-1) != Empty || p.At(2) != Empty {
		t.Error("At() outside the path should report Empty")
	}
	if !p.IsSolid(1) {
		t.Error("IsSolid(1) should be true")
	}
}

func TestPathClone(t *testing.T) {
	p := Path{Solid, Empty, Solid}
	c := p.Clone()
	c[1] = Solid

	if p[1] != Empty {
		t.Error("Clone should not share storage with the original")
	}
}
