package lane

// DefaultEmptyChance is the probability of a gap on any tile that is not forced solid.
const DefaultEmptyChance = 0.5

// Source supplies uniformly distributed values in [0, 1).
// *math/rand.Rand satisfies it, so a seeded RNG pins the generated sequence.
type Source interface {
	Float64() float64
}

// Generator produces paths with a configurable gap probability.
type Generator struct {
	// EmptyChance is the probability that a free tile becomes a gap.
	// Values outside [0, 1] are clamped.
	EmptyChance float64
}

// NewGenerator creates a generator with the given gap probability.
func NewGenerator(emptyChance float64) Generator {
	return Generator{EmptyChance: emptyChance}
}

// Generate builds a path with the default 50/50 gap probability.
func Generate(length int, src Source) Path {
	return Generator{EmptyChance: DefaultEmptyChance}.Generate(length, src)
}

// Generate builds a path of the given length.
//
// Tile 0 and the last tile are always solid. A tile following a gap is forced
// solid, so a path never contains two consecutive gaps and every gap can be
// cleared with a two-tile jump. Every other tile draws exactly one value from
// src and becomes a gap when that value is below EmptyChance.
//
// Lengths below two degenerate to the two safety tiles.
func (g Generator) Generate(length int, src Source) Path {
	if length < 2 {
		return Path{Solid, Solid}
	}

	chance := clampChance(g.EmptyChance)

	p := make(Path, 0, length)
	p = append(p, Solid)
	for i := 1; i < length-1; i++ {
		if p[i-1] == Empty {
			p = append(p, Solid)
			continue
		}
		if src.Float64() < chance {
			p = append(p, Empty)
		} else {
			p = append(p, Solid)
		}
	}
	p = append(p, Solid)

	return p
}

// clampChance restricts a probability to [0, 1].
func clampChance(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
