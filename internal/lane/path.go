// Package lane models the tile path a jumper run is played on and the
// procedural generator that produces it.
// It contains no external dependencies so generation stays pure and seedable.
package lane

import (
	"errors"
	"fmt"
	"strings"
)

// TileType is the kind of a single tile on the path.
type TileType uint8

const (
	Empty TileType = iota // Gap, landing here ends the run
	Solid                 // Safe tile
)

// String returns a human-readable name for the tile type.
func (t TileType) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Solid:
		return "Solid"
	default:
		return "Unknown"
	}
}

// Glyphs used by Path.String and ParsePath.
const (
	SolidGlyph = '#'
	EmptyGlyph = '_'
)

// Path validation errors.
var (
	ErrTooShort    = errors.New("lane: path shorter than two tiles")
	ErrUnsafeStart = errors.New("lane: first tile is not solid")
	ErrUnsafeEnd   = errors.New("lane: last tile is not solid")
	ErrDoubleGap   = errors.New("lane: two consecutive empty tiles")
)

// Path is the ordered sequence of tiles for one run. Index 0 is the start.
type Path []TileType

// Len returns the number of tiles.
func (p Path) Len() int {
	return len(p)
}

// At returns the tile at index i.
// Indices outside the path report Empty: there is nothing to stand on.
func (p Path) At(i int) TileType {
	if i < 0 || i >= len(p) {
		return Empty
	}
	return p[i]
}

// IsSolid reports whether index i holds a solid tile.
func (p Path) IsSolid(i int) bool {
	return p.At(i) == Solid
}

// Gaps returns the number of empty tiles.
func (p Path) Gaps() int {
	n := 0
	for _, t := range p {
		if t == Empty {
			n++
		}
	}
	return n
}

// Offsets returns the travel-axis offset of every solid tile, in tile order.
// Only solid tiles are materialized by a presentation layer; gaps are left blank.
func (p Path) Offsets(tileSize float64) []float64 {
	offsets := make([]float64, 0, len(p))
	for i, t := range p {
		if t == Solid {
			offsets = append(offsets, float64(i)*tileSize)
		}
	}
	return offsets
}

// Validate checks the safety invariants every generated path satisfies.
func (p Path) Validate() error {
	if len(p) < 2 {
		return ErrTooShort
	}
	if p[0] != Solid {
		return ErrUnsafeStart
	}
	if p[len(p)-1] != Solid {
		return ErrUnsafeEnd
	}
	for i := 1; i < len(p); i++ {
		if p[i-1] == Empty && p[i] == Empty {
			return fmt.Errorf("%w at index %d", ErrDoubleGap, i)
		}
	}
	return nil
}

// String renders the path as '#' for solid and '_' for empty tiles.
func (p Path) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, t := range p {
		if t == Solid {
			sb.WriteRune(SolidGlyph)
		} else {
			sb.WriteRune(EmptyGlyph)
		}
	}
	return sb.String()
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// ParsePath parses the '#'/'_' notation produced by Path.String.
// It does not validate the result; call Validate for that.
func ParsePath(s string) (Path, error) {
	p := make(Path, 0, len(s))
	for i, r := range s {
		switch r {
		case SolidGlyph:
			p = append(p, Solid)
		case EmptyGlyph:
			p = append(p, Empty)
		default:
			return nil, fmt.Errorf("lane: invalid tile %q at offset %d", r, i)
		}
	}
	return p, nil
}
