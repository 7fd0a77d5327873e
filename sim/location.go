// Defines the grid Location value type and the Manhattan distance metric
// used for all travel time computations in the simulation.

package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is a position on the two-dimensional simulation grid.
// Locations are immutable values; equality is component-wise.
type Location struct {
	Row int
	Col int
}

// NewLocation creates a Location at the given grid coordinates.
func NewLocation(row, col int) Location {
	return Location{Row: row, Col: col}
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.Row, l.Col)
}

// ManhattanDistance returns |Δrow| + |Δcol| between two locations.
// Always a non-negative integer, and symmetric in its arguments.
func ManhattanDistance(a, b Location) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// ParseLocation parses a location serialized as "row,col".
func ParseLocation(s string) (Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Location{}, fmt.Errorf("invalid location %q: want \"row,col\"", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Location{}, fmt.Errorf("invalid location %q: bad row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Location{}, fmt.Errorf("invalid location %q: bad column: %w", s, err)
	}
	return Location{Row: row, Col: col}, nil
}
