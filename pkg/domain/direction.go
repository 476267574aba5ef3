package domain

import "fmt"

// Direction is the move of the tape head after a write.
type Direction byte

const (
	// NoMove keeps the head on the current cell.
	NoMove Direction = 'N'
	// Left moves the head one cell to the left.
	Left Direction = 'L'
	// Right moves the head one cell to the right.
	Right Direction = 'R'
)

// ParseDirection decodes the single-letter form used by the rule grammar.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	case "N":
		return NoMove, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Valid reports whether d is one of the three known directions.
func (d Direction) Valid() bool {
	return d == Left || d == Right || d == NoMove
}

// String returns the grammar token (L, R or N).
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", byte(d))
	}
	return string(rune(d))
}

// Name returns the long, human readable form.
func (d Direction) Name() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case NoMove:
		return "NoMove"
	}
	return d.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, byte(d))
	}
	return []byte{byte(d)}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
