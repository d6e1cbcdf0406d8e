// Package board implements chess board representation using bitboards.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Square 0 is a8 and square 63 is h1: rank index runs top-down from
// White's perspective, so rank index increases as the board rank decreases.
type Square uint8

// Square constants for all 64 squares.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	NoSquare Square = 64
)

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank index of the square (0-7, where 0=rank 8, 7=rank 1).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '8'-sq.Rank())
}

// NewSquare creates a square from file and rank index (0-indexed, rank 0 = rank 8).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	file := int(s[0] - 'a')
	rank := 8 - int(s[1]-'0')

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(file, rank), nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Mirror returns the square mirrored vertically (for black's perspective).
// XOR 56 flips only the rank bits, so it is independent of which end of the
// index range rank 1 sits at.
func (sq Square) Mirror() Square {
	return sq ^ 56
}

// RelativeRank returns the rank from a given color's perspective.
// For White, relative rank 0 is the 1st rank; for Black, relative rank 0 is
// the 8th rank. Since rank index 0 is rank 8, White's relative rank is the
// complement of the raw rank index.
func (sq Square) RelativeRank(c Color) int {
	if c == White {
		return 7 - sq.Rank()
	}
	return sq.Rank()
}
