package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	chars := []byte{'p', 'n', 'b', 'r', 'q', 'k', ' '}
	if pt > NoPieceType {
		return ' '
	}
	return chars[pt]
}

// PieceValue returns the material value of the piece type in centipawns.
var PieceValue = [7]int{100, 320, 330, 500, 900, 20000, 0}

// Piece packs a PieceType into the low 3 bits and a side into bit 3:
// pawn=0, knight=1, bishop=2, rook=3, queen=4, king=5; bit 3 set means black.
// The value 15 is reserved for "no piece" so ToWhite/Side/FlipSide stay cheap
// bit-ops without a separate sentinel check at every call site.
type Piece uint8

const (
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)
	BlackPawn   Piece = Piece(Pawn) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackBishop Piece = Piece(Bishop) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackQueen  Piece = Piece(Queen) | 8
	BlackKing   Piece = Piece(King) | 8
	NoPiece     Piece = 15
)

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) | Piece(c)<<3
}

// ToWhite strips the side bit, folding a piece onto its white-side value.
func (p Piece) ToWhite() Piece {
	return p & 7
}

// Side returns the side bit: 0 for white, 1 for black.
func (p Piece) Side() Color {
	return Color(p >> 3)
}

// FlipSide toggles the side bit, turning a white piece black or vice versa.
func (p Piece) FlipSide() Piece {
	return p ^ 8
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p == NoPiece {
		return NoPieceType
	}
	return PieceType(p & 7)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p == NoPiece {
		return NoColor
	}
	return p.Side()
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p == NoPiece || p.Type() == NoPieceType {
		return " "
	}
	chars := "PNBRQK"
	c := chars[p.Type()]
	if p.Color() == Black {
		c += 'a' - 'A'
	}
	return string(c)
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// Value returns the material value of the piece in centipawns.
func (p Piece) Value() int {
	return PieceValue[p.Type()]
}
