package blocks

import "github.com/ctrlsworld/arcade/internal/core"

// PieceType identifies one of the seven canonical tetromino shapes.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
	PieceTypeCount // Sentinel for counting types
)

// String returns the canonical one-letter name of the piece type.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

// pieceTemplate is the immutable description of a piece type: its occupancy
// matrix at rotation 0 plus display attributes. Looked up by PieceType tag.
type pieceTemplate struct {
	shape [][]bool
	color core.Color
	glyph rune
}

var pieceTemplates = [PieceTypeCount]pieceTemplate{
	PieceI: {
		shape: [][]bool{
			{false, false, false, false},
			{true, true, true, true},
			{false, false, false, false},
			{false, false, false, false},
		},
		color: core.ColorCyan,
		glyph: '█',
	},
	PieceO: {
		shape: [][]bool{
			{true, true},
			{true, true},
		},
		color: core.ColorYellow,
		glyph: '█',
	},
	PieceT: {
		shape: [][]bool{
			{false, true, false},
			{true, true, true},
			{false, false, false},
		},
		color: core.ColorMagenta,
		glyph: '█',
	},
	PieceS: {
		shape: [][]bool{
			{false, true, true},
			{true, true, false},
			{false, false, false},
		},
		color: core.ColorGreen,
		glyph: '▓',
	},
	PieceZ: {
		shape: [][]bool{
			{true, true, false},
			{false, true, true},
			{false, false, false},
		},
		color: core.ColorRed,
		glyph: '▓',
	},
	PieceJ: {
		shape: [][]bool{
			{true, false, false},
			{true, true, true},
			{false, false, false},
		},
		color: core.ColorBlue,
		glyph: '▒',
	},
	PieceL: {
		shape: [][]bool{
			{false, false, true},
			{true, true, true},
			{false, false, false},
		},
		color: core.ColorOrange,
		glyph: '▒',
	},
}

// Color returns the fill color for the piece type.
func (t PieceType) Color() core.Color {
	if t < 0 || t >= PieceTypeCount {
		return core.ColorDefault
	}
	return pieceTemplates[t].color
}

// Glyph returns the display rune for the piece type.
func (t PieceType) Glyph() rune {
	if t < 0 || t >= PieceTypeCount {
		return '?'
	}
	return pieceTemplates[t].glyph
}

// Piece is an active falling tetromino: a type tag, a square occupancy
// matrix mutated by rotation, a grid-relative anchor (top-left of the
// matrix), and a rotation index.
type Piece struct {
	Type  PieceType
	Shape [][]bool
	Col   int
	Row   int
	Rot   int // 0..3, advances only on successful rotation
}

// NewPiece creates a piece of the given type at its spawn position:
// horizontally centered at row 0, rotation 0.
func NewPiece(t PieceType) *Piece {
	tmpl := pieceTemplates[t]
	shape := make([][]bool, len(tmpl.shape))
	for i := range tmpl.shape {
		shape[i] = make([]bool, len(tmpl.shape[i]))
		copy(shape[i], tmpl.shape[i])
	}
	return &Piece{
		Type:  t,
		Shape: shape,
		Col:   (GridWidth - len(shape)) / 2,
		Row:   0,
		Rot:   0,
	}
}

// Size returns the side length of the piece's bounding matrix.
func (p *Piece) Size() int {
	return len(p.Shape)
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	shape := make([][]bool, len(p.Shape))
	for i := range p.Shape {
		shape[i] = make([]bool, len(p.Shape[i]))
		copy(shape[i], p.Shape[i])
	}
	return &Piece{Type: p.Type, Shape: shape, Col: p.Col, Row: p.Row, Rot: p.Rot}
}

// Equal reports whether two pieces have identical type, position, rotation
// and occupancy.
func (p *Piece) Equal(other *Piece) bool {
	if p.Type != other.Type || p.Col != other.Col || p.Row != other.Row || p.Rot != other.Rot {
		return false
	}
	if len(p.Shape) != len(other.Shape) {
		return false
	}
	for r := range p.Shape {
		for c := range p.Shape[r] {
			if p.Shape[r][c] != other.Shape[r][c] {
				return false
			}
		}
	}
	return true
}

// rotatedCW returns a new occupancy matrix rotated 90 degrees clockwise.
func rotatedCW(shape [][]bool) [][]bool {
	n := len(shape)
	out := make([][]bool, n)
	for r := range out {
		out[r] = make([]bool, n)
		for c := range out[r] {
			out[r][c] = shape[n-1-c][r]
		}
	}
	return out
}

// rotatedCCW returns a new occupancy matrix rotated 90 degrees counterclockwise.
func rotatedCCW(shape [][]bool) [][]bool {
	n := len(shape)
	out := make([][]bool, n)
	for r := range out {
		out[r] = make([]bool, n)
		for c := range out[r] {
			out[r][c] = shape[c][n-1-r]
		}
	}
	return out
}
