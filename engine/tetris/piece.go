package tetris

import "termtris/types"

// Piece is a piece kind with its four offsets. Pieces are values; rotations
// return new pieces.
type Piece struct {
	kind    types.Cell
	offsets [4]Offset
}

// NewPiece returns a piece of the given kind in its spawn orientation.
func NewPiece(kind types.Cell) Piece {
	if !kind.Valid() {
		kind = types.Empty
	}
	return Piece{kind: kind, offsets: Offsets(kind)}
}

// NoPiece returns the no-shape piece.
func NoPiece() Piece {
	return NewPiece(types.Empty)
}

func (p Piece) Kind() types.Cell {
	return p.kind
}

func (p Piece) Offsets() [4]Offset {
	return p.offsets
}

// IsEmpty returns true for the no-shape piece.
func (p Piece) IsEmpty() bool {
	return p.kind == types.Empty
}

func (p Piece) MinX() int {
	m := p.offsets[0].DX
	for _, o := range p.offsets[1:] {
		m = min(m, o.DX)
	}
	return m
}

func (p Piece) MinY() int {
	m := p.offsets[0].DY
	for _, o := range p.offsets[1:] {
		m = min(m, o.DY)
	}
	return m
}

// RotateCW maps every offset (dx, dy) to (dy, -dx). The square is returned
// unchanged.
func (p Piece) RotateCW() Piece {
	if p.kind == types.O {
		return p
	}
	r := Piece{kind: p.kind}
	for i, o := range p.offsets {
		r.offsets[i] = Offset{DX: o.DY, DY: -o.DX}
	}
	return r
}

// RotateCCW maps every offset (dx, dy) to (-dy, dx). The square is returned
// unchanged.
func (p Piece) RotateCCW() Piece {
	if p.kind == types.O {
		return p
	}
	r := Piece{kind: p.kind}
	for i, o := range p.offsets {
		r.offsets[i] = Offset{DX: -o.DY, DY: o.DX}
	}
	return r
}

// Cells returns the absolute board cells of the piece anchored at (x, y).
// Board y grows upward while offset dy grows downward.
func (p Piece) Cells(x, y int) [4]types.CellPos {
	var cells [4]types.CellPos
	for i, o := range p.offsets {
		cells[i] = types.CellPos{X: x + o.DX, Y: y - o.DY, Kind: p.kind}
	}
	return cells
}
