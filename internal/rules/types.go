package rules

import (
	"strings"

	. "github.com/cricklet/minimax/internal/helpers"
)

const StartingFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type Color uint

const (
	White Color = iota
	Black
)

var _colorStrings = [2]string{
	"white", "black",
}

func (c Color) String() string {
	return _colorStrings[c]
}

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceKind uint

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

func (k PieceKind) String() string {
	return [NumPieceKinds]string{
		"p", "n", "b", "r", "q", "k",
	}[k]
}

type Piece struct {
	Kind  PieceKind
	Color Color
}

// String is the FEN letter: upper case for white.
func (p Piece) String() string {
	if p.Color == White {
		return strings.ToUpper(p.Kind.String())
	}
	return p.Kind.String()
}

type File uint
type Rank uint

func (f File) String() string {
	return [8]string{
		"a", "b", "c", "d", "e", "f", "g", "h",
	}[f]
}
func (r Rank) String() string {
	return [8]string{
		"1", "2", "3", "4", "5", "6", "7", "8",
	}[r]
}

// Square indexes the board from a1 = 0 to h8 = 63.
type Square uint

const NumSquares = 64

func SquareAt(file File, rank Rank) Square {
	return Square(uint(rank)*8 + uint(file))
}

func (s Square) File() File {
	return File(s % 8)
}

func (s Square) Rank() Rank {
	return Rank(s / 8)
}

func (s Square) String() string {
	return s.File().String() + s.Rank().String()
}

// Mirror flips the square vertically, a1 <-> a8.
func (s Square) Mirror() Square {
	return SquareAt(s.File(), 7-s.Rank())
}

// IsLight reports whether the square is a light square (h1 is light).
func (s Square) IsLight() bool {
	return (uint(s.File())+uint(s.Rank()))%2 == 1
}

func SquareFromString(s string) (Square, Error) {
	if len(s) != 2 {
		return 0, Errorf("invalid square %v", s)
	}
	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'
	if file < 0 || file >= 8 || rank < 0 || rank >= 8 {
		return 0, Errorf("invalid square %v", s)
	}
	return SquareAt(File(file), Rank(rank)), NilError
}

// Move is an opaque token produced by a Position's LegalMoves. Its String is
// the UCI text of the move (e.g. "e2e4", "e7e8q").
type Move interface {
	String() string
}

type Status uint

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	ThreefoldRepetition
	InsufficientMaterial
)

func (s Status) String() string {
	return [6]string{
		"ongoing",
		"checkmate",
		"stalemate",
		"fifty move rule",
		"threefold repetition",
		"insufficient material",
	}[s]
}

func (s Status) IsTerminal() bool {
	return s != Ongoing
}

func (s Status) IsDraw() bool {
	return s.IsTerminal() && s != Checkmate
}

type Board interface {
	PieceAt(square Square) (Piece, bool)
}

// Position is a single mutable game state. Apply and Undo form a strict stack:
// every Undo reverts the most recent Apply, restoring the position exactly.
type Position interface {
	Board

	SideToMove() Color

	// LegalMoves is deterministic for a given position. The returned tokens
	// are only valid for Apply while the position is at the node that
	// produced them.
	LegalMoves() []Move

	Apply(move Move) Error
	Undo() Error

	Status() Status
	IsTerminal() bool

	Fen() string
}

type Backend interface {
	Name() string
	NewPosition(fen string) (Position, Error)
}
