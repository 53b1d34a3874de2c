// Package move implements the cube's move algebra: the eighteen face turns,
// their string notation, and inversion.
package move

import (
	"errors"
	"strings"
)

// ErrParseMove is returned when a notation token is not one of the eighteen
// legal moves.
var ErrParseMove = errors.New("cubesolver: invalid move notation")

// Face identifies one of the six faces of the cube.
type Face uint8

const (
	FaceU Face = iota
	FaceD
	FaceF
	FaceB
	FaceL
	FaceR
)

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceL:
		return "L"
	case FaceR:
		return "R"
	default:
		return "?"
	}
}

// Amount identifies the magnitude of a turn: a quarter turn clockwise, a
// quarter turn counter-clockwise, or a half turn. This order matches the
// move enum below (U, U', U2) so Amount(int(m)%3) is a direct cast.
type Amount uint8

const (
	Clockwise Amount = iota
	CounterClockwise
	Half
)

// Move is one of the eighteen face turns, encoded densely as face*3+amount
// so it can index directly into move and pruning tables. None is the
// sentinel "no previous move" value and must never appear in solution
// output.
type Move uint8

const (
	U Move = iota
	UPrime
	U2
	D
	DPrime
	D2
	F
	FPrime
	F2
	B
	BPrime
	B2
	L
	LPrime
	L2
	R
	RPrime
	R2

	// Count is the number of legal moves.
	Count = 18

	// None is the sentinel "no previous move" value.
	None Move = 255
)

var allNotation = [Count]string{
	"U", "U'", "U2",
	"D", "D'", "D2",
	"F", "F'", "F2",
	"B", "B'", "B2",
	"L", "L'", "L2",
	"R", "R'", "R2",
}

// All enumerates the eighteen legal moves in enum order.
var All = [Count]Move{U, UPrime, U2, D, DPrime, D2, F, FPrime, F2, B, BPrime, B2, L, LPrime, L2, R, RPrime, R2}

// Face returns the face this move turns.
func (m Move) Face() Face {
	return Face(int(m) / 3)
}

// Amount returns the magnitude of this move.
func (m Move) Amount() Amount {
	return Amount(int(m) % 3)
}

// Invert returns the move that undoes m: clockwise and counter-clockwise
// swap, half turns are their own inverse.
func (m Move) Invert() Move {
	base := int(m) / 3 * 3
	amount := int(m) % 3
	if amount == 2 {
		return Move(base + 2)
	}
	return Move(base + (1 - amount))
}

// String returns the standard notation for m, e.g. "R", "R'", "R2". The
// None sentinel renders as the empty string.
func (m Move) String() string {
	if m == None {
		return ""
	}
	if int(m) >= Count {
		return "?"
	}
	return allNotation[m]
}

// ParseMove parses a single notation token such as "R", "R'", or "R2".
func ParseMove(s string) (Move, error) {
	for i, n := range allNotation {
		if n == s {
			return Move(i), nil
		}
	}
	return None, ErrParseMove
}

// ParseSequence parses a whitespace-separated sequence of move tokens.
// Empty tokens (repeated whitespace) are skipped. The first unparseable
// token fails the whole sequence with ErrParseMove.
func ParseSequence(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, tok := range fields {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatSequence renders a move list as space-separated notation. Any
// None sentinel in the list is dropped rather than rendered.
func FormatSequence(moves []Move) string {
	parts := make([]string, 0, len(moves))
	for _, m := range moves {
		if m == None {
			continue
		}
		parts = append(parts, m.String())
	}
	return strings.Join(parts, " ")
}
