package rules

import (
	"strconv"
	"strings"

	. "github.com/cricklet/minimax/internal/helpers"
)

func HalfmoveClock(fen string) int {
	fields := strings.Fields(fen)
	if len(fields) < 5 {
		return 0
	}
	clock, err := strconv.Atoi(fields[4])
	if err != nil {
		return 0
	}
	return clock
}

// History counts repeated positions along the current line of play.
type History struct {
	keys   []uint64
	counts map[uint64]int
}

func NewHistory() *History {
	return &History{counts: map[uint64]int{}}
}

func (h *History) Push(key uint64) int {
	h.keys = append(h.keys, key)
	h.counts[key]++
	return h.counts[key]
}

func (h *History) Pop() {
	if len(h.keys) == 0 {
		return
	}
	key := h.keys[len(h.keys)-1]
	h.keys = h.keys[:len(h.keys)-1]
	h.counts[key]--
	if h.counts[key] == 0 {
		delete(h.counts, key)
	}
}

func (h *History) Current() int {
	if len(h.keys) == 0 {
		return 0
	}
	return h.counts[h.keys[len(h.keys)-1]]
}

func (h *History) Len() int {
	return len(h.keys)
}

// DrawStatus applies the draw rules shared by every backend, given the
// current halfmove clock and the position's history.
func DrawStatus(b Board, halfmoveClock int, history *History) Status {
	if halfmoveClock >= 100 {
		return FiftyMoveRule
	}
	if history.Current() >= 3 {
		return ThreefoldRepetition
	}
	if HasInsufficientMaterial(b) {
		return InsufficientMaterial
	}
	return Ongoing
}

// MalformedFens are well shaped boards whose remaining fields are broken.
// Every backend must reject them.
var MalformedFens = []string{
	"4k3/8/8/8/8/8/8/4K3 w - zz 0 1",
	"4k3/8/8/8/8/8/8/4K3 w - e9 0 1",
	"4k3/8/8/8/8/8/8/4K3 w - e4 0 1",
	"4k3/8/8/8/8/8/8/4K3 w XYZ - 0 1",
	"4k3/8/8/8/8/8/8/4K3 w KK - 0 1",
	"4k3/8/8/8/8/8/8/4K3 w - - abc 1",
	"4k3/8/8/8/8/8/8/4K3 w - - -1 1",
	"4k3/8/8/8/8/8/8/4K3 w - - 0 x",
}

// NormalizeFen checks the shape of a FEN string (eight ranks of eight
// squares, one king per side, every field well formed) and fills in missing
// trailing fields so every backend sees a six field string.
func NormalizeFen(fen string) (string, Error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 || len(fields) > 6 {
		return "", Errorf("fen %q: expected 2 to 6 fields, got %v", fen, len(fields))
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return "", Errorf("fen %q: expected 8 ranks, got %v", fen, len(ranks))
	}
	kings := map[rune]int{}
	for _, rank := range ranks {
		width := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				width += int(c - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", c):
				width++
				if c == 'k' || c == 'K' {
					kings[c]++
				}
			default:
				return "", Errorf("fen %q: invalid piece %q", fen, c)
			}
		}
		if width != 8 {
			return "", Errorf("fen %q: rank %q has %v squares", fen, rank, width)
		}
	}
	if kings['K'] != 1 || kings['k'] != 1 {
		return "", Errorf("fen %q: expected one king per side", fen)
	}

	if fields[1] != "w" && fields[1] != "b" {
		return "", Errorf("fen %q: invalid side to move %q", fen, fields[1])
	}

	defaults := []string{"", "", "-", "-", "0", "1"}
	for len(fields) < 6 {
		fields = append(fields, defaults[len(fields)])
	}

	if err := checkCastlingRights(fields[2]); !IsNil(err) {
		return "", Join(Errorf("fen %q", fen), err)
	}
	if err := checkEnPassant(fields[3]); !IsNil(err) {
		return "", Join(Errorf("fen %q", fen), err)
	}
	if err := checkClock("halfmove clock", fields[4]); !IsNil(err) {
		return "", Join(Errorf("fen %q", fen), err)
	}
	if err := checkClock("fullmove number", fields[5]); !IsNil(err) {
		return "", Join(Errorf("fen %q", fen), err)
	}
	return strings.Join(fields, " "), NilError
}

// checkCastlingRights accepts "-" or each of KQkq at most once in that order.
func checkCastlingRights(rights string) Error {
	if rights == "-" {
		return NilError
	}
	remaining := _castlingLetters
	for _, c := range rights {
		i := strings.IndexRune(remaining, c)
		if i < 0 {
			return Errorf("invalid castling rights %q", rights)
		}
		remaining = remaining[i+1:]
	}
	return NilError
}

// checkEnPassant accepts "-" or a square on the third or sixth rank.
func checkEnPassant(field string) Error {
	if field == "-" {
		return NilError
	}
	square, err := SquareFromString(field)
	if !IsNil(err) {
		return Join(Errorf("invalid en passant square %q", field), err)
	}
	if square.Rank() != 2 && square.Rank() != 5 {
		return Errorf("en passant square %q is not on rank 3 or 6", field)
	}
	return NilError
}

func checkClock(name string, field string) Error {
	value, err := strconv.Atoi(field)
	if err != nil || value < 0 {
		return Errorf("invalid %v %q", name, field)
	}
	return NilError
}
