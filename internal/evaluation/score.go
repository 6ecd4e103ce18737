package evaluation

import (
	"strconv"
)

// Score is a fixed point evaluation, positive favouring white. One pawn is
// worth 10 units and a unit is Scale steps, so the tables can express
// half units exactly.
type Score int

const Scale = 10

func Units(units float64) Score {
	return Score(units * Scale)
}

func (s Score) Units() float64 {
	return float64(s) / Scale
}

func (s Score) String() string {
	return strconv.FormatFloat(s.Units(), 'f', -1, 64)
}
