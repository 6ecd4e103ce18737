package config

import (
	"encoding/json"
	"strings"

	. "github.com/cricklet/minimax/internal/helpers"
)

// Difficulty picks how deep the computer searches. None means the computer
// never moves.
type Difficulty int

const (
	None Difficulty = iota
	Easy
	Medium
	Hard
	Expert
)

var AllDifficulties = []Difficulty{None, Easy, Medium, Hard, Expert}

var _difficultyNames = []string{"none", "easy", "medium", "hard", "expert"}
var _difficultyLabels = []string{"Aucune", "Facile", "Moyen", "Difficile", "Expert"}

func (d Difficulty) valid() bool {
	return d >= None && d <= Expert
}

func (d Difficulty) Depth() int {
	if !d.valid() {
		return 0
	}
	return int(d)
}

func (d Difficulty) String() string {
	if !d.valid() {
		return "unknown"
	}
	return _difficultyNames[d]
}

func (d Difficulty) Label() string {
	if !d.valid() {
		return "?"
	}
	return _difficultyLabels[d]
}

// DifficultyFromString accepts the english name, the french label or the
// depth as a digit.
func DifficultyFromString(s string) (Difficulty, Error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range AllDifficulties {
		if s == d.String() || s == strings.ToLower(d.Label()) || s == string(rune('0'+d.Depth())) {
			return d, NilError
		}
	}
	return None, Errorf("unknown difficulty: %q", s)
}

func (d Difficulty) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var depth int
		if json.Unmarshal(data, &depth) != nil {
			return err
		}
		s = string(rune('0' + depth))
	}
	parsed, err := DifficultyFromString(s)
	if !IsNil(err) {
		return err
	}
	*d = parsed
	return nil
}

type GameType int

const (
	HumanVsAI GameType = iota
	AIVsAI
	Analysis
)

var _gameTypeNames = []string{"human-vs-ai", "ai-vs-ai", "analysis"}

func (g GameType) String() string {
	if g < HumanVsAI || g > Analysis {
		return "unknown"
	}
	return _gameTypeNames[g]
}

func GameTypeFromString(s string) (GameType, Error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range _gameTypeNames {
		if s == name {
			return GameType(i), NilError
		}
	}
	return HumanVsAI, Errorf("unknown game type: %q", s)
}
