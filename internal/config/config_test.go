package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyDepths(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, MapSlice(AllDifficulties, Difficulty.Depth))
	assert.Equal(t, "Facile", Easy.Label())
	assert.Equal(t, "expert", Expert.String())
	assert.Equal(t, 0, Difficulty(12).Depth())
}

func TestDifficultyFromString(t *testing.T) {
	for input, expected := range map[string]Difficulty{
		"easy":      Easy,
		"Facile":    Easy,
		"MOYEN":     Medium,
		" hard ":    Hard,
		"difficile": Hard,
		"4":         Expert,
		"aucune":    None,
		"0":         None,
	} {
		d, err := DifficultyFromString(input)
		assert.True(t, IsNil(err), err)
		assert.Equal(t, expected, d, input)
	}

	_, err := DifficultyFromString("impossible")
	assert.False(t, IsNil(err))
}

func TestDifficultyJSON(t *testing.T) {
	data, err := json.Marshal(struct{ D Difficulty }{Hard})
	require.NoError(t, err)
	assert.Equal(t, `{"D":"hard"}`, string(data))

	var parsed struct{ D Difficulty }
	require.NoError(t, json.Unmarshal([]byte(`{"D":"Moyen"}`), &parsed))
	assert.Equal(t, Medium, parsed.D)
	require.NoError(t, json.Unmarshal([]byte(`{"D":3}`), &parsed))
	assert.Equal(t, Hard, parsed.D)
	assert.Error(t, json.Unmarshal([]byte(`{"D":9}`), &parsed))
}

func TestGameType(t *testing.T) {
	g, err := GameTypeFromString("AI-vs-AI")
	assert.True(t, IsNil(err), err)
	assert.Equal(t, AIVsAI, g)
	assert.Equal(t, "analysis", Analysis.String())

	_, err = GameTypeFromString("online")
	assert.False(t, IsNil(err))
}

func TestDefaultIsValid(t *testing.T) {
	config := Default()
	assert.True(t, IsNil(config.Validate()))
	assert.Equal(t, "AlphaPawn", config.Model("2").Value().Name)
	assert.True(t, config.Model("7").IsEmpty())
}

func TestValidate(t *testing.T) {
	config := Default()
	config.Port = 0
	config.LogLevel = "loud"
	config.Models = append(config.Models, AIModel{ID: "1", Strength: 5000})

	err := config.Validate()
	assert.Equal(t, 4, err.NumErrors(), err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	config, err := Load(filepath.Join(dir, "missing.json"))
	assert.True(t, IsNil(err), err)
	assert.Equal(t, Default(), config)

	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"port": 9000,
		"backend": "dragontooth",
		"defaultDifficulty": "difficile"
	}`), 0600))

	config, err = Load(path)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, 9000, config.Port)
	assert.Equal(t, "dragontooth", config.Backend)
	assert.Equal(t, Hard, config.DefaultDifficulty)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, 3, len(config.Models))

	require.NoError(t, os.WriteFile(path, []byte(`{"port": `), 0600))
	_, err = Load(path)
	assert.False(t, IsNil(err))
}
