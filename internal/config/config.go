// Package config holds the difficulty levels, the computer opponents on
// offer and the settings the commands read at startup.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/rs/zerolog"
)

type AIModel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Strength is a simulated ELO rating.
	Strength   int        `json:"strength"`
	Difficulty Difficulty `json:"difficulty"`
	Endpoint   string     `json:"apiEndpoint,omitempty"`
}

type Config struct {
	Port              int        `json:"port"`
	Backend           string     `json:"backend"`
	DefaultDifficulty Difficulty `json:"defaultDifficulty"`
	LogLevel          string     `json:"logLevel"`
	Models            []AIModel  `json:"models"`
}

func DefaultModels() []AIModel {
	return []AIModel{
		{ID: "1", Name: "DeepChess", Description: "Modèle de niveau débutant", Strength: 800, Difficulty: Easy, Endpoint: "api/deepchess"},
		{ID: "2", Name: "AlphaPawn", Description: "Modèle intermédiaire", Strength: 1500, Difficulty: Medium, Endpoint: "api/alphapawn"},
		{ID: "3", Name: "MegaMate", Description: "Modèle expert", Strength: 2500, Difficulty: Expert, Endpoint: "api/megamate"},
	}
}

func Default() Config {
	return Config{
		Port:              8002,
		Backend:           "notnil",
		DefaultDifficulty: Medium,
		LogLevel:          "info",
		Models:            DefaultModels(),
	}
}

// Load reads a JSON config on top of the defaults. A missing file is not an
// error.
func Load(path string) (Config, Error) {
	config := Default()
	if path == "" {
		return config, NilError
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, NilError
	} else if err != nil {
		return config, Wrap(err)
	}

	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, Join(Errorf("parsing %v", path), Wrap(err))
	}

	return config, config.Validate()
}

func (c Config) Validate() Error {
	errs := []Error{}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, Errorf("invalid port %v", c.Port))
	}
	if c.Backend == "" {
		errs = append(errs, Errorf("missing backend"))
	}
	if !c.DefaultDifficulty.valid() {
		errs = append(errs, Errorf("invalid default difficulty %v", int(c.DefaultDifficulty)))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, Errorf("invalid log level %q", c.LogLevel))
	}

	ids := map[string]bool{}
	for _, model := range c.Models {
		if model.ID == "" || ids[model.ID] {
			errs = append(errs, Errorf("duplicate or empty model id %q", model.ID))
		}
		ids[model.ID] = true
		if model.Strength < 0 || model.Strength > 3000 {
			errs = append(errs, Errorf("model %v has strength %v outside 0..3000", model.ID, model.Strength))
		}
	}
	return Join(errs...)
}

func (c Config) Model(id string) Optional[AIModel] {
	return FindInSlice(c.Models, func(m AIModel) bool {
		return m.ID == id
	})
}
