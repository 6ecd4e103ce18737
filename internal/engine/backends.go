package engine

import (
	"strings"

	. "github.com/cricklet/minimax/internal/helpers"
	"github.com/cricklet/minimax/internal/rules"
	"github.com/cricklet/minimax/internal/rules/dragontooth"
	"github.com/cricklet/minimax/internal/rules/notnilchess"
)

// Backends lists the rules engines a game can run on. The first is the
// default.
var Backends = []rules.Backend{
	notnilchess.Backend{},
	dragontooth.Backend{},
}

func BackendNames() []string {
	return MapSlice(Backends, rules.Backend.Name)
}

func BackendFromName(name string) (rules.Backend, Error) {
	if name == "" {
		return Backends[0], NilError
	}
	backend := FindInSlice(Backends, func(b rules.Backend) bool {
		return b.Name() == strings.ToLower(name)
	})
	if backend.IsEmpty() {
		return nil, Errorf("unknown backend %q, expected one of %v", name, BackendNames())
	}
	return backend.Value(), NilError
}
