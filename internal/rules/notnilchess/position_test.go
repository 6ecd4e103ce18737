package notnilchess

import (
	"testing"

	"github.com/cricklet/minimax/internal/rules/rulestest"
)

func TestContract(t *testing.T) {
	rulestest.Contract(t, Backend{})
}
