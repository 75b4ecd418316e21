package doodle

import (
	"github.com/vovakirdan/doodle-arcade/internal/core"
	"github.com/vovakirdan/doodle-arcade/internal/sim"
)

// holdState emulates held arrow keys. Terminals only report presses (and
// key repeats), so a direction stays active for a number of ticks after its
// last press. Pressing the opposite direction cancels it immediately.
type holdState struct {
	ticks int
	left  int
	right int
}

func newHoldState(ticks int) *holdState {
	return &holdState{ticks: max(ticks, 1)}
}

func (h *holdState) reset() {
	h.left, h.right = 0, 0
}

// intents converts this tick's actions into engine intents. Jump is
// edge-triggered and never held.
func (h *holdState) intents(in core.InputFrame) sim.Intents {
	if in.Has(core.ActionLeft) {
		h.left, h.right = h.ticks, 0
	}
	if in.Has(core.ActionRight) {
		h.right, h.left = h.ticks, 0
	}

	out := sim.Intents{
		Left:  h.left > 0,
		Right: h.right > 0,
		Jump:  in.Has(core.ActionJump),
	}

	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
	return out
}
