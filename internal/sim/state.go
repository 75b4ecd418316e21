package sim

// Phase is the lifecycle stage of a session.
type Phase string

const (
	PhaseRunning  Phase = "running"
	PhaseGameOver Phase = "game_over"
)

// Reason explains why a session ended.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonTrap      Reason = "trap"
	ReasonBlackHole Reason = "black_hole"
	ReasonFell      Reason = "fell"
)

// machine tracks the phase. GameOver is terminal until start is called.
type machine struct {
	phase  Phase
	reason Reason
}

func (m *machine) start() {
	m.phase = PhaseRunning
	m.reason = ReasonNone
}

// end moves to GameOver. It reports false if the session was already over,
// so only the first cause is recorded.
func (m *machine) end(reason Reason) bool {
	if m.phase != PhaseRunning {
		return false
	}
	m.phase = PhaseGameOver
	m.reason = reason
	return true
}

func (m *machine) running() bool {
	return m.phase == PhaseRunning
}
