package entities

import "fmt"

// PipelineState is a stage of a scaffolding run.
type PipelineState int

const (
	StateInit PipelineState = iota
	StateVersionChecked
	StateDependenciesDeclared
	StateGeneratorsAndEditsApplied
	StateFinalized
	StateDone
	StateAborted
)

func (s PipelineState) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateVersionChecked:
		return "version-checked"
	case StateDependenciesDeclared:
		return "dependencies-declared"
	case StateGeneratorsAndEditsApplied:
		return "generators-and-edits-applied"
	case StateFinalized:
		return "finalized"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// PipelineMachine enforces the strictly sequential state order. The only branch is
// Init -> Aborted.
type PipelineMachine struct {
	current PipelineState
	history []PipelineState
}

// NewPipelineMachine starts in StateInit.
func NewPipelineMachine() *PipelineMachine {
	return &PipelineMachine{current: StateInit, history: []PipelineState{StateInit}}
}

// Current returns the state the machine is in.
func (m *PipelineMachine) Current() PipelineState {
	return m.current
}

// History returns every state visited, in order.
func (m *PipelineMachine) History() []PipelineState {
	return append([]PipelineState(nil), m.history...)
}

// Advance moves to next if it directly follows the current state.
func (m *PipelineMachine) Advance(next PipelineState) error {
	allowed := m.current != StateAborted && m.current != StateDone && next == m.current+1 && next != StateAborted
	if next == StateAborted {
		allowed = m.current == StateInit
	}
	if !allowed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, next)
	}
	m.current = next
	m.history = append(m.history, next)
	return nil
}
