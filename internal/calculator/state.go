package calculator

// State is a point-in-time copy of the engine's fields.
type State struct {
	Display               Display
	Operator              Operator
	FirstOperand          *float64
	AwaitingSecondOperand bool
}

// State returns a snapshot of the engine.
func (e *Engine) State() State {
	s := State{
		Display:               e.display,
		Operator:              e.operator,
		AwaitingSecondOperand: e.awaitingSecondOperand,
	}
	if e.hasFirstOperand {
		first := e.firstOperand
		s.FirstOperand = &first
	}
	return s
}
