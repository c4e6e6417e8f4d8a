package calculator

// StateResponse is the JSON body returned by every calculator endpoint.
type StateResponse struct {
	Display               string  `json:"display"`
	Error                 bool    `json:"error"`
	Operator              string  `json:"operator,omitempty"`      // "add", "subtract", "multiply", "divide"
	FirstOperand          *string `json:"first_operand,omitempty"` // formatted like the display; may be "Infinity"
	AwaitingSecondOperand bool    `json:"awaiting_second_operand"`
}

func newStateResponse(s State) StateResponse {
	resp := StateResponse{
		Display:               s.Display.String(),
		Error:                 s.Display.IsError(),
		AwaitingSecondOperand: s.AwaitingSecondOperand,
	}
	if s.Operator != OpNone {
		resp.Operator = s.Operator.String()
	}
	if s.FirstOperand != nil {
		first := FormatNumber(*s.FirstOperand)
		resp.FirstOperand = &first
	}
	return resp
}

// KeysResponse is the JSON body for GET /calculator/keys.
type KeysResponse struct {
	Keys []Key `json:"keys"`
}

// SequenceRequest is the JSON body for POST /calculator/sequence.
type SequenceRequest struct {
	Keys []string `json:"keys"` // key names or printed labels, pressed in order
}

// SequenceStep records the display after one key of a sequence.
type SequenceStep struct {
	Key     Key    `json:"key"`
	Display string `json:"display"`
}

// SequenceResponse is the JSON response for POST /calculator/sequence.
type SequenceResponse struct {
	Steps []SequenceStep `json:"steps"`
	State StateResponse  `json:"state"`
}
