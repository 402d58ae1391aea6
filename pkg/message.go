package fuzzql

import "fmt"

// MessageToClientType is the tag distinguishing message payloads.
type MessageToClientType int

const (
	ErrorMessage MessageToClientType = iota
	AckMessage
	ResultMessage
)

func (m MessageToClientType) String() string {
	switch m {
	case ErrorMessage:
		return "error"
	case AckMessage:
		return "ack"
	case ResultMessage:
		return "result"
	}
	panic(fmt.Errorf("unknown type %d", m))
}

func (m MessageToClientType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *MessageToClientType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*m = ErrorMessage
	case "ack":
		*m = AckMessage
	case "result":
		*m = ResultMessage
	default:
		return fmt.Errorf("unknown message type %q", text)
	}
	return nil
}

// A MessageToClient is the single response to a statement: an error,
// an ack, or a result, per Type.
type MessageToClient struct {
	Type         MessageToClientType `json:"type"`
	ErrorMessage *string             `json:"error,omitempty"`
	AckMessage   *string             `json:"ack,omitempty"`
	// data
	ResultMessage *Result `json:"result,omitempty"`
}

// A Result is the data payload for INFER and SHOW statements.
type Result struct {
	Inferences []*Inference    `json:"inferences,omitempty"`
	Variables  []*VariableInfo `json:"variables,omitempty"`
	Rules      []*RuleInfo     `json:"rules,omitempty"`
}

type Inference struct {
	Rule           string  `json:"rule"`
	FiringStrength float64 `json:"firing_strength"`
	Output         string  `json:"output"`
}

type VariableInfo struct {
	Name   string   `json:"name"`
	Min    float64  `json:"min"`
	Max    float64  `json:"max"`
	Input  float64  `json:"input"`
	Labels []string `json:"labels"`
}

type RuleInfo struct {
	Name    string `json:"name"`
	Text    string `json:"text"`
	Postfix string `json:"postfix"`
}

// A ChannelMessage routes a response back to the statement that
// prompted it; both sides number statements per-connection from zero.
type ChannelMessage struct {
	StatementID int              `json:"statement_id"`
	Message     *MessageToClient `json:"message"`
}
