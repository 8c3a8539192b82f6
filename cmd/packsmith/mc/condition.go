package mc

import "encoding/json"

// Condition is a single execute-style test, rendered as "<kind> <operand>"
// inside command text and as that same string inside JSON payloads.
type Condition struct {
	Kind    string
	Operand string
}

func (c Condition) String() string { return c.Kind + " " + c.Operand }

// MarshalJSON renders the condition as its textual form, the shape JSON
// payloads embed verbatim.
func (c Condition) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Exists wraps the selector as an "entity exists" condition value. Pure
// data construction — no parsing, no validation beyond what the selector
// constructor already did.
func (s Selector) Exists() Condition {
	return Condition{Kind: "entity", Operand: s.String()}
}
