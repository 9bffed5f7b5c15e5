package models

import (
	"encoding/json"
)

// Tristate is a boolean fact that may still be withheld from the viewer.
// It marshals to true/false once disclosed and to the string "unknown"
// before that, which is the sentinel the clients expect.
type Tristate struct {
	Known bool
	Value bool
}

// Disclosed builds a Tristate carrying a known value.
func Disclosed(v bool) Tristate {
	return Tristate{Known: true, Value: v}
}

// Undisclosed builds a withheld Tristate.
func Undisclosed() Tristate {
	return Tristate{}
}

// MarshalJSON implements json.Marshaler.
func (t Tristate) MarshalJSON() ([]byte, error) {
	if !t.Known {
		return json.Marshal("unknown")
	}
	return json.Marshal(t.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tristate) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*t = Tristate{Known: true, Value: b}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = Tristate{}
	return nil
}
