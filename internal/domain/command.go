package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject is returned when extractor output is not a JSON object.
var ErrNotObject = errors.New("command record must be a JSON object")

// Example is a single worked usage of a command, as extracted from its
// documentation.
type Example struct {
	Description string `json:"description"`
	Command     string `json:"command"`
}

// Command is the structured record extracted from one free-text command
// documentation string. Every field may legitimately be empty: the
// extraction service fills in what it can find and nothing more.
type Command struct {
	Signature   string    `json:"signature"`
	CommandBase string    `json:"commandBase"`
	Description string    `json:"description"`
	Examples    []Example `json:"examples"`
	Note        string    `json:"note"`
}

// Normalize ensures the record serializes the same way regardless of how it
// was produced: Examples is always an array, never null.
func (c *Command) Normalize() {
	if c.Examples == nil {
		c.Examples = []Example{}
	}
}

// ParseCommand decodes extractor output into a Command, field by field.
// A missing or wrong-typed field keeps its zero value rather than failing
// the whole record; only input that is not a JSON object at all is an
// error. The extraction service is prompted to return a fixed shape, but
// its output is still model output and is treated as semi-trusted.
func ParseCommand(data []byte) (*Command, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotObject, err)
	}

	cmd := &Command{Examples: []Example{}}
	decodeString(fields["signature"], &cmd.Signature)
	decodeString(fields["commandBase"], &cmd.CommandBase)
	decodeString(fields["description"], &cmd.Description)
	decodeString(fields["note"], &cmd.Note)

	if raw, ok := fields["examples"]; ok {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err == nil {
			for _, item := range items {
				var ex Example
				var exFields map[string]json.RawMessage
				if err := json.Unmarshal(item, &exFields); err != nil {
					continue
				}
				decodeString(exFields["description"], &ex.Description)
				decodeString(exFields["command"], &ex.Command)
				cmd.Examples = append(cmd.Examples, ex)
			}
		}
	}

	return cmd, nil
}

// decodeString assigns raw into dst when raw holds a JSON string; any other
// shape leaves dst untouched.
func decodeString(raw json.RawMessage, dst *string) {
	if raw == nil {
		return
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*dst = s
	}
}
