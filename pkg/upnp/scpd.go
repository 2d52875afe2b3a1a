package upnp

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Direction of an action argument, "in" or "out". Nothing else is
// accepted: an unknown direction is a parse error, not an implicit "in".
type Direction string

const (
	In  Direction = "in"
	Out Direction = "out"
)

// Argument is one entry of an action's argument list, in declaration
// order.
type Argument struct {
	Name      string    `json:"name"`
	Direction Direction `json:"direction"`
}

// Action describes one action a service offers.
type Action struct {
	Name      string     `json:"name"`
	Arguments []Argument `json:"arguments,omitempty"`
}

// InputCount reports how many arguments the caller would have to supply.
func (a *Action) InputCount() int {
	n := 0
	for _, arg := range a.Arguments {
		if arg.Direction == In {
			n++
		}
	}
	return n
}

type scpdRoot struct {
	XMLName xml.Name     `xml:"scpd"`
	Actions []scpdAction `xml:"actionList>action"`
}

type scpdAction struct {
	Name      string         `xml:"name"`
	Arguments []scpdArgument `xml:"argumentList>argument"`
}

type scpdArgument struct {
	Name      string `xml:"name"`
	Direction string `xml:"direction"`
}

// parseSCPD extracts the action list from a service's SCPD document.
// Stray whitespace inside elements is common in real SCPDs and is
// trimmed.
func parseSCPD(doc []byte) ([]Action, error) {
	var root scpdRoot
	if err := xml.Unmarshal(doc, &root); err != nil {
		return nil, fmt.Errorf("error decoding scpd: %w", err)
	}

	actions := make([]Action, 0, len(root.Actions))
	for _, a := range root.Actions {
		action := Action{Name: strings.TrimSpace(a.Name)}
		for _, arg := range a.Arguments {
			dir := Direction(strings.TrimSpace(arg.Direction))
			if dir != In && dir != Out {
				return nil, fmt.Errorf("%w %q for argument %q of action %q",
					ErrBadDirection, arg.Direction, arg.Name, action.Name)
			}
			action.Arguments = append(action.Arguments, Argument{
				Name:      strings.TrimSpace(arg.Name),
				Direction: dir,
			})
		}
		actions = append(actions, action)
	}

	return actions, nil
}
