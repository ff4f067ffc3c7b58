// Package catalogue holds the read-only player tables the selector
// environments pick from.
package catalogue

import (
	"fmt"
	"strings"
)

// Position tag of a player
type Position string

const (
	NoPosition Position = ""
	Goalkeeper Position = "goalkeeper"
	Defender   Position = "defender"
	Midfielder Position = "midfielder"
	Attacker   Position = "attacker"
)

// Positions in formation order
var Positions = []Position{Goalkeeper, Defender, Midfielder, Attacker}

// ParsePosition accepts the four tags, case-insensitive
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Positions {
		if p == known {
			return p, nil
		}
	}
	return NoPosition, fmt.Errorf("unknown position %q", s)
}

// Player record, ID is the row index and thus the action id
type Player struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Position Position `json:"position,omitempty"`
	Price    float64  `json:"price"`
	Score    float64  `json:"score"`
}
