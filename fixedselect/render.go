package fixedselect

import (
	"fmt"
	"io"

	"github.com/zeu5/player-selector/catalogue"
)

func (e *PlayerSelectorEnvironment) Render(w io.Writer) error {
	last := "  (none)"
	if e.lastAction != nil {
		p, _ := e.players.Lookup(int(*e.lastAction))
		last = fmt.Sprintf("  (%d: %s)", *e.lastAction, p.Name)
	}
	return catalogue.WriteRoster(w, e.roster,
		fmt.Sprintf("budget %g, score %g, players %d/%d", e.state.Budget, e.state.Score, e.state.Selected, RosterSize),
		last,
	)
}
