package catalogue

import "errors"

var (
	ErrEmptyCatalogue     = errors.New("empty catalogue")
	ErrMalformedCatalogue = errors.New("malformed catalogue")
)

// Catalogue is an ordered, read-only list of players. The order defines the
// mapping from action id to player. It is safe to share between environments.
type Catalogue struct {
	players []Player
}

// New builds a catalogue, the IDs are reassigned to the slice order
func New(players []Player) (*Catalogue, error) {
	if len(players) == 0 {
		return nil, ErrEmptyCatalogue
	}
	c := &Catalogue{players: make([]Player, len(players))}
	for i, p := range players {
		p.ID = i
		c.players[i] = p
	}
	return c, nil
}

func (c *Catalogue) Len() int {
	return len(c.players)
}

// Lookup returns the player for an action id
func (c *Catalogue) Lookup(id int) (Player, bool) {
	if id < 0 || id >= len(c.players) {
		return Player{}, false
	}
	return c.players[id], true
}

// Players returns a copy of the records
func (c *Catalogue) Players() []Player {
	return append([]Player{}, c.players...)
}
