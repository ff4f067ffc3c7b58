package formation

import "github.com/zeu5/player-selector/catalogue"

// Quota is the maximum number of players per position, 4-3-3
var Quota = map[catalogue.Position]int{
	catalogue.Goalkeeper: 1,
	catalogue.Defender:   4,
	catalogue.Midfielder: 3,
	catalogue.Attacker:   3,
}

// Counts of selected players per position
type Counts struct {
	Goalkeepers int
	Defenders   int
	Midfielders int
	Attackers   int
}

func (c Counts) Get(p catalogue.Position) int {
	switch p {
	case catalogue.Goalkeeper:
		return c.Goalkeepers
	case catalogue.Defender:
		return c.Defenders
	case catalogue.Midfielder:
		return c.Midfielders
	case catalogue.Attacker:
		return c.Attackers
	}
	return 0
}

// Add returns the counts with one more player at p
func (c Counts) Add(p catalogue.Position) Counts {
	switch p {
	case catalogue.Goalkeeper:
		c.Goalkeepers += 1
	case catalogue.Defender:
		c.Defenders += 1
	case catalogue.Midfielder:
		c.Midfielders += 1
	case catalogue.Attacker:
		c.Attackers += 1
	}
	return c
}

// Full reports whether the position quota is reached
func (c Counts) Full(p catalogue.Position) bool {
	return c.Get(p) == Quota[p]
}
