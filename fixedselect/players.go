package fixedselect

import "github.com/zeu5/player-selector/catalogue"

// Players is the hard-coded table, indexed by action id.
// The best roster is I, B and D for a score of 597.
var Players = catalogue.StaticLoader{
	{Name: "A", Score: 230, Price: 80},
	{Name: "B", Score: 289, Price: 50},
	{Name: "C", Score: 67, Price: 70},
	{Name: "D", Score: 15, Price: 25},
	{Name: "E", Score: 68, Price: 90},
	{Name: "F", Score: 57, Price: 30},
	{Name: "G", Score: 221, Price: 50},
	{Name: "H", Score: 0, Price: 85},
	{Name: "I", Score: 293, Price: 35},
	{Name: "J", Score: -30, Price: 50},
}
