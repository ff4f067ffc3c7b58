package grid

import (
	"fmt"
	"io"
	"strings"

	"github.com/zeu5/player-selector/util"
)

// Render draws the board with the cursor highlighted and the last move
func (e *TeamCreatorEnvironment) Render(w io.Writer) error {
	out := e.board.copy()
	lines := make([]string, len(out))
	for i, row := range out {
		if i == e.cur.Row+1 {
			col := e.cur.Col + 1
			lines[i] = string(row[:col]) +
				util.Colorize(string(row[col]), util.Yellow, true) +
				string(row[col+1:])
			continue
		}
		lines[i] = string(row)
	}

	b := new(strings.Builder)
	b.WriteString(strings.Join(lines, "\n") + "\n")
	if e.lastAction != nil {
		fmt.Fprintf(b, "  (%d),", e.cur.Row)
		fmt.Fprintf(b, "  (%d)", e.cur.Col)
		fmt.Fprintf(b, "  (%d)\n", e.cur.HasPlayer)
		fmt.Fprintf(b, "  (%s)\n", ActionName(*e.lastAction))
	} else {
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
