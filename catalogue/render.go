package catalogue

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteRoster prints the selected players as a table followed by the
// summary lines
func WriteRoster(w io.Writer, roster []Player, summary ...string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tPOSITION\tPRICE\tSCORE")
	for i, p := range roster {
		pos := string(p.Position)
		if pos == "" {
			pos = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%g\t%g\n", i+1, p.Name, pos, p.Price, p.Score)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, s := range summary {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
