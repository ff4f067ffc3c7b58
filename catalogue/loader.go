package catalogue

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Loader produces a catalogue once, at environment construction
type Loader interface {
	Load() (*Catalogue, error)
}

// StaticLoader serves an in-memory table
type StaticLoader []Player

var _ Loader = StaticLoader{}

func (s StaticLoader) Load() (*Catalogue, error) {
	return New(s)
}

// Format describes the delimiter and columns of a tabular source
type Format struct {
	Comma        rune
	WithPosition bool
}

var (
	// CommaFormat has the columns index,name,value,score
	CommaFormat = Format{Comma: ','}
	// FormationFormat has the columns index;name;position;value;score
	FormationFormat = Format{Comma: ';', WithPosition: true}
)

// CSVLoader reads a catalogue from a file
type CSVLoader struct {
	Path   string
	Format Format
}

var _ Loader = &CSVLoader{}

func (l *CSVLoader) Load() (*Catalogue, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalogue: %w", err)
	}
	defer f.Close()
	c, err := ReadCSV(f, l.Format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Path, err)
	}
	return c, nil
}

// ReadCSV parses a catalogue with a header row. Columns are matched by name,
// the index column is optional and ignored, row order gives the ids.
func ReadCSV(r io.Reader, format Format) (*Catalogue, error) {
	reader := csv.NewReader(r)
	reader.Comma = format.Comma
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyCatalogue
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalogue, err)
	}

	required := []string{"name", "value", "score"}
	if format.WithPosition {
		required = append(required, "position")
	}
	columns := make(map[string]int)
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedCatalogue, name)
		}
	}

	players := make([]Player, 0)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCatalogue, err)
		}
		p, err := parseRecord(record, columns, format)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedCatalogue, line, err)
		}
		players = append(players, p)
	}
	return New(players)
}

func parseRecord(record []string, columns map[string]int, format Format) (Player, error) {
	p := Player{Name: strings.TrimSpace(record[columns["name"]])}
	price, err := strconv.ParseFloat(strings.TrimSpace(record[columns["value"]]), 64)
	if err != nil {
		return p, fmt.Errorf("value: %v", err)
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(record[columns["score"]]), 64)
	if err != nil {
		return p, fmt.Errorf("score: %v", err)
	}
	p.Price = price
	p.Score = score
	if format.WithPosition {
		pos, err := ParsePosition(record[columns["position"]])
		if err != nil {
			return p, err
		}
		p.Position = pos
	}
	return p, nil
}
