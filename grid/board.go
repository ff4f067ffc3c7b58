package grid

// Board layout, the outer frame is not addressable. Cells marked Slot can
// receive a player, Placed marks a slot that already holds one.
var Map = []string{
	"|=====|",
	"|--   |",
	"|---  |",
	"|-----|",
	"|-    |",
	"|=====|",
}

const (
	Rows    = 4
	Columns = 5

	Slot   byte = '-'
	Placed byte = 'P'
)

type board [][]byte

func newBoard() board {
	b := make(board, len(Map))
	for i, row := range Map {
		b[i] = []byte(row)
	}
	return b
}

// cell at cursor coordinates, the frame offsets by one
func (b board) cell(row, col int) byte {
	return b[row+1][col+1]
}

func (b board) set(row, col int, c byte) {
	b[row+1][col+1] = c
}

func (b board) copy() board {
	out := make(board, len(b))
	for i, row := range b {
		out[i] = append([]byte{}, row...)
	}
	return out
}

// Slots counts the cells of the initial map that can receive a player
func Slots() int {
	b := newBoard()
	count := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b.cell(row, col) == Slot {
				count += 1
			}
		}
	}
	return count
}

// Encode packs a cursor position and the has-player flag into a state id
func Encode(row, col, hasPlayer int) int {
	i := row
	i *= Columns
	i += col
	i *= 4
	i += hasPlayer
	return i
}

// Decode is the inverse of Encode
func Decode(i int) (row, col, hasPlayer int) {
	hasPlayer = i % 4
	i = i / 4
	col = i % Columns
	i = i / Columns
	row = i
	return
}
