package types

import "fmt"

// Space describes the shape and bounds of observations
type Space interface {
	Contains([]float64) bool
	Shape() []int
	String() string
}

// Discrete space of integers 0..N-1
type Discrete struct {
	N int `json:"n"`
}

var _ Space = Discrete{}

func (d Discrete) Contains(obs []float64) bool {
	if len(obs) != 1 {
		return false
	}
	v := obs[0]
	return v == float64(int(v)) && v >= 0 && int(v) < d.N
}

func (d Discrete) ContainsAction(a Action) bool {
	return int(a) >= 0 && int(a) < d.N
}

func (d Discrete) Shape() []int {
	return []int{}
}

func (d Discrete) String() string {
	return fmt.Sprintf("Discrete(%d)", d.N)
}

// Box is a bounded vector space, Low and High have the same length
type Box struct {
	Low  []float64 `json:"low"`
	High []float64 `json:"high"`
}

var _ Space = Box{}

// SymmetricBox returns a box bounded by [-high, high]
func SymmetricBox(high ...float64) Box {
	low := make([]float64, len(high))
	for i, h := range high {
		low[i] = -h
	}
	return Box{Low: low, High: append([]float64{}, high...)}
}

func (b Box) Contains(obs []float64) bool {
	if len(obs) != len(b.High) {
		return false
	}
	for i, v := range obs {
		if v < b.Low[i] || v > b.High[i] {
			return false
		}
	}
	return true
}

func (b Box) Shape() []int {
	return []int{len(b.High)}
}

func (b Box) String() string {
	return fmt.Sprintf("Box(%d)", len(b.High))
}
