package valueobject

import (
	"fmt"
	"math"

	"github.com/yurvon-screamo/origa-sub001/internal/knerr"
)

// Stability is the expected retention half-life a spaced-repetition algorithm
// outputs for a card; it must be finite and non-negative.
type Stability struct {
	value float64
}

func NewStability(value float64) (Stability, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return Stability{}, &knerr.InvalidValueError{Field: "Stability", Reason: fmt.Sprintf("%v is negative or non-finite", value)}
	}
	return Stability{value: value}, nil
}

func (s Stability) Value() float64 { return s.value }
func (s Stability) String() string { return fmt.Sprintf("%.2f", s.value) }

// Difficulty is the per-card adversity factor a spaced-repetition algorithm
// outputs; it must be finite and non-negative.
type Difficulty struct {
	value float64
}

func NewDifficulty(value float64) (Difficulty, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return Difficulty{}, &knerr.InvalidValueError{Field: "Difficulty", Reason: fmt.Sprintf("%v is negative or non-finite", value)}
	}
	return Difficulty{value: value}, nil
}

func (d Difficulty) Value() float64 { return d.value }
func (d Difficulty) String() string { return fmt.Sprintf("%.2f", d.value) }
