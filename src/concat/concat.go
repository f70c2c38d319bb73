package concat

import (
	"errors"
	"fmt"
	"math"
)

var ErrEmptyPlan = errors.New("nothing to concatenate")

type InvalidParameterError struct {
	Name  string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %v: must be within [0, 1]", e.Name, e.Value)
}

// ValidateFraction checks a crossfade overlap fraction.
func ValidateFraction(f float64) error {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return &InvalidParameterError{Name: "crossfade overlap", Value: f}
	}
	return nil
}

// OverlapLength is the number of samples shared by two adjacent segments of
// length a and b.
func OverlapLength(a, b int, f float64) int {
	n := a
	if b < n {
		n = b
	}
	return int(math.Floor(f * float64(n)))
}

// Joins lists the overlap of every join in order. Without crossfade every join
// is zero.
func Joins(segments [][]float64, crossfade bool, f float64) []int {
	if len(segments) < 2 {
		return []int{}
	}
	out := make([]int, len(segments)-1)
	if !crossfade {
		return out
	}
	for i := range out {
		out[i] = OverlapLength(len(segments[i]), len(segments[i+1]), f)
	}
	return out
}

// Assemble joins segments into one waveform. With crossfade each pair of
// neighbours overlaps by OverlapLength samples, faded linearly so the two
// weights always sum to one. The output is len(all) - sum(overlaps) samples
// long. Inputs are never modified.
func Assemble(segments [][]float64, crossfade bool, f float64) ([]float64, []int, error) {
	if err := ValidateFraction(f); err != nil {
		return nil, nil, err
	}
	if len(segments) == 0 {
		return nil, nil, ErrEmptyPlan
	}

	joins := Joins(segments, crossfade, f)

	total := 0
	for _, s := range segments {
		total += len(s)
	}
	for _, o := range joins {
		total -= o
	}

	out := make([]float64, 0, total)
	out = append(out, segments[0]...)
	for i, seg := range segments[1:] {
		l := joins[i]
		tail := out[len(out)-l:]
		for t := 0; t < l; t++ {
			w := float64(t+1) / float64(l+1)
			tail[t] = tail[t]*(1-w) + seg[t]*w
		}
		out = append(out, seg[l:]...)
	}

	return out, joins, nil
}
