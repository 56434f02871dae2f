package seq

import "math"

// Open marks an omitted slice bound, so Slice(s, 12, Open, 13) reads like s[12::13].
const Open = math.MinInt

// Slice returns a new slice holding the elements picked by the half-open range
// [start, stop) walked with step. Negative bounds count from the end and bounds
// past either end are clamped, so Slice never fails for a non-zero step.
// A zero step panics.
func Slice[T any](s Sequence[T], start, stop, step int) []T {
	if step == 0 {
		panic("seq: slice step cannot be zero")
	}
	n := s.Len()
	start, stop = adjust(n, start, stop, step)

	var out []T
	if step > 0 {
		if start < stop {
			out = make([]T, 0, (stop-start+step-1)/step)
		}
		for i := start; i < stop; i += step {
			out = append(out, s.At(i))
		}
	} else {
		if start > stop {
			out = make([]T, 0, (start-stop-step-1)/-step)
		}
		for i := start; i > stop; i += step {
			out = append(out, s.At(i))
		}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// adjust resolves Open and negative bounds and clamps them to the walkable range.
// For a negative step the lower limit is -1, one before the first element.
func adjust(n, start, stop, step int) (int, int) {
	lo, hi := 0, n
	if step < 0 {
		lo, hi = -1, n-1
	}
	if start == Open {
		if step < 0 {
			start = hi
		} else {
			start = lo
		}
	} else {
		start = clamp(n, start, lo, hi)
	}
	if stop == Open {
		if step < 0 {
			stop = lo
		} else {
			stop = hi
		}
	} else {
		stop = clamp(n, stop, lo, hi)
	}
	return start, stop
}

func clamp(n, i, lo, hi int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return lo
		}
		return i
	}
	if i > hi {
		return hi
	}
	return i
}
