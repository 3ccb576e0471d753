package escape

import "strconv"

// Result is either Escaped(step) or Bounded.
type Result struct {
	step    int
	escaped bool
}

func Escaped(step int) Result { return Result{step: step, escaped: true} }
func Bounded() Result         { return Result{} }

// Escaped returns the step at which the orbit left the bound radius.
func (r Result) Escaped() (int, bool) { return r.step, r.escaped }

func (r Result) IsBounded() bool { return !r.escaped }

func (r Result) String() string {
	if !r.escaped {
		return "bounded"
	}
	return "escaped(" + strconv.Itoa(r.step) + ")"
}

// Classify iterates c = (cx, cy) at most maxIter times and compares the
// squared magnitude of each iterate against bound*bound.
func Classify(maxIter int, bound float32, cx, cy float32) Result {
	limit := float32(bound * bound)
	x, y := cx, cy

	for i := 0; i < maxIter; i++ {
		x1 := float32(x*x) - float32(y*y) + cx
		y1 := float32(2*x*y) + cy
		if float32(x1*x1)+float32(y1*y1) > limit {
			return Escaped(i)
		}
		x, y = x1, y1
	}

	return Bounded()
}
