// Package timing measures wall-clock time around a function and formats
// the benchmark's timing line.
package timing

import (
	"fmt"
	"io"
	"time"
)

// Measure runs fn and returns the elapsed time in seconds. time.Now carries
// a monotonic reading, so wall-clock adjustments do not leak in. A panic in
// fn propagates unchanged.
func Measure(fn func()) float64 {
	start := time.Now()
	fn()
	return time.Since(start).Seconds()
}

// Format renders "<label>: <seconds>s" with five decimals.
func Format(label string, seconds float64) string {
	return fmt.Sprintf("%s: %.5fs", label, seconds)
}

func Report(w io.Writer, label string, seconds float64) error {
	_, err := fmt.Fprintln(w, Format(label, seconds))
	return err
}
