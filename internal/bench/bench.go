// Package bench times one grid scan and reports it.
package bench

import (
	"io"

	"github.com/san-kum/mandelbench/internal/grid"
	"github.com/san-kum/mandelbench/internal/timing"
)

type Report struct {
	Seconds float64
	Result  grid.Result
}

// Run times a full scan of p. Observers only see rows in line mode.
func Run(p grid.Params, observers ...grid.LineObserver) Report {
	s := grid.New(p)
	for _, o := range observers {
		s.AddObserver(o)
	}

	var report Report
	report.Seconds = timing.Measure(func() {
		report.Result = s.Scan()
	})
	return report
}

func (r Report) Write(w io.Writer, label string) error {
	return timing.Report(w, label, r.Seconds)
}
