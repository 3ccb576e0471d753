package grid

import "github.com/san-kum/mandelbench/internal/escape"

const (
	glyphBase  = 32
	glyphRange = 94
)

// DisplayValue maps a classification onto the printable range 32..125.
func DisplayValue(r escape.Result) byte {
	if k, ok := r.Escaped(); ok {
		return byte(glyphBase + k%glyphRange)
	}
	return glyphBase
}

type Scanner struct {
	params    Params
	observers []LineObserver
}

func New(params Params) *Scanner {
	return &Scanner{
		params:    params,
		observers: make([]LineObserver, 0),
	}
}

func (s *Scanner) AddObserver(o LineObserver) { s.observers = append(s.observers, o) }

func (s *Scanner) Params() Params { return s.params }

// Scan walks rows top to bottom and columns left to right. It never fails;
// call Params.Validate beforehand to reject bad input.
func (s *Scanner) Scan() Result {
	p := s.params
	result := Result{Mode: p.Mode}
	if p.Cols <= 0 || p.Rows <= 0 {
		return result
	}

	v := p.Viewport
	width := v.XMax - v.XMin
	height := v.YMax - v.YMin
	cols := float32(p.Cols)
	rows := float32(p.Rows)

	var line []byte
	if p.Mode == ModeLine {
		line = make([]byte, 0, p.Cols)
	}

	for j := 0; j < p.Rows; j++ {
		cy := v.YMin + float32(j)*height/rows
		line = line[:0]

		for i := 0; i < p.Cols; i++ {
			cx := v.XMin + float32(i)*width/cols

			r := escape.Classify(p.MaxIter, p.Bound, cx, cy)
			if !r.IsBounded() {
				result.Escaped++
			}

			val := DisplayValue(r)
			result.Sum += int64(val)
			if p.Mode == ModeLine {
				line = append(line, val)
			}
		}

		result.Cells += p.Cols
		result.Rows++

		if p.Mode == ModeLine {
			for _, o := range s.observers {
				o.OnLine(j, line)
			}
		}
	}

	return result
}

// LineCollector keeps a copy of every row it observes.
type LineCollector struct {
	Lines []string
}

func (c *LineCollector) OnLine(_ int, line []byte) {
	c.Lines = append(c.Lines, string(line))
}
