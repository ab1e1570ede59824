package projection

import (
	"iter"

	"github.com/1siamBot/surrender/engine/shapes"
)

// Stream is a finite, single-pass sequence of projected shapes. Shapes are
// projected lazily as the consumer pulls them; once drained (or abandoned)
// ranging over it again yields nothing.
type Stream struct {
	src  iter.Seq[shapes.Shape]
	fn   func(shapes.Shape) (shapes.Shape, error)
	used bool
}

func newStream(src iter.Seq[shapes.Shape], fn func(shapes.Shape) (shapes.Shape, error)) *Stream {
	return &Stream{src: src, fn: fn}
}

// All yields each projected shape, or a *shapes.Error for a shape that could
// not be projected. Failures do not stop the sequence.
func (s *Stream) All() iter.Seq2[shapes.Shape, error] {
	return func(yield func(shapes.Shape, error) bool) {
		if s.used {
			return
		}
		s.used = true
		for shape := range s.src {
			out, err := s.fn(shape)
			if err != nil {
				err = &shapes.Error{Shape: shape.Name(), Err: err}
			}
			if !yield(out, err) {
				return
			}
		}
	}
}

// Collect drains the stream, returning the projected shapes and the
// per-shape failures separately.
func (s *Stream) Collect() ([]shapes.Shape, []error) {
	var out []shapes.Shape
	var errs []error
	for shape, err := range s.All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, shape)
	}
	return out, errs
}
