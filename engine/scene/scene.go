package scene

import (
	"errors"
	"fmt"
	"iter"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/1siamBot/surrender/engine/clip"
	"github.com/1siamBot/surrender/engine/shapes"
)

var ErrNotFound = errors.New("shape not found")

type entry struct {
	id    uuid.UUID
	shape shapes.Shape
}

// Scene owns the canonical shapes. It has a single writer; the render
// pipeline reads it and works on copies.
type Scene struct {
	entries []entry
	index   map[uuid.UUID]int
	pinned  map[uuid.UUID]bool
	Events  *EventBus
	log     *zap.Logger
}

type Option func(*Scene)

func WithLogger(l *zap.Logger) Option {
	return func(s *Scene) {
		if l != nil {
			s.log = l
		}
	}
}

func New(opts ...Option) *Scene {
	s := &Scene{
		index:  make(map[uuid.UUID]int),
		pinned: make(map[uuid.UUID]bool),
		Events: NewEventBus(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add stores shape and returns its id.
func (s *Scene) Add(shape shapes.Shape) uuid.UUID {
	id := uuid.New()
	s.index[id] = len(s.entries)
	s.entries = append(s.entries, entry{id: id, shape: shape})
	s.Events.Emit(Event{Type: EvtShapeAdded, ID: id, Name: shape.Name()})
	s.log.Debug("shape added",
		zap.String("id", id.String()),
		zap.String("shape", shape.Name()),
		zap.Stringer("kind", shape.Kind()))
	return id
}

// Remove deletes a shape, keeping the order of the others.
func (s *Scene) Remove(id uuid.UUID) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}
	name := s.entries[i].shape.Name()
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	delete(s.index, id)
	delete(s.pinned, id)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].id] = j
	}
	s.Events.Emit(Event{Type: EvtShapeRemoved, ID: id, Name: name})
	s.log.Debug("shape removed", zap.String("id", id.String()), zap.String("shape", name))
	return nil
}

func (s *Scene) Get(id uuid.UUID) (shapes.Shape, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.entries[i].shape, true
}

// Replace swaps the shape stored under id.
func (s *Scene) Replace(id uuid.UUID, shape shapes.Shape) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("replace %s: %w", id, ErrNotFound)
	}
	s.entries[i].shape = shape
	s.Events.Emit(Event{Type: EvtShapeChanged, ID: id, Name: shape.Name()})
	return nil
}

// Transform replaces the shape under id with fn applied to it, e.g.
// shapes.Move or shapes.Rotate.
func (s *Scene) Transform(id uuid.UUID, fn func(shapes.Shape) shapes.Shape) error {
	shape, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("transform %s: %w", id, ErrNotFound)
	}
	return s.Replace(id, fn(shape))
}

// SetAlgorithm changes the clipping algorithm of one shape.
func (s *Scene) SetAlgorithm(id uuid.UUID, a clip.Algorithm) error {
	return s.Transform(id, func(sh shapes.Shape) shapes.Shape { return sh.WithAlgorithm(a) })
}

// PinAlgorithm keeps the shape's own clipping algorithm when
// SetAlgorithmAll runs. SetAlgorithm still changes it.
func (s *Scene) PinAlgorithm(id uuid.UUID) error {
	if _, ok := s.index[id]; !ok {
		return fmt.Errorf("pin %s: %w", id, ErrNotFound)
	}
	s.pinned[id] = true
	return nil
}

func (s *Scene) Pinned(id uuid.UUID) bool { return s.pinned[id] }

// SetAlgorithmAll changes the clipping algorithm of every shape that is
// not pinned.
func (s *Scene) SetAlgorithmAll(a clip.Algorithm) {
	for _, e := range s.entries {
		if s.pinned[e.id] {
			continue
		}
		_ = s.SetAlgorithm(e.id, a)
	}
}

func (s *Scene) Len() int { return len(s.entries) }

// IDs returns the shape ids in insertion order.
func (s *Scene) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.id
	}
	return ids
}

// Shapes yields the shapes in insertion order.
func (s *Scene) Shapes() iter.Seq[shapes.Shape] {
	return func(yield func(shapes.Shape) bool) {
		for _, e := range s.entries {
			if !yield(e.shape) {
				return
			}
		}
	}
}
