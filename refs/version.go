package refs

import (
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"

	"github.com/on-the-ground/pure_deque/pure/deque"
)

const epsilon = time.Millisecond

func now() timespan.TimeSpan {
	now := time.Now()
	return timespan.BetweenTimes(now.Add(-1*epsilon), now.Add(epsilon))
}

// Version is one published value of a Ref. Versions are never modified
// after publication.
type Version[T any] struct {
	ID    uuid.UUID
	Seq   uint64
	Value deque.Deque[T]
	Span  timespan.TimeSpan

	parent *Version[T]
}

func newVersion[T any](value deque.Deque[T], prev *Version[T], keepHistory bool) *Version[T] {
	v := &Version[T]{
		ID:    uuid.New(),
		Value: value,
		Span:  now(),
	}
	if prev != nil {
		v.Seq = prev.Seq + 1
		if keepHistory {
			v.parent = prev
		}
	}
	return v
}

// Parent returns the version this one replaced, if history is kept.
func (v *Version[T]) Parent() (*Version[T], bool) {
	return v.parent, v.parent != nil
}
