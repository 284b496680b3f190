package refs

import (
	"errors"
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/pure_deque/pure/deque"
	"github.com/on-the-ground/pure_deque/shared/helper"
	"github.com/on-the-ground/pure_deque/shared/logging"
)

var (
	ErrUnknownVersion = errors.New("unknown version")
	ErrNoHistory      = errors.New("history is not kept")

	errConflict = fmt.Errorf("%w: concurrent update", helper.ErrRetry)
)

// Ref is a named, goroutine-safe cell holding the latest Version of a deque.
//
// Readers never block: Current returns an immutable version. Writers publish
// a new version with compare-and-swap and retry when another writer got
// there first.
type Ref[T any] struct {
	name    string
	cfg     Config
	logger  *zap.Logger
	current atomic.Pointer[Version[T]]
}

// NewRef returns a ref holding an empty deque. A nil logger disables logging.
func NewRef[T any](name string, cfg Config, logger *zap.Logger) *Ref[T] {
	r := &Ref[T]{
		name:   name,
		cfg:    NewConfig(cfg.NumShards, cfg.MaxAttempts, cfg.KeepHistory),
		logger: logging.OrNop(logger).With(zap.String("ref", name)),
	}
	r.current.Store(newVersion(deque.Empty[T](), nil, r.cfg.KeepHistory))
	return r
}

func (r *Ref[T]) Name() string {
	return r.name
}

func (r *Ref[T]) Current() *Version[T] {
	return r.current.Load()
}

// Update publishes fn applied to the current value.
//
// fn may run more than once when writers race, so it must be pure. An error
// from fn aborts the update and nothing is published.
func (r *Ref[T]) Update(fn func(deque.Deque[T]) (deque.Deque[T], error)) (*Version[T], error) {
	var published *Version[T]
	attempt := 0
	err := helper.Retry(r.cfg.MaxAttempts, func() error {
		attempt++
		old := r.current.Load()
		value, err := fn(old.Value)
		if err != nil {
			return err
		}
		next := newVersion(value, old, r.cfg.KeepHistory)
		if !r.current.CompareAndSwap(old, next) {
			r.logger.Debug("concurrent update, retrying",
				zap.Int("attempt", attempt),
				zap.Uint64("seq", old.Seq),
			)
			return errConflict
		}
		published = next
		return nil
	})
	if err != nil {
		if errors.Is(err, helper.ErrMaxAttempts) {
			r.logger.Warn("gave up updating ref", zap.Int("attempts", attempt), zap.Error(err))
		}
		return nil, fmt.Errorf("update ref %s: %w", r.name, err)
	}
	return published, nil
}

func (r *Ref[T]) PushLeft(x T) (*Version[T], error) {
	return r.Update(func(d deque.Deque[T]) (deque.Deque[T], error) {
		return d.EnqueueLeft(x), nil
	})
}

func (r *Ref[T]) PushRight(x T) (*Version[T], error) {
	return r.Update(func(d deque.Deque[T]) (deque.Deque[T], error) {
		return d.EnqueueRight(x), nil
	})
}

// PopLeft removes and returns the leftmost element of the current value.
func (r *Ref[T]) PopLeft() (T, error) {
	var popped T
	_, err := r.Update(func(d deque.Deque[T]) (rest deque.Deque[T], err error) {
		popped, rest, err = d.PopLeft()
		return
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return popped, nil
}

// PopRight removes and returns the rightmost element of the current value.
func (r *Ref[T]) PopRight() (T, error) {
	var popped T
	_, err := r.Update(func(d deque.Deque[T]) (rest deque.Deque[T], err error) {
		popped, rest, err = d.PopRight()
		return
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return popped, nil
}

// History yields the current version followed by its ancestors, newest
// first. Without KeepHistory it yields only the current version.
func (r *Ref[T]) History() iter.Seq[*Version[T]] {
	head := r.current.Load()
	return func(yield func(*Version[T]) bool) {
		for v, ok := head, true; ok; v, ok = v.Parent() {
			if !yield(v) {
				return
			}
		}
	}
}

// Rollback republishes the value of an earlier version as a new version.
func (r *Ref[T]) Rollback(id uuid.UUID) (*Version[T], error) {
	if !r.cfg.KeepHistory {
		return nil, fmt.Errorf("rollback ref %s: %w", r.name, ErrNoHistory)
	}
	var target *Version[T]
	for v := range r.History() {
		if v.ID == id {
			target = v
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("rollback ref %s: %w: %s", r.name, ErrUnknownVersion, id)
	}
	published, err := r.Update(func(deque.Deque[T]) (deque.Deque[T], error) {
		return target.Value, nil
	})
	if err != nil {
		return nil, err
	}
	r.logger.Warn("rolled back",
		zap.Stringer("to", id),
		zap.Uint64("fromSeq", target.Seq),
		zap.Uint64("seq", published.Seq),
	)
	return published, nil
}
