package refs

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/on-the-ground/pure_deque/pure/deque"
	"github.com/on-the-ground/pure_deque/shared/helper"
	"github.com/on-the-ground/pure_deque/shared/logging"
)

var ErrUnknownRef = errors.New("unknown ref")

// Registry holds refs by name, spread over shards by the hash of the name.
type Registry[T any] struct {
	cfg    Config
	logger *zap.Logger
	shards []*sync.Map
}

func NewRegistry[T any](cfg Config, logger *zap.Logger) *Registry[T] {
	cfg = NewConfig(cfg.NumShards, cfg.MaxAttempts, cfg.KeepHistory)
	shards := make([]*sync.Map, cfg.NumShards)
	for i := range shards {
		shards[i] = &sync.Map{}
	}
	return &Registry[T]{
		cfg:    cfg,
		logger: logging.OrNop(logger),
		shards: shards,
	}
}

func shardIndex(name string, numShards int) int {
	switch numShards {
	case 0:
		panic("number of shards cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(name) % uint64(numShards))
	}
}

func (reg *Registry[T]) shardOf(name string) *sync.Map {
	return reg.shards[shardIndex(name, len(reg.shards))]
}

// Ref returns the ref called name, creating an empty one if needed.
func (reg *Registry[T]) Ref(name string) *Ref[T] {
	if ref, ok := reg.Lookup(name); ok {
		return ref
	}
	actual, loaded := reg.shardOf(name).LoadOrStore(name, NewRef[T](name, reg.cfg, reg.logger))
	if !loaded {
		reg.logger.Info("created ref",
			zap.String("ref", name),
			zap.Int("shard", shardIndex(name, len(reg.shards))),
		)
	}
	return helper.MustGetTypedValue[*Ref[T]](func() (any, error) { return actual, nil })
}

func (reg *Registry[T]) Lookup(name string) (*Ref[T], bool) {
	return helper.GetTypedValueOf2[*Ref[T]](func() (any, bool) {
		return reg.shardOf(name).Load(name)
	})
}

// Drop forgets the ref called name. Versions already handed out stay valid.
func (reg *Registry[T]) Drop(name string) bool {
	_, dropped := reg.shardOf(name).LoadAndDelete(name)
	if dropped {
		reg.logger.Info("dropped ref", zap.String("ref", name))
	}
	return dropped
}

// Names returns the registered names in sorted order.
func (reg *Registry[T]) Names() []string {
	var names []string
	for _, shard := range reg.shards {
		shard.Range(func(key, _ any) bool {
			names = append(names, key.(string))
			return true
		})
	}
	slices.Sort(names)
	return names
}

// UpdateAll applies fn to every named ref. Refs are updated independently:
// a failure on one does not stop or undo the others, and all failures are
// returned together.
func (reg *Registry[T]) UpdateAll(names []string, fn func(deque.Deque[T]) (deque.Deque[T], error)) error {
	var errs error
	for _, name := range names {
		ref, ok := reg.Lookup(name)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrUnknownRef, name))
			continue
		}
		if _, err := ref.Update(fn); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
