// SPDX-License-Identifier: MIT
package minpq

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for queue misuse.
var (
	// ErrDuplicateItem indicates Add was called with an item already queued.
	ErrDuplicateItem = errors.New("minpq: item already present")

	// ErrItemNotFound indicates ChangePriority referenced an item not queued.
	ErrItemNotFound = errors.New("minpq: item not found")

	// ErrEmptyQueue indicates PeekMin or RemoveMin on an empty queue.
	ErrEmptyQueue = errors.New("minpq: queue is empty")

	// ErrBadPriority indicates a NaN priority.
	ErrBadPriority = errors.New("minpq: priority is NaN")

	// ErrUnknownKind indicates an unrecognised implementation name.
	ErrUnknownKind = errors.New("minpq: unknown queue kind")
)

// MinPQ is an extrinsic minimum-priority queue of distinct items.
type MinPQ[T comparable] interface {
	// Add inserts item with the given priority.
	Add(item T, priority float64) error
	// Contains reports whether item is queued.
	Contains(item T) bool
	// PeekMin returns an item of minimum priority without removing it.
	PeekMin() (T, error)
	// RemoveMin removes and returns an item of minimum priority.
	RemoveMin() (T, error)
	// ChangePriority replaces the priority of a queued item.
	ChangePriority(item T, priority float64) error
	// Size returns the number of queued items.
	Size() int
	// IsEmpty reports whether Size() == 0.
	IsEmpty() bool
}

// PriorityNode pairs an item with its priority. Nodes are replaced, never
// mutated, when a priority changes.
type PriorityNode[T comparable] struct {
	item     T
	priority float64
}

// Item returns the queued item.
func (n PriorityNode[T]) Item() T { return n.item }

// Priority returns the node's priority.
func (n PriorityNode[T]) Priority() float64 { return n.priority }

// Kind names a MinPQ implementation.
type Kind string

const (
	// KindArrayHeap selects ArrayHeap.
	KindArrayHeap Kind = "heap"
	// KindTreeMap selects TreeMap.
	KindTreeMap Kind = "treemap"
)

// ParseKind maps a case-insensitive name onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindArrayHeap, KindTreeMap:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Factory creates a fresh, empty queue. Algorithms take a Factory so callers
// choose the implementation without the algorithm knowing about it.
type Factory[T comparable] func() MinPQ[T]

// ArrayHeapFactory returns a Factory producing ArrayHeaps.
func ArrayHeapFactory[T comparable](opts ...Option) Factory[T] {
	return func() MinPQ[T] { return NewArrayHeap[T](opts...) }
}

// TreeMapFactory returns a Factory producing TreeMaps.
func TreeMapFactory[T comparable](opts ...Option) Factory[T] {
	return func() MinPQ[T] { return NewTreeMap[T](opts...) }
}

// FactoryFor returns the Factory for kind, or ErrUnknownKind.
func FactoryFor[T comparable](kind Kind, opts ...Option) (Factory[T], error) {
	switch kind {
	case KindArrayHeap:
		return ArrayHeapFactory[T](opts...), nil
	case KindTreeMap:
		return TreeMapFactory[T](opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// New builds an empty queue of the given kind.
func New[T comparable](kind Kind, opts ...Option) (MinPQ[T], error) {
	f, err := FactoryFor[T](kind, opts...)
	if err != nil {
		return nil, err
	}

	return f(), nil
}

// Options configures queue construction.
//
// Capacity - expected number of items; pre-sizes internal storage (≥ 0).
// Degree   - B-tree degree used by TreeMap (≥ 2).
type Options struct {
	Capacity int
	Degree   int
}

// DefaultOptions returns zero capacity and a B-tree degree of 32.
func DefaultOptions() Options {
	return Options{Capacity: 0, Degree: 32}
}

// Option mutates Options.
type Option func(*Options)

// WithCapacity pre-sizes the queue for n items. Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("minpq: WithCapacity(%d): capacity must be non-negative", n))
	}

	return func(o *Options) { o.Capacity = n }
}

// WithDegree sets the TreeMap B-tree degree. Panics if d < 2.
func WithDegree(d int) Option {
	if d < 2 {
		panic(fmt.Sprintf("minpq: WithDegree(%d): degree must be at least 2", d))
	}

	return func(o *Options) { o.Degree = d }
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
