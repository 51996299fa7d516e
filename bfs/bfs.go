// SPDX-License-Identifier: MIT
package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmaze/core"
)

// queueItem pairs a vertex with its depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable, E core.WeightedEdge[V]] struct {
	graph core.Graph[V, E]
	opts  Options[V]
	queue []queueItem[V]
	res   *Result[V]
}

// BFS runs breadth-first search on g from start.
// Returns ErrStartVertexNotFound, ErrOptionViolation, a context error or a
// wrapped OnVisit error. On error the partial result is returned too.
func BFS[V comparable, E core.WeightedEdge[V]](g core.Graph[V, E], start V, opts ...Option[V]) (*Result[V], error) {
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	vertices := g.AllVertices()
	if !slices.Contains(vertices, start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := len(vertices)
	w := &walker[V, E]{
		graph: g,
		opts:  o,
		queue: make([]queueItem[V], 0, n),
		res: &Result[V]{
			Start:  start,
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[V]{v: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error or cancellation.
func (w *walker[V, E]) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues unseen neighbours.
func (w *walker[V, E]) enqueueNeighbors(item queueItem[V]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, e := range w.graph.OutgoingEdgesFrom(item.v) {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		nbr := e.To()
		if _, seen := w.res.Depth[nbr]; seen || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		w.res.Depth[nbr] = next
		w.res.Parent[nbr] = item.v
		w.queue = append(w.queue, queueItem[V]{v: nbr, depth: next})
	}

	return nil
}
