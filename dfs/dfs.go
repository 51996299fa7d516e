// SPDX-License-Identifier: MIT
package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmaze/core"
)

// frame is one vertex on the explicit DFS stack.
type frame[V comparable, E core.WeightedEdge[V]] struct {
	v     V
	depth int
	edges []E
	next  int
}

// walker encapsulates state during DFS.
type walker[V comparable, E core.WeightedEdge[V]] struct {
	graph core.Graph[V, E]
	opts  Options[V, E]
	res   *Result[V, E]
	stack []frame[V, E]
}

// DFS performs depth-first search on g. With WithFullTraversal it covers
// every component and start is ignored; otherwise it starts from start.
// On error the partial result is returned alongside it.
func DFS[V comparable, E core.WeightedEdge[V]](g core.Graph[V, E], start V, opts ...Option[V, E]) (*Result[V, E], error) {
	o := DefaultOptions[V, E]()
	for _, opt := range opts {
		opt(&o)
	}

	vertices := g.AllVertices()
	if !o.FullTraversal && !slices.Contains(vertices, start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	res := &Result[V, E]{
		Order:   make([]V, 0, len(vertices)),
		Depth:   make(map[V]int, len(vertices)),
		Parent:  make(map[V]V, len(vertices)),
		Via:     make(map[V]E, len(vertices)),
		Visited: make(map[V]bool, len(vertices)),
	}
	w := &walker[V, E]{graph: g, opts: o, res: res}

	if !o.FullTraversal {
		return res, w.run(start)
	}
	for _, v := range vertices {
		if res.Visited[v] {
			continue
		}
		if err := w.run(v); err != nil {
			return res, err
		}
	}

	return res, nil
}

// run explores the tree rooted at root.
func (w *walker[V, E]) run(root V) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.edges) {
			if err := w.finish(top.v); err != nil {
				return err
			}
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		e := top.edges[top.next]
		top.next++
		curr, nbr, depth := top.v, e.To(), top.depth+1
		if nbr == curr {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(curr, nbr) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nbr] || (w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth) {
			continue
		}

		w.res.Parent[nbr] = curr
		w.res.Via[nbr] = e
		w.res.tree = append(w.res.tree, e)
		// discover may grow w.stack, so top must not be used after this.
		if err := w.discover(nbr, depth); err != nil {
			return err
		}
	}

	return nil
}

// discover marks v visited, runs the pre-order hook and pushes its frame.
func (w *walker[V, E]) discover(v V, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	edges := w.graph.OutgoingEdgesFrom(v)
	if w.opts.NeighborOrder != nil {
		edges = slices.Clone(edges)
		w.opts.NeighborOrder(edges)
	}
	w.stack = append(w.stack, frame[V, E]{v: v, depth: depth, edges: edges})

	return nil
}

// finish runs the post-order hook and records v as finished.
func (w *walker[V, E]) finish(v V) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}
	w.res.Order = append(w.res.Order, v)

	return nil
}
