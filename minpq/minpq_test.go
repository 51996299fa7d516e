// SPDX-License-Identifier: MIT
// Package minpq_test runs the MinPQ contract against every implementation.
package minpq_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/minpq"
)

// implementations lists the factories under test.
func implementations() map[string]minpq.Factory[string] {
	return map[string]minpq.Factory[string]{
		"ArrayHeap": minpq.ArrayHeapFactory[string](),
		"TreeMap":   minpq.TreeMapFactory[string](minpq.WithDegree(2)),
	}
}

func TestMinPQ_Empty(t *testing.T) {
	for name, newPQ := range implementations() {
		t.Run(name, func(t *testing.T) {
			pq := newPQ()
			assert.True(t, pq.IsEmpty())
			assert.Zero(t, pq.Size())

			_, err := pq.PeekMin()
			assert.ErrorIs(t, err, minpq.ErrEmptyQueue)
			_, err = pq.RemoveMin()
			assert.ErrorIs(t, err, minpq.ErrEmptyQueue)
		})
	}
}

func TestMinPQ_AddRemoveOrder(t *testing.T) {
	for name, newPQ := range implementations() {
		t.Run(name, func(t *testing.T) {
			pq := newPQ()
			require.NoError(t, pq.Add("c", 3))
			require.NoError(t, pq.Add("a", 1))
			require.NoError(t, pq.Add("d", 4))
			require.NoError(t, pq.Add("b", 2))

			top, err := pq.PeekMin()
			require.NoError(t, err)
			assert.Equal(t, "a", top)
			assert.Equal(t, 4, pq.Size(), "PeekMin must not remove")

			var got []string
			for !pq.IsEmpty() {
				item, err := pq.RemoveMin()
				require.NoError(t, err)
				assert.False(t, pq.Contains(item))
				got = append(got, item)
			}
			assert.Equal(t, []string{"a", "b", "c", "d"}, got)
		})
	}
}

func TestMinPQ_Duplicate(t *testing.T) {
	for name, newPQ := range implementations() {
		t.Run(name, func(t *testing.T) {
			pq := newPQ()
			require.NoError(t, pq.Add("a", 1))
			assert.ErrorIs(t, pq.Add("a", 0), minpq.ErrDuplicateItem)
			assert.Equal(t, 1, pq.Size())
		})
	}
}

func TestMinPQ_ChangePriority(t *testing.T) {
	for name, newPQ := range implementations() {
		t.Run(name, func(t *testing.T) {
			pq := newPQ()
			for i, s := range []string{"a", "b", "c", "d", "e"} {
				require.NoError(t, pq.Add(s, float64(i)))
			}

			// Decrease to the front.
			require.NoError(t, pq.ChangePriority("e", -1))
			top, _ := pq.PeekMin()
			assert.Equal(t, "e", top)

			// Increase to the back.
			require.NoError(t, pq.ChangePriority("e", 10))
			require.NoError(t, pq.ChangePriority("a", 9))
			top, _ = pq.PeekMin()
			assert.Equal(t, "b", top)

			var got []string
			for !pq.IsEmpty() {
				item, _ := pq.RemoveMin()
				got = append(got, item)
			}
			assert.Equal(t, []string{"b", "c", "d", "a", "e"}, got)

			assert.ErrorIs(t, pq.ChangePriority("zzz", 1), minpq.ErrItemNotFound)
		})
	}
}

func TestMinPQ_Infinities(t *testing.T) {
	for name, newPQ := range implementations() {
		t.Run(name, func(t *testing.T) {
			pq := newPQ()
			require.NoError(t, pq.Add("inf", math.Inf(1)))
			require.NoError(t, pq.Add("neg", math.Inf(-1)))
			require.NoError(t, pq.Add("zero", 0))

			first, _ := pq.RemoveMin()
			second, _ := pq.RemoveMin()
			third, _ := pq.RemoveMin()
			assert.Equal(t, []string{"neg", "zero", "inf"}, []string{first, second, third})
		})
	}
}

func TestMinPQ_NaNRejected(t *testing.T) {
	for name, newPQ := range implementations() {
		t.Run(name, func(t *testing.T) {
			pq := newPQ()
			assert.ErrorIs(t, pq.Add("a", math.NaN()), minpq.ErrBadPriority)
			assert.False(t, pq.Contains("a"))

			require.NoError(t, pq.Add("a", 1))
			assert.ErrorIs(t, pq.ChangePriority("a", math.NaN()), minpq.ErrBadPriority)
		})
	}
}

func TestMinPQ_EqualPriorities(t *testing.T) {
	for name, newPQ := range implementations() {
		t.Run(name, func(t *testing.T) {
			pq := newPQ()
			want := []string{"a", "b", "c", "d"}
			for _, s := range want {
				require.NoError(t, pq.Add(s, 7))
			}
			var got []string
			for !pq.IsEmpty() {
				item, _ := pq.RemoveMin()
				got = append(got, item)
			}
			// Order among ties is unspecified; membership is not.
			sort.Strings(got)
			assert.Equal(t, want, got)
		})
	}
}

func TestArrayHeap_TieKeepsFirstAtRoot(t *testing.T) {
	h := minpq.NewArrayHeap[string]()
	require.NoError(t, h.Add("a", 3))
	require.NoError(t, h.Add("b", 3))
	require.NoError(t, h.Add("c", 3))

	top, err := h.PeekMin()
	require.NoError(t, err)
	assert.Equal(t, "a", top, "equal priority must not sift above the root")
	require.NoError(t, minpq.CheckArrayHeap(h))

	// A strictly smaller priority does move up.
	require.NoError(t, h.Add("d", 2))
	top, _ = h.PeekMin()
	assert.Equal(t, "d", top)
}

// TestArrayHeap_IndexLockStep checks the item→slot index after every operation.
func TestArrayHeap_IndexLockStep(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := minpq.NewArrayHeap[int](minpq.WithCapacity(16))

	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(3); {
		case op == 0 || h.IsEmpty():
			item := rng.Intn(200)
			if !h.Contains(item) {
				require.NoError(t, h.Add(item, rng.Float64()))
			}
		case op == 1:
			_, err := h.RemoveMin()
			require.NoError(t, err)
		default:
			top, _ := h.PeekMin()
			require.NoError(t, h.ChangePriority(top, rng.Float64()*2))
		}
		require.NoError(t, minpq.CheckArrayHeap(h), "step %d", step)
	}
}

func TestTreeMap_DropsEmptyBuckets(t *testing.T) {
	m := minpq.NewTreeMap[string]()
	require.NoError(t, m.Add("a", 1))
	require.NoError(t, m.Add("b", 1))
	require.NoError(t, m.Add("c", 2))
	assert.Equal(t, 2, minpq.TreeMapBuckets(m))

	require.NoError(t, m.ChangePriority("c", 1))
	assert.Equal(t, 1, minpq.TreeMapBuckets(m))

	for !m.IsEmpty() {
		_, err := m.RemoveMin()
		require.NoError(t, err)
	}
	assert.Zero(t, minpq.TreeMapBuckets(m))
}

// TestMinPQ_AgreeUnderRandomOps drives both implementations with the same
// operation sequence; removal priorities and membership must always agree.
func TestMinPQ_AgreeUnderRandomOps(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		heap := minpq.NewArrayHeap[int]()
		tree := minpq.NewTreeMap[int]()
		priority := make(map[int]float64)
		last := math.Inf(-1)

		for step := 0; step < 3000; step++ {
			item := rng.Intn(100)
			// Integral priorities so ties are common.
			p := float64(rng.Intn(20))

			switch rng.Intn(4) {
			case 0, 1:
				if _, ok := priority[item]; ok {
					assert.ErrorIs(t, heap.Add(item, p), minpq.ErrDuplicateItem)
					assert.ErrorIs(t, tree.Add(item, p), minpq.ErrDuplicateItem)
					continue
				}
				require.NoError(t, heap.Add(item, p))
				require.NoError(t, tree.Add(item, p))
				priority[item] = p
				last = math.Inf(-1)
			case 2:
				if _, ok := priority[item]; !ok {
					continue
				}
				require.NoError(t, heap.ChangePriority(item, p))
				require.NoError(t, tree.ChangePriority(item, p))
				priority[item] = p
				last = math.Inf(-1)
			default:
				if heap.IsEmpty() {
					require.True(t, tree.IsEmpty())
					continue
				}
				a, err := heap.RemoveMin()
				require.NoError(t, err)
				b, err := tree.PeekMin()
				require.NoError(t, err)

				require.Equal(t, priority[a], priority[b], "seed %d step %d", seed, step)
				// Consecutive removals never decrease.
				require.GreaterOrEqual(t, priority[a], last)
				last = priority[a]

				// Ties may surface different items; pull a out of the tree
				// so both queues keep holding the same set.
				require.NoError(t, tree.ChangePriority(a, math.Inf(-1)))
				got, err := tree.RemoveMin()
				require.NoError(t, err)
				require.Equal(t, a, got)
				delete(priority, a)
			}
		}
	}
}

func TestParseKind(t *testing.T) {
	k, err := minpq.ParseKind(" TreeMap ")
	require.NoError(t, err)
	assert.Equal(t, minpq.KindTreeMap, k)

	k, err = minpq.ParseKind("heap")
	require.NoError(t, err)
	assert.Equal(t, minpq.KindArrayHeap, k)

	_, err = minpq.ParseKind("fibonacci")
	assert.ErrorIs(t, err, minpq.ErrUnknownKind)

	_, err = minpq.New[int]("fibonacci")
	assert.ErrorIs(t, err, minpq.ErrUnknownKind)

	pq, err := minpq.New[int](minpq.KindTreeMap)
	require.NoError(t, err)
	assert.IsType(t, &minpq.TreeMap[int]{}, pq)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { minpq.WithCapacity(-1) })
	assert.Panics(t, func() { minpq.WithDegree(1) })
}
