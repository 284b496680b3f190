package deque_test

import (
	"slices"
	"sync"
	"testing"

	"github.com/on-the-ground/pure_deque/pure/deque"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeque_Empty(t *testing.T) {
	var d deque.Deque[int]
	assert.True(t, d.IsEmpty())
	assert.True(t, deque.Empty[int]().IsEmpty())
	assert.Equal(t, 0, d.Len())

	_, err := d.PeekLeft()
	assert.ErrorIs(t, err, deque.ErrEmptyDeque)
	_, err = d.PeekRight()
	assert.ErrorIs(t, err, deque.ErrEmptyDeque)

	same, err := d.DequeueLeft()
	assert.ErrorIs(t, err, deque.ErrEmptyDeque)
	assert.True(t, same.IsEmpty())
	same, err = d.DequeueRight()
	assert.ErrorIs(t, err, deque.ErrEmptyDeque)
	assert.True(t, same.IsEmpty())

	_, _, err = d.PopLeft()
	assert.ErrorIs(t, err, deque.ErrEmptyDeque)
	_, _, err = d.PopRight()
	assert.ErrorIs(t, err, deque.ErrEmptyDeque)

	assert.Empty(t, slices.Collect(d.All()))
	assert.Equal(t, "[]", d.String())
}

func TestDeque_ZeroValueElementIsNotEmpty(t *testing.T) {
	d := deque.Empty[int]().EnqueueLeft(0)
	v, err := d.PeekLeft()
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	assert.False(t, d.IsEmpty())
}

func TestDeque_EnqueueRightKeepsOrder(t *testing.T) {
	d := deque.Empty[int]()
	for i := 1; i <= 6; i++ {
		d = d.EnqueueRight(i)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, slices.Collect(d.All()))

	left, err := d.PeekLeft()
	require.NoError(t, err)
	assert.Equal(t, 1, left)
	right, err := d.PeekRight()
	require.NoError(t, err)
	assert.Equal(t, 6, right)
	assert.Equal(t, 6, d.Len())
}

func TestDeque_DequeueLeftDrainsInOrder(t *testing.T) {
	d := deque.Of(1, 2, 3, 4, 5, 6)

	var got []int
	for range 6 {
		v, err := d.PeekLeft()
		require.NoError(t, err)
		got = append(got, v)
		d, err = d.DequeueLeft()
		require.NoError(t, err)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
	assert.True(t, d.IsEmpty())

	_, err := d.DequeueLeft()
	assert.ErrorIs(t, err, deque.ErrEmptyDeque)
}

func TestDeque_AlternatingEnds(t *testing.T) {
	d := deque.Empty[int]().
		EnqueueLeft(1).
		EnqueueRight(2).
		EnqueueLeft(3).
		EnqueueRight(4)
	assert.Equal(t, []int{3, 1, 2, 4}, slices.Collect(d.All()))
	assert.Equal(t, "[3 1 2 4]", d.String())
}

func TestDeque_StructuralSharing(t *testing.T) {
	d1 := deque.Empty[int]().EnqueueRight(1).EnqueueRight(2)
	d2 := d1.EnqueueRight(3)
	d3 := d1.EnqueueRight(4)

	assert.Equal(t, []int{1, 2}, slices.Collect(d1.All()))
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(d2.All()))
	assert.Equal(t, []int{1, 2, 4}, slices.Collect(d3.All()))
}

func TestDeque_VersionsSurviveDeepCascades(t *testing.T) {
	const n = 500
	versions := make([]deque.Deque[int], 0, n+1)
	d := deque.Empty[int]()
	versions = append(versions, d)
	for i := range n {
		if i%2 == 0 {
			d = d.EnqueueLeft(i)
		} else {
			d = d.EnqueueRight(i)
		}
		versions = append(versions, d)
	}

	for i, v := range versions {
		assert.Equal(t, i, v.Len())
		assert.Equal(t, i, len(slices.Collect(v.All())))
	}

	// dequeuing from an old version leaves the newer ones intact
	mid := versions[n/2]
	before := slices.Collect(versions[n].All())
	for !mid.IsEmpty() {
		var err error
		mid, err = mid.DequeueRight()
		require.NoError(t, err)
	}
	assert.Equal(t, before, slices.Collect(versions[n].All()))
}

func TestDeque_PersistenceAfterEnqueue(t *testing.T) {
	d := deque.Of(1, 2, 3, 4, 5, 6, 7, 8, 9)
	beforeLeft, _ := d.PeekLeft()
	beforeRight, _ := d.PeekRight()
	before := slices.Collect(d.All())

	_ = d.EnqueueLeft(0).EnqueueLeft(-1).EnqueueRight(10)

	afterLeft, _ := d.PeekLeft()
	afterRight, _ := d.PeekRight()
	assert.Equal(t, beforeLeft, afterLeft)
	assert.Equal(t, beforeRight, afterRight)
	assert.Equal(t, before, slices.Collect(d.All()))
}

func TestDeque_RoundTrips(t *testing.T) {
	for n := range 40 {
		d := deque.Collect(slices.Values(makeRange(n)))
		want := slices.Collect(d.All())

		left, err := d.EnqueueLeft(-1).DequeueLeft()
		require.NoError(t, err)
		assert.Equal(t, want, slices.Collect(left.All()), "left round trip at n=%d", n)

		right, err := d.EnqueueRight(-1).DequeueRight()
		require.NoError(t, err)
		assert.Equal(t, want, slices.Collect(right.All()), "right round trip at n=%d", n)
	}
}

func TestDeque_DrainFromEitherEnd(t *testing.T) {
	for n := 1; n <= 64; n++ {
		d := deque.Empty[int]()
		for i := range n {
			if i%3 == 0 {
				d = d.EnqueueLeft(i)
			} else {
				d = d.EnqueueRight(i)
			}
		}
		want := slices.Collect(d.All())

		fromLeft := d
		for i := range n {
			require.False(t, fromLeft.IsEmpty(), "empty after %d of %d", i, n)
			var v int
			var err error
			v, fromLeft, err = fromLeft.PopLeft()
			require.NoError(t, err)
			assert.Equal(t, want[i], v)
		}
		assert.True(t, fromLeft.IsEmpty())

		fromRight := d
		for i := n - 1; i >= 0; i-- {
			var v int
			var err error
			v, fromRight, err = fromRight.PopRight()
			require.NoError(t, err)
			assert.Equal(t, want[i], v)
		}
		assert.True(t, fromRight.IsEmpty())
	}
}

func TestDeque_BackwardIsReverseOfAll(t *testing.T) {
	d := deque.Of(makeRange(37)...)
	forward := slices.Collect(d.All())
	backward := slices.Collect(d.Backward())
	slices.Reverse(backward)
	assert.Equal(t, forward, backward)
}

func TestDeque_AllIsRestartableAndStopsEarly(t *testing.T) {
	d := deque.Of(makeRange(20)...)
	assert.Equal(t, slices.Collect(d.All()), slices.Collect(d.All()))

	var firstThree []int
	for v := range d.All() {
		if len(firstThree) == 3 {
			break
		}
		firstThree = append(firstThree, v)
	}
	assert.Equal(t, []int{0, 1, 2}, firstThree)
}

func TestDeque_ConcurrentReadersShareVersions(t *testing.T) {
	base := deque.Of(makeRange(100)...)
	want := slices.Collect(base.All())

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			d := base
			for i := range 50 {
				d = d.EnqueueLeft(g*1000 + i)
				d, _ = d.DequeueRight()
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, want, slices.Collect(base.All()))
}

func makeRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
