package staticvec_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/comalice/staticvec"
	"github.com/comalice/staticvec/testutil"
)

type (
	vec3 = Vector[int, Cap3[int]]
	vec5 = Vector[int, Cap5[int]]
	vec6 = Vector[int, Cap6[int]]
	vec8 = Vector[int, Cap8[int]]
)

func elems[S Storage[int]](v *Vector[int, S]) []int {
	return v.AppendTo([]int{})
}

func mustOf[S Storage[int]](t *testing.T, xs ...int) Vector[int, S] {
	t.Helper()
	v, err := Of[int, S](xs...)
	require.NoError(t, err)
	return v
}

func TestZeroValueIsEmpty(t *testing.T) {
	var v vec5
	assert.True(t, v.Empty())
	assert.False(t, v.Full())
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 5, v.Cap())
}

func TestMake(t *testing.T) {
	for count := 0; count <= 5; count++ {
		v, err := Make[int, Cap5[int]](count)
		require.NoError(t, err)
		assert.Equal(t, count, v.Len())
		for x := range v.Values() {
			assert.Equal(t, 0, x)
		}
	}
}

func TestMakeOverCapacityReturnsEmpty(t *testing.T) {
	v, err := Make[int, Cap5[int]](6)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.True(t, v.Empty())

	_, err = Make[int, Cap5[int]](-1)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestConstructors(t *testing.T) {
	t.Run("filled", func(t *testing.T) {
		v, err := Filled[int, Cap5[int]](3, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 1, 1}, elems(&v))
	})

	t.Run("of", func(t *testing.T) {
		v := mustOf[Cap5[int]](t, 1, 2)
		assert.Equal(t, []int{1, 2}, elems(&v))

		_, err := Of[int, Cap5[int]](1, 2, 3, 4, 5, 6)
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})

	t.Run("of len pads with zero values", func(t *testing.T) {
		v, err := OfLen[int, Cap5[int]](4, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 0, 0}, elems(&v))

		v, err = OfLen[int, Cap5[int]](1, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, elems(&v))

		_, err = OfLen[int, Cap5[int]](6, 1)
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})

	t.Run("from slice", func(t *testing.T) {
		src := []int{1, 2, 3, 4}
		v, err := FromSlice[int, Cap5[int]](src[:2])
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, elems(&v))
	})

	t.Run("from seq", func(t *testing.T) {
		v, err := FromSeq[int, Cap5[int]](slices.Values([]int{1, 2, 3}))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, elems(&v))

		v, err = FromSeq[int, Cap5[int]](slices.Values([]int{1, 2, 3, 4, 5, 6}))
		assert.ErrorIs(t, err, ErrCapacityExceeded)
		assert.True(t, v.Empty())
	})

	t.Run("from iterator range", func(t *testing.T) {
		src := mustOf[Cap8[int]](t, 1, 2, 3, 4)
		v, err := FromSeq[int, Cap3[int]](Range(src.CBegin().Add(1), src.CEnd()))
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3, 4}, elems(&v))
	})

	t.Run("make func", func(t *testing.T) {
		v, err := MakeFunc[int, Cap5[int]](3, func(i int, p *int) error {
			*p = i * 10
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 10, 20}, elems(&v))
	})

	t.Run("make func failure returns empty", func(t *testing.T) {
		fail := testutil.FailAfter(2)
		v, err := MakeFunc[int, Cap5[int]](4, func(_ int, p *int) error { return fail(p) })
		require.ErrorIs(t, err, testutil.ErrInjected)
		assert.True(t, v.Empty())
	})
}

func TestAccess(t *testing.T) {
	v := mustOf[Cap5[int]](t, 1, 2, 3, 4, 5)

	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, x)

	x, err = v.At(4)
	require.NoError(t, err)
	assert.Equal(t, 5, x)

	front, err := v.Front()
	require.NoError(t, err)
	assert.Equal(t, 1, front)

	back, err := v.Back()
	require.NoError(t, err)
	assert.Equal(t, 5, back)

	p, err := v.Ref(2)
	require.NoError(t, err)
	*p = 30
	x, _ = v.At(2)
	assert.Equal(t, 30, x)

	assert.True(t, v.Full())
	assert.Equal(t, 5, v.Len())
}

func TestAccessOutOfRange(t *testing.T) {
	v := mustOf[Cap5[int]](t, 1, 2, 3)
	for _, i := range []int{-1, 3, 5, 100} {
		_, err := v.At(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", i)
	}
	assert.Equal(t, 3, v.Len())

	var empty vec5
	_, err := empty.Front()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = empty.Back()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestTakeMovesOut(t *testing.T) {
	var v Vector[testutil.Resource, Cap3[testutil.Resource]]
	_, err := v.PushBack(testutil.NewResource(7, 16))
	require.NoError(t, err)

	r, err := v.Take(0)
	require.NoError(t, err)
	assert.Equal(t, 7, r.ID)
	assert.Len(t, r.Data, 16)

	assert.Equal(t, 1, v.Len(), "take keeps the slot")
	left, _ := v.At(0)
	assert.Nil(t, left.Data)

	_, err = v.Take(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestIteration(t *testing.T) {
	v := mustOf[Cap5[int]](t, 1, 2, 3)

	sum := 0
	for x := range v.Values() {
		sum += x
	}
	assert.Equal(t, 6, sum)

	var idx []int
	for i := range v.All() {
		idx = append(idx, i)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)

	var back []int
	for _, x := range v.Backward() {
		back = append(back, x)
	}
	assert.Equal(t, []int{3, 2, 1}, back)

	// (((0^2)+3)^2+2)^2+1
	acc := 0
	for _, x := range v.Backward() {
		acc = acc*acc + x
	}
	assert.Equal(t, 122, acc)
}

func TestString(t *testing.T) {
	v := mustOf[Cap5[int]](t, 1, 2, 3)
	assert.Equal(t, "[1 2 3]", v.String())
}

func TestValueSemantics(t *testing.T) {
	a := mustOf[Cap5[int]](t, 1, 2, 3)
	b := a
	_, err := b.PushBack(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, elems(&a))
	assert.Equal(t, []int{1, 2, 3, 4}, elems(&b))
}

func TestErrorsWrapSentinels(t *testing.T) {
	var v vec3
	_, err := v.At(0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Contains(t, err.Error(), "index 0, length 0")

	err = v.AppendN(4, 1)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.Contains(t, err.Error(), "need 4, capacity 3")
}

func TestCapacities(t *testing.T) {
	caps := Capacities()
	require.NotEmpty(t, caps)
	assert.True(t, slices.IsSorted(caps))
	assert.Equal(t, 1, caps[0])
	assert.Contains(t, caps, 16)

	var v Vector[int, Cap1024[int]]
	assert.Equal(t, caps[len(caps)-1], v.Cap())

	caps[0] = -1
	assert.Equal(t, 1, Capacities()[0], "returns a copy")
}
