package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderScenarios(t *testing.T) {
	tests := []struct {
		name  string
		b     *Builder
		final []int
	}{
		{
			name: "erase range",
			b: New("a", 6).Initial(1, 2, 3, 4, 5, 6).
				EraseRange(1, 3).Expect(1, 4, 5, 6),
			final: []int{1, 4, 5, 6},
		},
		{
			name: "resize",
			b: New("b", 6).Initial(1, 2, 3).
				ResizeWith(5, 100).Expect(1, 2, 3, 100, 100).
				Assign(1, 2, 3).
				Resize(1).Expect(1),
			final: []int{1},
		},
		{
			name: "insert sequence",
			b: New("c", 8).Initial(1, 2, 3).
				Insert(0, 100).
				InsertEnd(100).
				Insert(2, 50).
				InsertLast(4).
				InsertLast(5).Expect(100, 1, 5, 4, 50, 2, 3, 100).
				PushBack(0).Fails("capacity_exceeded").
				At(4, 50).
				AtFails(-1, "index_out_of_range"),
			final: []int{100, 1, 5, 4, 50, 2, 3, 100},
		},
		{
			name: "bulk and shrink",
			b: New("d", 5).
				InsertN(0, 3, 7).Expect(7, 7, 7).
				InsertValues(1, 1, 2).Expect(7, 1, 2, 7, 7).
				InsertN(0, 1, 0).Fails("capacity_exceeded").
				Erase(0).Expect(1, 2, 7, 7).
				ShrinkBy(1).
				ShrinkTo(1).Expect(1).
				Append(5, 6).
				PopBack().
				Clear().Expect(),
			final: nil,
		},
	}

	r := NewRunner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := tt.b.Build()
			require.NoError(t, err)
			res, err := r.Run(sc)
			require.NoError(t, err)
			assert.Equal(t, tt.final, res.Final)
		})
	}
}

func TestBuilderErrors(t *testing.T) {
	_, err := New("x", 2).Expect(1).Build()
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = New("x", 2).PushBack(1).Fails("melted").Build()
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = New("", 2).Build()
	assert.Error(t, err)
}

func TestBuilderCopiesInputs(t *testing.T) {
	xs := []int{1, 2}
	b := New("x", 4).Initial(xs...).Append(3).Expect(xs...)
	xs[0] = 9
	sc, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, sc.Initial)
	assert.Equal(t, []int{1, 2}, *sc.Steps[0].Expect)
}
