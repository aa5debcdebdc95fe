package tabular_test

import (
	"testing"

	"github.com/bjaus/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerValues(t *testing.T, tbl *tabular.Table) []string {
	t.Helper()
	h, ok := tbl.Headers()
	require.True(t, ok)
	return h.Values()
}

func TestAddColumn(t *testing.T) {
	t.Parallel()
	tbl := tabular.New().Header("A", "B").Row("1", "2").Row("3")
	tbl.AddColumn(tabular.AlignRight, "C", "x")

	assert.Equal(t, []string{"A", "B", "C"}, headerValues(t, tbl))
	rows := tbl.Rows()
	assert.Equal(t, []string{"1", "2", "x"}, rows[0].Values())
	assert.Equal(t, []string{"3", "", ""}, rows[1].Values(), "short rows are padded first")

	a, ok := tbl.ColumnAlignment(2)
	require.True(t, ok)
	assert.Equal(t, tabular.AlignRight, a)
}

func TestInsertColumn(t *testing.T) {
	t.Parallel()
	tbl := tabular.New().Header("A", "B").Row("1", "2")
	require.NoError(t, tbl.SetConstraint(1, tabular.Fixed(4)))
	require.NoError(t, tbl.Align(1, tabular.AlignRight))

	require.NoError(t, tbl.InsertColumn(1, tabular.AlignCenter, "X", "9"))
	assert.Equal(t, []string{"A", "X", "B"}, headerValues(t, tbl))
	assert.Equal(t, []string{"1", "9", "2"}, tbl.Rows()[0].Values())

	_, ok := tbl.Constraint(1)
	assert.False(t, ok)
	c, ok := tbl.Constraint(2)
	require.True(t, ok)
	assert.Equal(t, tabular.Fixed(4), c)

	a, _ := tbl.ColumnAlignment(1)
	assert.Equal(t, tabular.AlignCenter, a)
	a, _ = tbl.ColumnAlignment(2)
	assert.Equal(t, tabular.AlignRight, a)
}

func TestInsertColumnAtEnd(t *testing.T) {
	t.Parallel()
	tbl := tabular.New().Header("A").Row("1")
	require.NoError(t, tbl.InsertColumn(1, tabular.AlignLeft, "B", "2"))
	assert.Equal(t, []string{"A", "B"}, headerValues(t, tbl))
	assert.Equal(t, []string{"1", "2"}, tbl.Rows()[0].Values())
}

func TestInsertColumnErrors(t *testing.T) {
	t.Parallel()
	tbl := tabular.New().Header("A", "B", "C")
	wide, err := tabular.NewCell("ab").WithSpan(2)
	require.NoError(t, err)
	require.NoError(t, tbl.AddRow(tabular.RowOf(wide, tabular.NewCell("c"))))
	before := tbl.Render()

	err = tbl.InsertColumn(1, tabular.AlignLeft, "X")
	require.ErrorIs(t, err, tabular.ErrSpanConflict)
	assert.Equal(t, before, tbl.Render())

	err = tbl.InsertColumn(4, tabular.AlignLeft, "X")
	require.ErrorIs(t, err, tabular.ErrIndexOutOfRange)
	assert.Equal(t, before, tbl.Render())

	require.NoError(t, tbl.InsertColumn(2, tabular.AlignLeft, "X", "x"))
	assert.Equal(t, []string{"ab", "x", "c"}, tbl.Rows()[0].Values())
}

func TestRemoveColumn(t *testing.T) {
	t.Parallel()
	tbl := tabular.New().Header("A", "B", "C").Row("1", "2", "3")
	require.NoError(t, tbl.SetConstraint(2, tabular.Min(5)))
	require.NoError(t, tbl.Align(1, tabular.AlignRight))

	require.True(t, tbl.RemoveColumn(1))
	assert.Equal(t, []string{"A", "C"}, headerValues(t, tbl))
	assert.Equal(t, []string{"1", "3"}, tbl.Rows()[0].Values())
	assert.Equal(t, 2, tbl.Cols())

	c, ok := tbl.Constraint(1)
	require.True(t, ok)
	assert.Equal(t, tabular.Min(5), c)
	_, ok = tbl.ColumnAlignment(1)
	assert.False(t, ok)

	assert.False(t, tbl.RemoveColumn(9))
	assert.False(t, tbl.RemoveColumn(-1))
}

func TestRemoveColumnShrinksSpan(t *testing.T) {
	t.Parallel()
	tbl := tabular.New().Header("A", "B", "C")
	wide, err := tabular.NewCell("ab").WithSpan(2)
	require.NoError(t, err)
	require.NoError(t, tbl.AddRow(tabular.RowOf(wide, tabular.NewCell("c"))))

	require.True(t, tbl.RemoveColumn(0))
	r := tbl.Rows()[0]
	got, ok := r.Cell(0)
	require.True(t, ok)
	assert.Equal(t, "ab", got.Content())
	assert.Equal(t, 1, got.Span())
	assert.Equal(t, 2, tbl.Cols())
}
