package tabular_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bjaus/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
style: modern
padding: {left: 0, right: 2}
spacing: 1
valign: middle
truncate: 10
width: 90
row_separator: true
columns:
  0: {align: right, width: "fixed:6"}
  1: {width: "40%", truncate: 4}
`

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	cfg, err := tabular.LoadConfig(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, tabular.Modern, cfg.Style)
	require.NotNil(t, cfg.Padding)
	assert.Equal(t, tabular.Padding{Left: 0, Right: 2}, *cfg.Padding)
	assert.Equal(t, 1, cfg.Spacing)
	assert.Equal(t, tabular.VAlignMiddle, cfg.VAlign)
	assert.Equal(t, 10, cfg.Truncate)
	assert.Equal(t, 90, cfg.Width)
	assert.True(t, cfg.RowSeparator)
	require.Len(t, cfg.Columns, 2)
	require.NotNil(t, cfg.Columns[0].Align)
	assert.Equal(t, tabular.AlignRight, *cfg.Columns[0].Align)
	assert.Equal(t, tabular.Fixed(6), cfg.Columns[0].Width)
	assert.Nil(t, cfg.Columns[1].Align)
	assert.Equal(t, tabular.Proportional(40), cfg.Columns[1].Width)
	assert.Equal(t, 4, cfg.Columns[1].Truncate)
}

func TestLoadConfigEmpty(t *testing.T) {
	t.Parallel()
	cfg, err := tabular.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, tabular.Config{}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"unknown field":      "colour: red\n",
		"unknown style":      "style: fancy\n",
		"unknown alignment":  "columns:\n  0: {align: sideways}\n",
		"bad constraint":     "columns:\n  0: {width: \"huge\"}\n",
		"proportion too big": "columns:\n  0: {width: \"150%\"}\n",
		"malformed":          "style: [modern\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := tabular.LoadConfig(strings.NewReader(doc))
			assert.ErrorIs(t, err, tabular.ErrInvalidConfig)
		})
	}
}

func TestConfigApply(t *testing.T) {
	t.Parallel()
	cfg, err := tabular.LoadConfig(strings.NewReader(sampleConfig))
	require.NoError(t, err)

	tbl := people()
	require.NoError(t, cfg.Apply(tbl))

	assert.Equal(t, tabular.Modern, tbl.Style())
	assert.Equal(t, tabular.Padding{Right: 2}, tbl.Padding())
	assert.Equal(t, 1, tbl.Spacing())
	assert.Equal(t, tabular.VAlignMiddle, tbl.VAlign())
	assert.Equal(t, 10, tbl.Truncate())
	assert.Equal(t, 90, tbl.AvailableWidth())
	c, _ := tbl.Constraint(0)
	assert.Equal(t, tabular.Fixed(6), c)
	c, _ = tbl.Constraint(1)
	assert.Equal(t, tabular.Proportional(40), c)
	a, _ := tbl.ColumnAlignment(0)
	assert.Equal(t, tabular.AlignRight, a)
	limit, _ := tbl.ColumnTruncate(1)
	assert.Equal(t, 4, limit)

	for _, l := range lines(tbl.Render()) {
		assert.Len(t, []rune(l), 90, l)
	}
}

func TestConfigApplyErrorLeavesTable(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cfg  tabular.Config
		want error
	}{
		"negative spacing": {
			cfg:  tabular.Config{Style: tabular.Markdown, Spacing: -1},
			want: tabular.ErrNegativeValue,
		},
		"negative padding": {
			cfg:  tabular.Config{Style: tabular.Markdown, Padding: &tabular.Padding{Left: -1}},
			want: tabular.ErrNegativeValue,
		},
		"proportion sum": {
			cfg: tabular.Config{Style: tabular.Markdown, Columns: map[int]tabular.ColumnConfig{
				0: {Width: tabular.Proportional(70)},
				1: {Width: tabular.Proportional(70)},
			}},
			want: tabular.ErrInvalidProportion,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl := people()
			before := tbl.Render()
			assert.ErrorIs(t, tt.cfg.Apply(tbl), tt.want)
			assert.Equal(t, tabular.Classic, tbl.Style())
			assert.Equal(t, before, tbl.Render())
		})
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()
	tbl := people().SetStyle(tabular.Compact).SetVAlign(tabular.VAlignBottom)
	require.NoError(t, tbl.SetPadding(tabular.UniformPadding(2)))
	require.NoError(t, tbl.SetConstraint(0, tabular.Min(8)))
	require.NoError(t, tbl.SetConstraint(3, tabular.Wrap(20)))
	require.NoError(t, tbl.Align(1, tabular.AlignCenter))
	require.NoError(t, tbl.SetTruncate(12))
	require.NoError(t, tbl.SetColumnTruncate(0, 3))

	cfg := tabular.ConfigOf(tbl)
	var buf bytes.Buffer
	require.NoError(t, tabular.WriteConfig(&buf, cfg))
	assert.Contains(t, buf.String(), "style: compact")
	assert.Contains(t, buf.String(), "min:8")
	assert.Contains(t, buf.String(), "truncate: 3")

	got, err := tabular.LoadConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	fresh := people()
	require.NoError(t, got.Apply(fresh))
	assert.Equal(t, tbl.Render(), fresh.Render())
}

func TestConfigOfDefaults(t *testing.T) {
	t.Parallel()
	cfg := tabular.ConfigOf(tabular.New())
	assert.Nil(t, cfg.Padding)
	assert.Nil(t, cfg.Columns)
	assert.Equal(t, tabular.Classic, cfg.Style)
}
