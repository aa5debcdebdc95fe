package tabular

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config is the serializable rendering configuration of a table.
//
//	style: modern
//	padding: {left: 1, right: 1}
//	truncate: 30
//	columns:
//	  0: {align: right, width: "fixed:6"}
//	  1: {width: "max:12", truncate: 12}
//	  2: {width: "40%"}
type Config struct {
	Style        Style                `yaml:"style"`
	Padding      *Padding             `yaml:"padding,omitempty"`
	Spacing      int                  `yaml:"spacing,omitempty"`
	VAlign       VAlign               `yaml:"valign"`
	Truncate     int                  `yaml:"truncate,omitempty"`
	Width        int                  `yaml:"width,omitempty"`
	RowSeparator bool                 `yaml:"row_separator,omitempty"`
	Columns      map[int]ColumnConfig `yaml:"columns,omitempty"`
}

// ColumnConfig configures one column.
type ColumnConfig struct {
	Align    *Alignment `yaml:"align,omitempty"`
	Width    Constraint `yaml:"width,omitempty"`
	Truncate int        `yaml:"truncate,omitempty"`
}

// LoadConfig decodes a YAML configuration document. Unknown fields are
// rejected. An empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// WriteConfig encodes cfg as YAML.
func WriteConfig(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// ConfigOf captures the rendering configuration of t.
func ConfigOf(t *Table) Config {
	cfg := Config{
		Style:        t.style,
		Spacing:      t.spacing,
		VAlign:       t.valign,
		Truncate:     t.truncate,
		Width:        t.available,
		RowSeparator: t.rowSeparator,
	}
	if t.padding != DefaultPadding {
		p := t.padding
		cfg.Padding = &p
	}
	set := func(col int, fn func(*ColumnConfig)) {
		if cfg.Columns == nil {
			cfg.Columns = map[int]ColumnConfig{}
		}
		cc := cfg.Columns[col]
		fn(&cc)
		cfg.Columns[col] = cc
	}
	for col, c := range t.constraints {
		set(col, func(cc *ColumnConfig) { cc.Width = c })
	}
	for col, a := range t.aligns {
		set(col, func(cc *ColumnConfig) { cc.Align = &a })
	}
	for col, limit := range t.colTruncate {
		set(col, func(cc *ColumnConfig) { cc.Truncate = limit })
	}
	return cfg
}

// Apply configures t from cfg. On error t is left unchanged.
func (cfg Config) Apply(t *Table) error {
	c := t.Clone()
	c.SetStyle(cfg.Style)
	c.SetVAlign(cfg.VAlign)
	c.SetRowSeparator(cfg.RowSeparator)
	if cfg.Padding != nil {
		if err := c.SetPadding(*cfg.Padding); err != nil {
			return err
		}
	}
	if err := c.SetSpacing(cfg.Spacing); err != nil {
		return err
	}
	if err := c.SetTruncate(cfg.Truncate); err != nil {
		return err
	}
	if err := c.SetAvailableWidth(cfg.Width); err != nil {
		return err
	}
	for _, col := range slices.Sorted(maps.Keys(cfg.Columns)) {
		cc := cfg.Columns[col]
		if err := c.SetConstraint(col, cc.Width); err != nil {
			return fmt.Errorf("column %d: %w", col, err)
		}
		if cc.Align != nil {
			if err := c.Align(col, *cc.Align); err != nil {
				return err
			}
		}
		if err := c.SetColumnTruncate(col, cc.Truncate); err != nil {
			return fmt.Errorf("column %d: %w", col, err)
		}
	}
	*t = *c
	return nil
}
