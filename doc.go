// Package tabular renders tables of strings as fixed-width text.
//
// A [Table] holds an optional header row, data rows, and the configuration
// that decides how they are laid out. Rendering resolves one width per
// column, fits every cell into its width by wrapping or truncating, and
// draws the result in one of five styles:
//
//   - [Classic] — ASCII borders (+-|)
//   - [Modern] — Unicode box-drawing borders
//   - [Minimal] — a single rule under the header, no borders
//   - [Compact] — column separators, no outer border
//   - [Markdown] — pipe table with a `---` separator row
//
// The quickest way in is [RenderData] or the fluent [Builder]:
//
//	out, err := tabular.NewBuilder().
//		Style(tabular.Modern).
//		Header("Name", "Age").
//		Row("Alice", "30").
//		Row("Bob", "5").
//		Render()
//
// # Widths
//
// Columns are sized by their widest line of content unless a [Constraint]
// says otherwise:
//
//   - [Fixed] — exactly n columns
//   - [Min] — at least n columns
//   - [Max] — at most n columns
//   - [Wrap] — n columns, always word-wrapped
//   - [Proportional] — p percent of the available width (see
//     [Table.SetAvailableWidth] and [TerminalWidth])
//
// Content wider than its column wraps at word boundaries. With
// [Table.SetTruncate], or [Table.SetColumnTruncate] for one column, it is
// cut to a single line ending in "..." instead, except in Wrap columns. Widths are measured in display columns, so wide
// characters line up.
//
// # Cells and spans
//
// A [Cell] may span several columns ([Cell.WithSpan]). Bordered styles merge
// the separators a span covers; Markdown repeats the pipes instead, which
// standard Markdown does not understand.
//
// # Rendering
//
// A table caches its layout until the next mutation, so rendering twice
// without changes yields identical output. [Table.Render] returns a string,
// [Table.AppendTo] appends into a reusable buffer, and [Table.WriteTo]
// writes to an [io.Writer].
//
// # Sources
//
// Types that implement [Rower] can be turned into a table with
// [FromRowers]. Optional interfaces configure it:
//
//   - [Headed] — header row
//   - [Bordered] — style
//   - [Aligned] — per-column alignment
//   - [Wrapped] — per-column Wrap constraints
//   - [Truncated] — per-column maximum widths, truncated with "..."
//
// # Configuration
//
// [LoadConfig] reads a YAML [Config] that [Config.Apply] applies to a table.
//
// # Errors
//
// Invalid configuration is reported when it is set and leaves the table
// unchanged. Rendering never fails. The package exports sentinel errors
// for use with [errors.Is]:
//
//   - [ErrInvalidSpan], [ErrSpanOverflow], [ErrSpanConflict] — bad spans
//   - [ErrNegativeValue], [ErrInvalidProportion] — bad sizes
//   - [ErrIndexOutOfRange] — bad row, cell, or column index
//   - [ErrUnknownStyle], [ErrUnknownAlignment], [ErrInvalidConstraint] — bad names
//   - [ErrInvalidConfig] — undecodable configuration
package tabular
