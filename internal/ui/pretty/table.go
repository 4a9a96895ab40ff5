package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/lcsstr/pkg/commonsub"
	"github.com/yaklabco/lcsstr/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 6 // SOURCE, KIND, POS1, POS2, LEN, NOTE
	minSourceWidth   = 10
	minKindWidth     = 7
	minNumberWidth   = 4
	minNoteWidth     = 12
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
	emptyCell        = "-"
)

// RowKind names what a table row reports.
type RowKind string

// Row kinds.
const (
	KindLongest RowKind = "longest"
	KindRandom  RowKind = "random"
	KindStats   RowKind = "stats"
	KindError   RowKind = "error"
)

// TableRow represents a single row in the results table.
type TableRow struct {
	Source string
	Kind   RowKind
	Pos1   string
	Pos2   string
	Length string
	Note   string

	// NoMatch marks a longest or random row that found nothing.
	NoMatch bool
}

// TableFormatter formats pair results as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// FormatTable formats runner results as a styled table, one group of rows
// per pair.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil || len(result.Pairs) == 0 {
		return ""
	}

	groups := make([][]TableRow, 0, len(result.Pairs))
	for _, pair := range result.Pairs {
		groups = append(groups, PairRows(pair))
	}

	widths := t.calculateColumnWidths(groups)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	for i, group := range groups {
		if i > 0 {
			builder.WriteString(t.formatSeparator(widths, lightSeparator))
			builder.WriteString("\n")
		}
		for _, row := range group {
			builder.WriteString(t.formatRow(row, widths))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	builder.WriteString(t.formatLegend())
	builder.WriteString("\n")

	return builder.String()
}

// PairRows converts one pair outcome into table rows.
func PairRows(pair runner.PairOutcome) []TableRow {
	source := pair.Source
	if pair.Line > 0 {
		source = fmt.Sprintf("%s:%d", pair.Source, pair.Line)
	}
	if source == "" {
		source = emptyCell
	}

	if pair.Error != nil {
		return []TableRow{{
			Source: source,
			Kind:   KindError,
			Pos1:   emptyCell,
			Pos2:   emptyCell,
			Length: emptyCell,
			Note:   pair.Error.Error(),
		}}
	}

	var rows []TableRow
	if pair.Result == nil {
		return rows
	}

	if pair.Result.Longest != nil {
		rows = append(rows, matchRow(source, KindLongest, *pair.Result.Longest))
	}
	if pair.Result.Random != nil {
		rows = append(rows, matchRow(source, KindRandom, *pair.Result.Random))
	}
	if pair.Result.Stats != nil {
		rows = append(rows, TableRow{
			Source: source,
			Kind:   KindStats,
			Pos1:   emptyCell,
			Pos2:   emptyCell,
			Length: emptyCell,
			Note:   fmt.Sprintf("count %d, sum %d", pair.Result.Stats.Count, pair.Result.Stats.SumLength),
		})
	}

	return rows
}

func matchRow(source string, kind RowKind, match commonsub.Match) TableRow {
	row := TableRow{
		Source:  source,
		Kind:    kind,
		Pos1:    strconv.Itoa(match.Pos1),
		Pos2:    strconv.Itoa(match.Pos2),
		Length:  strconv.Itoa(match.Length),
		NoMatch: !match.Found(),
	}
	if row.NoMatch {
		row.Note = "no match"
	}
	return row
}

type columnWidths struct {
	source int
	kind   int
	pos1   int
	pos2   int
	length int
	note   int
}

// calculateColumnWidths determines optimal column widths based on content.
func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		source: minSourceWidth,
		kind:   minKindWidth,
		pos1:   minNumberWidth,
		pos2:   minNumberWidth,
		length: minNumberWidth,
		note:   minNoteWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			widths.source = max(widths.source, len(row.Source))
			widths.kind = max(widths.kind, len(row.Kind))
			widths.pos1 = max(widths.pos1, len(row.Pos1))
			widths.pos2 = max(widths.pos2, len(row.Pos2))
			widths.length = max(widths.length, len(row.Length))
			widths.note = max(widths.note, len(row.Note))
		}
	}

	// Constrain to terminal width, shrinking the note first.
	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.note = max(minNoteWidth, widths.note-excess)

		totalWidth = t.calculateTotalWidth(widths)
		if totalWidth > t.termWidth {
			excess = totalWidth - t.termWidth
			widths.source = max(minSourceWidth, widths.source-excess)
		}
	}

	return widths
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.source + widths.kind + widths.pos1 + widths.pos2 + widths.length + widths.note +
		(tablePadding * tableColumnCount)
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %*s  %*s  %*s  %-*s",
		widths.source, "SOURCE",
		widths.kind, "KIND",
		widths.pos1, "POS1",
		widths.pos2, "POS2",
		widths.length, "LEN",
		widths.note, "NOTE",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.calculateTotalWidth(widths)))
}

// formatRow formats a single table row with kind-based styling.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	content := fmt.Sprintf(" %-*s  %-*s  %*s  %*s  %*s  %-*s",
		widths.source, truncateSource(row.Source, widths.source),
		widths.kind, string(row.Kind),
		widths.pos1, row.Pos1,
		widths.pos2, row.Pos2,
		widths.length, row.Length,
		widths.note, truncateString(row.Note, widths.note),
	)
	return t.rowStyle(row).Render(content)
}

// rowStyle returns the style for a row.
func (t *TableFormatter) rowStyle(row TableRow) lipgloss.Style {
	if row.NoMatch {
		return t.styles.TableNoMatchRow
	}
	switch row.Kind {
	case KindLongest:
		return t.styles.TableLongestRow
	case KindRandom:
		return t.styles.TableRandomRow
	case KindStats:
		return t.styles.TableStatsRow
	case KindError:
		return t.styles.TableErrorRow
	default:
		return lipgloss.NewStyle()
	}
}

// formatLegend formats the legend explaining the columns.
func (t *TableFormatter) formatLegend() string {
	if !t.colorEnabled {
		return t.styles.TableLegend.Render(" Legend: positions are 0-based byte offsets; -1 = no match")
	}

	longest := t.styles.TableLongestRow.Render(" longest ")
	random := t.styles.TableRandomRow.Render(" random ")
	noMatch := t.styles.TableNoMatchRow.Render(" no match ")

	return t.styles.TableLegend.Render(
		fmt.Sprintf(" Legend: %s  %s  %s  (0-based byte offsets)", longest, random, noMatch),
	)
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats, duration string) string {
	parts := []string{fmt.Sprintf("%d %s read", stats.PairsRead, pairWord(stats.PairsRead))}

	if stats.PairsMatched > 0 {
		parts = append(parts, t.styles.Success.Render(fmt.Sprintf("%d matched", stats.PairsMatched)))
	}
	if stats.PairsErrored > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d failed", stats.PairsErrored)))
	}
	if stats.LongestLength > 0 {
		parts = append(parts, fmt.Sprintf("longest %d", stats.LongestLength))
	}
	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateSource truncates a source location, keeping the end (file name and
// line) rather than the beginning.
func truncateSource(source string, maxLen int) string {
	if len(source) <= maxLen {
		return source
	}
	if maxLen <= 3 {
		return source[len(source)-maxLen:]
	}
	return "..." + source[len(source)-maxLen+3:]
}
