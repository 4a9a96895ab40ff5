package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/lcsstr/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordPair            = "pair"
	wordPairs           = "pairs"
)

func pairWord(n int) string {
	if n == 1 {
		return wordPair
	}
	return wordPairs
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 pairs analysed, 2 matched, longest 5, 1 error".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.PairsRead == 0 {
		return s.Dim.Render("No pairs to analyse") + "\n"
	}

	parts := []string{
		fmt.Sprintf("%d %s analysed", stats.PairsAnalyzed, pairWord(stats.PairsAnalyzed)),
	}

	if stats.PairsMatched > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d matched", stats.PairsMatched)))
	} else {
		parts = append(parts, s.Dim.Render("none matched"))
	}

	if stats.LongestLength > 0 {
		parts = append(parts, fmt.Sprintf("longest %d", stats.LongestLength))
	}

	if stats.PairsErrored > 0 {
		word := "errors"
		if stats.PairsErrored == 1 {
			word = "error"
		}
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s", stats.PairsErrored, word)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Pairs read:        " +
		s.SummaryValue.Render(strconv.Itoa(stats.PairsRead)) + "\n")
	builder.WriteString("  Pairs analysed:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.PairsAnalyzed)) + "\n")

	if stats.PairsMatched > 0 {
		builder.WriteString("  Pairs matched:     " +
			s.Success.Render(strconv.Itoa(stats.PairsMatched)) + "\n")
	}

	if stats.PairsErrored > 0 {
		builder.WriteString("  Pairs failed:      " +
			s.Failure.Render(strconv.Itoa(stats.PairsErrored)) + "\n")
	}

	if stats.LongestLength > 0 {
		builder.WriteString("  Longest match:     " +
			s.SummaryValue.Render(strconv.Itoa(stats.LongestLength)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.PairsErrored > 0:
		builder.WriteString(s.Failure.Render("Some pairs could not be analysed"))
	case stats.PairsMatched == 0:
		builder.WriteString(s.Warning.Render("No common substrings found"))
	default:
		builder.WriteString(s.Success.Render("Analysis complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}
