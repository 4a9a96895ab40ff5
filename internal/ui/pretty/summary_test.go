package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/lcsstr/internal/ui/pretty"
	"github.com/yaklabco/lcsstr/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		PairsRead:     10,
		PairsAnalyzed: 9,
		PairsErrored:  1,
		PairsMatched:  7,
		LongestLength: 12,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Pairs read:        10")
	assert.Contains(t, result, "Pairs analysed:    9")
	assert.Contains(t, result, "Pairs matched:     7")
	assert.Contains(t, result, "Pairs failed:      1")
	assert.Contains(t, result, "Longest match:     12")
	assert.Contains(t, result, "Some pairs could not be analysed")
}

func TestFormatSummary_NoMatches(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{PairsRead: 2, PairsAnalyzed: 2})

	assert.Contains(t, result, "No common substrings found")
	assert.NotContains(t, result, "Pairs failed:")
	assert.NotContains(t, result, "Longest match:")
}

func TestFormatSummary_AllMatched(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{PairsRead: 1, PairsAnalyzed: 1, PairsMatched: 1, LongestLength: 3})

	assert.Contains(t, result, "Analysis complete")
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "empty",
			stats: runner.Stats{},
			want:  "No pairs to analyse\n",
		},
		{
			name:  "single match",
			stats: runner.Stats{PairsRead: 1, PairsAnalyzed: 1, PairsMatched: 1, LongestLength: 3},
			want:  "1 pair analysed, 1 matched, longest 3\n",
		},
		{
			name:  "nothing matched",
			stats: runner.Stats{PairsRead: 2, PairsAnalyzed: 2},
			want:  "2 pairs analysed, none matched\n",
		},
		{
			name:  "with errors",
			stats: runner.Stats{PairsRead: 4, PairsAnalyzed: 2, PairsErrored: 2, PairsMatched: 2, LongestLength: 5},
			want:  "2 pairs analysed, 2 matched, longest 5, 2 errors\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, styles.FormatSummaryOneLine(testCase.stats))
		})
	}
}
