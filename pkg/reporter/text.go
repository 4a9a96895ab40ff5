package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/lcsstr/internal/ui/pretty"
	"github.com/yaklabco/lcsstr/pkg/commonsub"
	"github.com/yaklabco/lcsstr/pkg/runner"
)

// TextReporter writes the tab-separated result lines.
//
// Each pair produces its longest line, its random line, and in all mode a
// "count sumLength" line. Comment lines starting with "#" carry the source
// location and per-pair errors.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	for _, pair := range result.Pairs {
		r.writePair(pair)
	}

	if r.opts.ShowSummary && r.opts.ErrorWriter != nil {
		colorEnabled := pretty.IsColorEnabled(r.opts.Color, r.opts.ErrorWriter)
		fmt.Fprint(r.opts.ErrorWriter, pretty.NewStyles(colorEnabled).FormatSummary(result.Stats))
	}

	return result.Stats.PairsMatched, nil
}

func (r *TextReporter) writePair(pair runner.PairOutcome) {
	location := pair.Source
	if pair.Line > 0 {
		location = fmt.Sprintf("%s:%d", pair.Source, pair.Line)
	}

	if pair.Error != nil {
		fmt.Fprintf(r.bw, "# %s: %s\n",
			r.styles.Source.Render(location),
			r.styles.Error.Render(fmt.Sprintf("error: %v", pair.Error)),
		)
		return
	}

	if pair.Result == nil {
		return
	}

	if r.opts.ShowSource {
		fmt.Fprintln(r.bw, r.styles.Comment.Render("# "+location))
	}

	if pair.Result.Longest != nil {
		fmt.Fprintln(r.bw, pair.Result.Longest.String())
	}
	if pair.Result.Random != nil {
		fmt.Fprintln(r.bw, pair.Result.Random.String())
	}
	if pair.Result.Mode == commonsub.ModeAll && pair.Result.Stats != nil {
		fmt.Fprintln(r.bw, pair.Result.Stats.String())
	}
}
