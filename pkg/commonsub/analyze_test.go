package commonsub_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lcsstr/internal/logging"
	"github.com/yaklabco/lcsstr/pkg/commonsub"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    commonsub.Mode
		wantErr bool
	}{
		{"longest", commonsub.ModeLongest, false},
		{"RANDOM", commonsub.ModeRandom, false},
		{" all ", commonsub.ModeAll, false},
		{"sum", "", true},
		{"", "", true},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			got, err := commonsub.ParseMode(testCase.input)
			if testCase.wantErr {
				require.ErrorIs(t, err, commonsub.ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestAnalyze_Modes(t *testing.T) {
	t.Parallel()

	s1, s2 := []byte("abcde"), []byte("xbcdy")
	ctx := context.Background()

	longest, err := commonsub.Analyze(ctx, s1, s2, commonsub.Options{MinLength: 1})
	require.NoError(t, err)
	assert.Equal(t, commonsub.ModeLongest, longest.Mode)
	require.NotNil(t, longest.Longest)
	assert.Equal(t, commonsub.Match{Pos1: 1, Pos2: 1, Length: 3}, *longest.Longest)
	assert.Nil(t, longest.Random)
	assert.Nil(t, longest.Stats)
	assert.Equal(t, 5, longest.Len1)
	assert.Equal(t, 5, longest.Len2)
	assert.Positive(t, longest.Nodes)

	random, err := commonsub.Analyze(ctx, s1, s2, commonsub.Options{
		Mode:      commonsub.ModeRandom,
		MinLength: 1,
		Source:    commonsub.NewSource(1),
	})
	require.NoError(t, err)
	assert.Nil(t, random.Longest)
	require.NotNil(t, random.Random)
	require.NotNil(t, random.Stats)
	assert.True(t, random.Random.Found())
	assert.Positive(t, random.Stats.Count)

	all, err := commonsub.Analyze(ctx, s1, s2, commonsub.Options{
		Mode:      commonsub.ModeAll,
		MinLength: 1,
		Source:    commonsub.NewSource(1),
	})
	require.NoError(t, err)
	require.NotNil(t, all.Longest)
	require.NotNil(t, all.Random)
	assert.Equal(t, *random.Random, *all.Random, "same seed, same pick")
	assert.Equal(t, *random.Stats, *all.Stats)
}

func TestAnalyze_Errors(t *testing.T) {
	t.Parallel()

	_, err := commonsub.Analyze(context.Background(), nil, nil, commonsub.Options{Mode: "bogus"})
	require.ErrorIs(t, err, commonsub.ErrInvalidMode)

	_, err = commonsub.Analyze(context.Background(), nil, nil, commonsub.Options{Mode: commonsub.ModeRandom})
	require.ErrorIs(t, err, commonsub.ErrNoSource)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = commonsub.Analyze(ctx, []byte("a"), []byte("a"), commonsub.Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_DebugLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.NewWithWriter(&buf, "debug"))

	_, err := commonsub.Analyze(ctx, []byte("abc"), []byte("bcd"), commonsub.Options{})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "analysis complete"), "log output: %q", out)
	assert.Contains(t, out, "len1=3")
	assert.Contains(t, out, logging.FieldSequenceLength+"=8")
	assert.Contains(t, out, logging.FieldDuration+"=")
}

func TestAnalyze_Concurrent(t *testing.T) {
	t.Parallel()

	inputs := [][2]string{
		{"banana", "ananas"},
		{"abcde", "xbcdy"},
		{"mississippi", "missouri"},
		{"", "abc"},
	}

	want := make([]commonsub.Match, len(inputs))
	for i, in := range inputs {
		res, err := commonsub.Analyze(context.Background(), []byte(in[0]), []byte(in[1]), commonsub.Options{})
		require.NoError(t, err)
		want[i] = *res.Longest
	}

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, in := range inputs {
				res, err := commonsub.Analyze(context.Background(), []byte(in[0]), []byte(in[1]), commonsub.Options{})
				if err != nil {
					errs <- err.Error()
					return
				}
				if *res.Longest != want[i] {
					errs <- res.Longest.String()
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}
