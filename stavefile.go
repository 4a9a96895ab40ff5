//go:build stave

package main

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const binary = "bin/lcsstr"

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":  Build,
	"t":  Test.Default,
	"tc": Test.Core,
	"l":  Lint.Default,
	"c":  Check,
	"s":  Smoke,
	"bt": Bench.Tree,
	"fz": Bench.Fuzz,
}

// Namespace types group related targets.
type (
	Test  st.Namespace
	Lint  st.Namespace
	Bench st.Namespace
)

// Build compiles lcsstr with version info when sources changed.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	fmt.Println("Building lcsstr...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/lcsstr")
}

// Check runs format, lint, test and smoke sequentially.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default, Smoke)
}

// Clean removes build artifacts and fuzz caches.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out", filepath.Join("pkg", "commonsub", "testdata", "fuzz")} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install installs lcsstr to $GOBIN or $GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/lcsstr")
}

// smokeCases are find invocations with fixed, documented output.
var smokeCases = []struct {
	args []string
	want string
}{
	{[]string{"find", "abcde", "xbcdy"}, "1\t1\t3"},
	{[]string{"find", "aaa", "aaa"}, "0\t0\t3"},
	{[]string{"find", "-n", "4", "abcde", "xbcdy"}, "-1\t-1\t0"},
	{[]string{"find", "--all", "--seed", "7", "banana", "ananas"}, "1\t0\t5"},
}

// Smoke builds the binary and checks a handful of known answers.
func Smoke() error {
	st.Deps(Build)

	var failed []string
	for _, tc := range smokeCases {
		out, err := sh.Output(binary, tc.args...)
		if err != nil {
			return fmt.Errorf("%s: %w", strings.Join(tc.args, " "), err)
		}
		first, _, _ := strings.Cut(out, "\n")
		if first != tc.want {
			failed = append(failed, fmt.Sprintf("%s: got %q, want %q", strings.Join(tc.args, " "), first, tc.want))
		}
	}
	if len(failed) > 0 {
		return errors.New("smoke checks failed:\n  " + strings.Join(failed, "\n  "))
	}
	fmt.Printf("✓ %d smoke checks passed\n", len(smokeCases))
	return nil
}

// Default runs all tests using gotestsum with race detection and coverage.
func (Test) Default() error {
	nCores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go",
		"tool", "gotestsum",
		"-f", "pkgname-and-test-fails",
		"--",
		"-race",
		"-p", nCores,
		"./...",
		"-coverprofile=coverage.out",
	)
}

// Core runs the suffix tree and substring tests repeatedly, which shakes out
// order-dependent failures in the randomized checks.
func (Test) Core() error {
	count := cmp.Or(os.Getenv("COUNT"), "5")
	return sh.RunV("go", "test", "-count="+count, "./pkg/suffixtree", "./pkg/commonsub")
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", "cmd", "internal", "pkg", "stavefile.go")
}

// Fuzz runs the longest-common-substring fuzz target against the quadratic
// reference. FUZZTIME overrides the default of 30s.
func (Bench) Fuzz() error {
	fuzzTime := cmp.Or(os.Getenv("FUZZTIME"), "30s")
	fmt.Printf("Fuzzing FuzzLongest for %s...\n", fuzzTime)
	return sh.RunV("go", "test",
		"-run=^$",
		"-fuzz=^FuzzLongest$",
		"-fuzztime="+fuzzTime,
		"./pkg/commonsub",
	)
}

// Tree runs the suffix tree construction and query benchmarks.
func (Bench) Tree() error {
	return sh.RunV("go", "test",
		"-run=^$",
		"-bench=^Benchmark(Build|Longest)$",
		"-benchmem",
		"./pkg/suffixtree", "./pkg/commonsub",
	)
}

func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s", version, commit, date)
}
