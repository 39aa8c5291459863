// Package goldentest provides a file-based golden-test corpus runner,
// the harness behind the end-to-end "Testable Properties" scenarios.
//
// Grounded on protocompile's internal/golden package: a Corpus walks a
// testdata directory for input files with a given extension, runs a
// caller-supplied test function over each, and diffs the result
// against a sibling golden file (same name plus an output extension),
// using go-difflib for a readable diff and doublestar for refresh-mode
// globbing. Simplified from the teacher's multi-output, panic-catching
// version down to the single-output case this module's corpora need.
package goldentest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// RefreshEnvVar is the environment variable Corpus.Run consults to
// decide whether to regenerate golden files instead of comparing
// against them; its value is a doublestar glob matched against each
// test's relative name.
const RefreshEnvVar = "HARPER_GOLDEN_REFRESH"

// Corpus describes a golden test data directory.
type Corpus struct {
	// Root is the testdata directory, relative to the directory of the
	// file that calls Run.
	Root string
	// Extension is the input file suffix (without a dot), e.g. "txt".
	Extension string
	// OutputExtension is appended (after a dot) to an input file's name
	// to find its golden expectation, e.g. "golden" turns input
	// "case.txt" into "case.txt.golden".
	OutputExtension string
}

// Run walks Root for every *.Extension file and calls test with its
// contents, then compares the returned string against the sibling
// golden file (or regenerates it, in refresh mode).
func (c Corpus) Run(t *testing.T, test func(t *testing.T, name, input string) string) {
	t.Helper()

	_, callerFile, _, ok := runtime.Caller(1)
	if !ok {
		t.Fatal("goldentest: could not determine caller file")
	}
	root := filepath.Join(filepath.Dir(callerFile), c.Root)

	var paths []string
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		if strings.HasSuffix(p, "."+c.Extension) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("goldentest: walking %q: %v", root, err)
	}

	refresh := os.Getenv(RefreshEnvVar)

	for _, path := range paths {
		name, _ := filepath.Rel(root, path)
		name = filepath.ToSlash(name)

		t.Run(name, func(t *testing.T) {
			inputBytes, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("goldentest: reading %q: %v", path, err)
			}

			got := test(t, name, string(inputBytes))
			goldenPath := path + "." + c.OutputExtension

			matched, _ := doublestar.Match(refresh, name)
			if refresh != "" && matched {
				if err := os.WriteFile(goldenPath, []byte(got), 0o600); err != nil {
					t.Fatalf("goldentest: writing %q: %v", goldenPath, err)
				}
				return
			}

			wantBytes, err := os.ReadFile(goldenPath)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				t.Fatalf("goldentest: reading %q: %v", goldenPath, err)
			}
			want := string(wantBytes)

			if diff := Diff(got, want); diff != "" {
				t.Errorf("golden mismatch for %q:\n%s", name, diff)
			}
		})
	}
}

// Diff returns a unified diff between got and want, or "" if they are
// equal.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return fmt.Sprintf("error computing diff: %v", err)
	}
	return diff
}
