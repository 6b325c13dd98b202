package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/dtlc/internal/config"
	"github.com/funvibe/dtlc/internal/parser"
	"github.com/funvibe/dtlc/internal/pipeline"
)

// TestFunctional runs every source file in testdata/ with a matching .want
// file through the pipeline in-process and compares the rendered output,
// the same "name: type" lines (or error) a user would see on the CLI.
func TestFunctional(t *testing.T) {
	var testFiles []string
	err := filepath.Walk("testdata", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !config.HasSourceExt(path) {
			return nil
		}
		wantFile := strings.TrimSuffix(path, filepath.Ext(path)) + ".want"
		if _, err := os.Stat(wantFile); err == nil {
			testFiles = append(testFiles, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk testdata: %v", err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no test files with .want found under testdata/")
	}

	for _, testFile := range testFiles {
		testFile := testFile
		testName := strings.TrimSuffix(filepath.Base(testFile), filepath.Ext(testFile))

		t.Run(testName, func(t *testing.T) {
			source, err := os.ReadFile(testFile)
			if err != nil {
				t.Fatalf("failed to read %s: %v", testFile, err)
			}

			wantFile := strings.TrimSuffix(testFile, filepath.Ext(testFile)) + ".want"
			wantBytes, err := os.ReadFile(wantFile)
			if err != nil {
				t.Fatalf("failed to read %s: %v", wantFile, err)
			}
			want := strings.TrimSpace(string(wantBytes))

			got := strings.TrimSpace(renderPipelineOutput(string(source)))

			if got != want {
				t.Errorf("output mismatch:\n--- want ---\n%s\n--- got ---\n%s", want, got)
			}
		})
	}
}

// renderPipelineOutput runs source through the pipeline and renders it the
// way the CLI would, leaving FilePath unset (as stdin input does) so the
// golden files stay independent of where testdata/ lives on disk.
func renderPipelineOutput(source string) string {
	ctx := pipeline.NewPipelineContext(source)
	p := pipeline.New(&parser.ParserProcessor{}, &pipeline.CheckerProcessor{})
	ctx = p.Run(ctx)

	var sb strings.Builder
	if ctx.Failed() {
		sb.WriteString("Processing failed with errors:\n")
		for _, e := range ctx.Errors {
			sb.WriteString("- ")
			sb.WriteString(e.Error())
			sb.WriteString("\n")
		}
		return sb.String()
	}

	for _, line := range ctx.Lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("Successfully type-checked all items!\n")
	return sb.String()
}
