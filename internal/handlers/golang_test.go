package handlers

import (
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestGoDetect(t *testing.T) {
	t.Run("go.mod", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/app\n")
		if !(Go{}).Detect(dir) {
			t.Error("expected detection via go.mod")
		}
	})

	t.Run("go source", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "main.go"), "package main\n")
		if !(Go{}).Detect(dir) {
			t.Error("expected detection via .go file")
		}
	})
}

func TestGoExtractDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.go"), strings.Join([]string{
		"package main",
		``,
		`import "fmt"`,
		``,
		`func main() { fmt.Println("hi") }`,
	}, "\n"))

	got := (Go{}).ExtractDependencies(context.Background(), dir)
	if !reflect.DeepEqual(got, []string{"fmt"}) {
		t.Errorf("ExtractDependencies = %v, want [fmt]", got)
	}
}

func TestGoExtract_FactoredImportBlockNotParsed(t *testing.T) {
	dir := t.TempDir()
	// Factored import blocks span lines; the line-local scan only sees
	// single-line import statements. This must not crash or hang.
	writeFile(t, filepath.Join(dir, "main.go"), strings.Join([]string{
		"package main",
		``,
		`import (`,
		`	"os"`,
		`	"strings"`,
		`)`,
	}, "\n"))

	got := (Go{}).ExtractDependencies(context.Background(), dir)
	if got != nil {
		t.Errorf("ExtractDependencies = %v, want none for factored block", got)
	}
}

func TestGoGenerateDockerfile(t *testing.T) {
	t.Run("without go.mod", func(t *testing.T) {
		dir := t.TempDir()
		got := (Go{}).GenerateDockerfile(dir, []string{"fmt"})
		if strings.Contains(got, "go mod download") {
			t.Errorf("expected no go mod download without manifest, got:\n%s", got)
		}
		if !strings.Contains(got, "RUN go build -o main .\n") {
			t.Errorf("expected build step, got:\n%s", got)
		}
	})

	t.Run("with go.mod", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/app\n")
		got := (Go{}).GenerateDockerfile(dir, nil)
		if !strings.Contains(got, "RUN go mod download\n") {
			t.Errorf("expected go mod download with manifest, got:\n%s", got)
		}
		if !strings.Contains(got, "RUN go build -o main .\n") {
			t.Errorf("expected build step, got:\n%s", got)
		}
	})
}
