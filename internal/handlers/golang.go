package handlers

import (
	"context"
	"regexp"
	"strings"

	"github.com/operatorhq/operator/internal/probe"
)

var goImportRe = regexp.MustCompile(`^\s*import\s+"([^"]+)"`)

// Go detects Go projects via go.mod or any .go file.
type Go struct{}

func (Go) Name() string { return "Go" }

func (Go) Detect(dir string) bool {
	return probe.FileExists(dir, "go.mod") || probe.HasFileWithExt(dir, ".go")
}

func (Go) ExtractDependencies(ctx context.Context, dir string) []string {
	return scanFiles(ctx, dir, "go", []string{".go"}, func(line string) (string, bool) {
		if m := goImportRe.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
		return "", false
	})
}

func (Go) GenerateDockerfile(dir string, deps []string) string {
	var b strings.Builder
	b.WriteString("FROM golang:1.16\n")
	b.WriteString("WORKDIR /app\n")
	b.WriteString("COPY . /app\n")
	if probe.FileExists(dir, "go.mod") {
		b.WriteString("RUN go mod download\n")
	}
	b.WriteString("RUN go build -o main .\n")
	b.WriteString("CMD [\"./main\"]\n")
	return b.String()
}
