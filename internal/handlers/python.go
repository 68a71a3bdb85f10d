package handlers

import (
	"context"
	"regexp"
	"strings"

	"github.com/operatorhq/operator/internal/probe"
)

var pythonImportRe = regexp.MustCompile(`^\s*(import|from)\s+(\w+)`)

// Python detects Python projects via requirements.txt or any .py file.
type Python struct{}

func (Python) Name() string { return "Python" }

func (Python) Detect(dir string) bool {
	return probe.FileExists(dir, "requirements.txt") || probe.HasFileWithExt(dir, ".py")
}

func (Python) ExtractDependencies(ctx context.Context, dir string) []string {
	return scanFiles(ctx, dir, "python", []string{".py"}, func(line string) (string, bool) {
		if m := pythonImportRe.FindStringSubmatch(line); m != nil {
			return m[2], true
		}
		return "", false
	})
}

func (Python) GenerateDockerfile(dir string, deps []string) string {
	var b strings.Builder
	b.WriteString("FROM python:3.9\n")
	b.WriteString("WORKDIR /app\n")
	b.WriteString("COPY . /app\n")
	if probe.FileExists(dir, "requirements.txt") {
		b.WriteString("RUN pip install --upgrade pip && pip install -r requirements.txt\n")
	} else if len(deps) > 0 {
		b.WriteString("RUN pip install --upgrade pip && pip install")
		for _, dep := range deps {
			b.WriteString(" " + dep)
		}
		b.WriteString("\n")
	}
	b.WriteString("CMD [\"python\", \"main.py\"]\n")
	return b.String()
}
