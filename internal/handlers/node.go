package handlers

import (
	"context"
	"regexp"
	"strings"

	"github.com/operatorhq/operator/internal/probe"
)

// Relative targets (leading dot) are local files, not packages.
var (
	nodeRequireRe = regexp.MustCompile(`require\(['"]([^.][^'"]*)['"]\)`)
	nodeImportRe  = regexp.MustCompile(`import\s+.*?['"]([^.][^'"]*)['"]`)
)

// Node detects Node.js projects via package.json or any .js/.ts file.
type Node struct{}

func (Node) Name() string { return "Node.js" }

func (Node) Detect(dir string) bool {
	return probe.FileExists(dir, "package.json") ||
		probe.HasFileWithExt(dir, ".js") ||
		probe.HasFileWithExt(dir, ".ts")
}

func (Node) ExtractDependencies(ctx context.Context, dir string) []string {
	return scanFiles(ctx, dir, "node", []string{".js", ".ts"}, func(line string) (string, bool) {
		// require takes precedence over import on the same line.
		if m := nodeRequireRe.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
		if m := nodeImportRe.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
		return "", false
	})
}

func (Node) GenerateDockerfile(dir string, deps []string) string {
	var b strings.Builder
	b.WriteString("FROM node:14\n")
	b.WriteString("WORKDIR /app\n")
	b.WriteString("COPY . /app\n")
	if probe.FileExists(dir, "package.json") {
		b.WriteString("RUN npm install\n")
	} else if len(deps) > 0 {
		b.WriteString("RUN npm install")
		for _, dep := range deps {
			b.WriteString(" " + dep)
		}
		b.WriteString("\n")
	}
	b.WriteString("CMD [\"npm\", \"start\"]\n")
	return b.String()
}
