package handlers

import (
	"context"
	"strings"

	"github.com/operatorhq/operator/internal/probe"
)

// Cpp detects C++ projects via any .cpp, .cc, or .cxx file.
type Cpp struct{}

func (Cpp) Name() string { return "C++" }

func (Cpp) Detect(dir string) bool {
	return probe.HasFileWithExt(dir, ".cpp") ||
		probe.HasFileWithExt(dir, ".cc") ||
		probe.HasFileWithExt(dir, ".cxx")
}

// ExtractDependencies returns nothing: C++ has no package manifest to
// install from, so includes are not harvested.
func (Cpp) ExtractDependencies(ctx context.Context, dir string) []string {
	return nil
}

func (Cpp) GenerateDockerfile(dir string, deps []string) string {
	var b strings.Builder
	b.WriteString("FROM gcc:latest\n")
	b.WriteString("WORKDIR /app\n")
	b.WriteString("COPY . /app\n")
	b.WriteString("RUN g++ -o main *.cpp\n")
	b.WriteString("CMD [\"./main\"]\n")
	return b.String()
}
