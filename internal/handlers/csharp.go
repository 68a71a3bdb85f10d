package handlers

import (
	"context"
	"os"
	"strings"

	"github.com/operatorhq/operator/internal/probe"
)

// CSharp detects .NET projects via any .cs file, or a .csproj/.sln at the
// top level of the directory.
type CSharp struct{}

func (CSharp) Name() string { return "C# (.NET)" }

func (CSharp) Detect(dir string) bool {
	if probe.HasFileWithExt(dir, ".cs") {
		return true
	}
	// Project and solution files are only meaningful at the root.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e.Type().IsRegular() &&
			(strings.HasSuffix(e.Name(), ".csproj") || strings.HasSuffix(e.Name(), ".sln")) {
			return true
		}
	}
	return false
}

// ExtractDependencies returns nothing: package references live in the
// project file, which dotnet restore resolves on its own.
func (CSharp) ExtractDependencies(ctx context.Context, dir string) []string {
	return nil
}

func (CSharp) GenerateDockerfile(dir string, deps []string) string {
	var b strings.Builder
	b.WriteString("FROM mcr.microsoft.com/dotnet/sdk:5.0\n")
	b.WriteString("WORKDIR /app\n")
	b.WriteString("COPY . /app\n")
	b.WriteString("RUN dotnet restore\n")
	b.WriteString("RUN dotnet build\n")
	b.WriteString("CMD [\"dotnet\", \"run\"]\n")
	return b.String()
}
