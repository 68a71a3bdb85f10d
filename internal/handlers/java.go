package handlers

import (
	"context"
	"regexp"
	"strings"

	"github.com/operatorhq/operator/internal/probe"
)

var javaImportRe = regexp.MustCompile(`^\s*import\s+([\w.]+)`)

// Java detects Java projects via pom.xml, build.gradle, or any .java file.
type Java struct{}

func (Java) Name() string { return "Java" }

func (Java) Detect(dir string) bool {
	return probe.FileExists(dir, "pom.xml") ||
		probe.FileExists(dir, "build.gradle") ||
		probe.HasFileWithExt(dir, ".java")
}

func (Java) ExtractDependencies(ctx context.Context, dir string) []string {
	return scanFiles(ctx, dir, "java", []string{".java"}, func(line string) (string, bool) {
		if m := javaImportRe.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
		return "", false
	})
}

func (Java) GenerateDockerfile(dir string, deps []string) string {
	var b strings.Builder
	b.WriteString("FROM openjdk:11\n")
	b.WriteString("WORKDIR /app\n")
	b.WriteString("COPY . /app\n")
	switch {
	case probe.FileExists(dir, "pom.xml"):
		b.WriteString("RUN mvn install\n")
		b.WriteString("CMD [\"java\", \"-jar\", \"target/app.jar\"]\n")
	case probe.FileExists(dir, "build.gradle"):
		b.WriteString("RUN gradle build\n")
		b.WriteString("CMD [\"java\", \"-jar\", \"build/libs/app.jar\"]\n")
	default:
		b.WriteString("# TODO: add a Java build step\n")
	}
	return b.String()
}
