package handlers

import (
	"context"
	"regexp"
	"strings"

	"github.com/operatorhq/operator/internal/probe"
)

var rubyRequireRe = regexp.MustCompile(`require\s+['"]([^'"]+)['"]`)

// Ruby detects Ruby projects via a Gemfile or any .rb file.
type Ruby struct{}

func (Ruby) Name() string { return "Ruby" }

func (Ruby) Detect(dir string) bool {
	return probe.FileExists(dir, "Gemfile") || probe.HasFileWithExt(dir, ".rb")
}

func (Ruby) ExtractDependencies(ctx context.Context, dir string) []string {
	return scanFiles(ctx, dir, "ruby", []string{".rb"}, func(line string) (string, bool) {
		m := rubyRequireRe.FindStringSubmatch(line)
		// require_relative style targets are local files, not gems.
		if m != nil && m[1] != "" && !strings.HasPrefix(m[1], ".") {
			return m[1], true
		}
		return "", false
	})
}

func (Ruby) GenerateDockerfile(dir string, deps []string) string {
	var b strings.Builder
	b.WriteString("FROM ruby:2.7\n")
	b.WriteString("WORKDIR /app\n")
	b.WriteString("COPY . /app\n")
	if probe.FileExists(dir, "Gemfile") {
		b.WriteString("RUN bundle install\n")
	} else if len(deps) > 0 {
		b.WriteString("RUN gem install")
		for _, dep := range deps {
			b.WriteString(" " + dep)
		}
		b.WriteString("\n")
	}
	b.WriteString("CMD [\"ruby\", \"main.rb\"]\n")
	return b.String()
}
