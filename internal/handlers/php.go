package handlers

import (
	"context"
	"regexp"
	"strings"

	"github.com/operatorhq/operator/internal/probe"
)

var phpRequireRe = regexp.MustCompile(`(require|include)\s*\(?\s*['"]([^'"]+)['"]`)

// PHP detects PHP projects via composer.json or any .php file.
type PHP struct{}

func (PHP) Name() string { return "PHP" }

func (PHP) Detect(dir string) bool {
	return probe.FileExists(dir, "composer.json") || probe.HasFileWithExt(dir, ".php")
}

func (PHP) ExtractDependencies(ctx context.Context, dir string) []string {
	return scanFiles(ctx, dir, "php", []string{".php"}, func(line string) (string, bool) {
		if m := phpRequireRe.FindStringSubmatch(line); m != nil {
			return m[2], true
		}
		return "", false
	})
}

func (PHP) GenerateDockerfile(dir string, deps []string) string {
	var b strings.Builder
	b.WriteString("FROM php:7.4-apache\n")
	b.WriteString("WORKDIR /var/www/html\n")
	b.WriteString("COPY . /var/www/html\n")
	if probe.FileExists(dir, "composer.json") {
		b.WriteString("RUN composer install\n")
	} else if len(deps) > 0 {
		b.WriteString("RUN composer require")
		for _, dep := range deps {
			b.WriteString(" " + dep)
		}
		b.WriteString("\n")
	}
	b.WriteString("CMD [\"apache2-foreground\"]\n")
	return b.String()
}
