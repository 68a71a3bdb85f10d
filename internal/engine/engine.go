package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/operatorhq/operator/internal/config"
	"github.com/operatorhq/operator/internal/handlers"
)

// ErrNoLanguageDetected is returned by Resolve when no handler matched the
// inspected directory.
var ErrNoLanguageDetected = errors.New("no supported language detected")

// Match reports one detected language and the dependencies harvested from
// its source files. Dependencies are unique and sorted.
type Match struct {
	Language     string
	Dependencies []string
}

// Result is the outcome of one resolution run: the generated Dockerfile
// text and, per detected language, its dependency report.
type Result struct {
	Dockerfile string
	Matches    []Match
}

// Engine drives the detect -> extract -> generate pipeline over a handler
// registry.
type Engine struct {
	cfg      *config.Config
	registry *handlers.Registry
	last     *Result
}

// New creates an Engine over the given registry.
func New(cfg *config.Config, registry *handlers.Registry) *Engine {
	return &Engine{cfg: cfg, registry: registry}
}

// Last returns the result of the most recent Resolve, or nil.
func (e *Engine) Last() *Result {
	return e.last
}

// Config returns the engine config.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Resolve runs every enabled handler's detection against dir, then
// extraction and generation for each match. A single match produces that
// handler's Dockerfile verbatim; several matches produce one stage per
// language, in registry order, each under a stage header. Returns
// ErrNoLanguageDetected when nothing matched.
func (e *Engine) Resolve(ctx context.Context, dir string) (*Result, error) {
	start := time.Now()

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving project path: %w", err)
	}

	// Every handler is evaluated: several languages may coexist in one tree.
	var matched []handlers.Handler
	for _, h := range e.registry.All() {
		if !e.cfg.IsHandlerEnabled(h.Name()) {
			continue
		}
		if h.Detect(absDir) {
			matched = append(matched, h)
		}
	}
	if len(matched) == 0 {
		return nil, ErrNoLanguageDetected
	}

	result := &Result{}
	if len(matched) == 1 {
		h := matched[0]
		deps := h.ExtractDependencies(ctx, absDir)
		log.Printf("[engine] detected %s (%d dependencies)", h.Name(), len(deps))
		result.Dockerfile = h.GenerateDockerfile(absDir, deps)
		result.Matches = []Match{{Language: h.Name(), Dependencies: deps}}
	} else {
		var b strings.Builder
		for _, h := range matched {
			deps := h.ExtractDependencies(ctx, absDir)
			log.Printf("[engine] detected %s (%d dependencies)", h.Name(), len(deps))
			b.WriteString("\n# ===== " + h.Name() + " Stage =====\n")
			b.WriteString(h.GenerateDockerfile(absDir, deps))
			b.WriteString("\n")
			result.Matches = append(result.Matches, Match{Language: h.Name(), Dependencies: deps})
		}
		result.Dockerfile = b.String()
	}

	e.last = result
	log.Printf("[engine] resolved %d language(s) in %s", len(matched), time.Since(start))
	return result, nil
}

// WriteDockerfile persists content to dir/<output file> and returns the
// written path. The write goes through a temporary file and a rename so a
// failure never leaves a partial Dockerfile behind.
func (e *Engine) WriteDockerfile(dir, content string) (string, error) {
	outPath := filepath.Join(dir, e.cfg.Output.File)

	tmp, err := os.CreateTemp(dir, ".operator-*")
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", outPath, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}

	log.Printf("[engine] wrote %s (%d bytes)", outPath, len(content))
	return outPath, nil
}
