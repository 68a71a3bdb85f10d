// Package handlers contains the per-language strategies that detect a
// project's language, harvest referenced dependencies from its source, and
// generate a Dockerfile for it.
package handlers

import "context"

// Handler detects one language and generates its Dockerfile.
type Handler interface {
	// Name returns the display name (e.g. "Python", "Node.js").
	Name() string
	// Detect returns true if the directory looks like a project in this language.
	Detect(dir string) bool
	// ExtractDependencies scans source files for referenced package names.
	// The result is unique and sorted. Extraction is best-effort: unreadable
	// files contribute nothing and do not fail the scan.
	ExtractDependencies(ctx context.Context, dir string) []string
	// GenerateDockerfile renders the Dockerfile text for the directory,
	// itemizing deps in the install step when no manifest file is present.
	GenerateDockerfile(dir string, deps []string) string
}

// Registry holds registered handlers in a fixed order.
type Registry struct {
	handlers []Handler
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a handler to the registry.
func (r *Registry) Register(h Handler) {
	r.handlers = append(r.handlers, h)
}

// Get returns the handler with the given name, or nil if not found.
func (r *Registry) Get(name string) Handler {
	for _, h := range r.handlers {
		if h.Name() == name {
			return h
		}
	}
	return nil
}

// All returns all registered handlers in registration order.
func (r *Registry) All() []Handler {
	return r.handlers
}

// DetectAll returns the handlers whose detection matched the directory,
// in registration order. Every handler is evaluated; multiple languages
// may legitimately coexist in one tree.
func (r *Registry) DetectAll(dir string) []Handler {
	var matched []Handler
	for _, h := range r.handlers {
		if h.Detect(dir) {
			matched = append(matched, h)
		}
	}
	return matched
}

// DefaultRegistry returns a registry with every supported language
// registered. The order is fixed and determines the stage order of
// multi-language Dockerfiles.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Python{})
	r.Register(Node{})
	r.Register(Java{})
	r.Register(Ruby{})
	r.Register(PHP{})
	r.Register(Go{})
	r.Register(CSharp{})
	r.Register(Cpp{})
	r.Register(Rust{})
	return r
}
