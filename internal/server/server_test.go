package server

import (
	"strings"
	"testing"

	"github.com/operatorhq/operator/internal/config"
	"github.com/operatorhq/operator/internal/engine"
	"github.com/operatorhq/operator/internal/handlers"
)

func TestNew(t *testing.T) {
	cfg := config.Default()
	eng := engine.New(cfg, handlers.DefaultRegistry())

	srv, err := New(eng, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if srv.mcp == nil {
		t.Fatal("expected MCP server to be initialized")
	}
	if srv.langs.Path() != cfg.Langlist.Path {
		t.Errorf("langlist path = %q, want %q", srv.langs.Path(), cfg.Langlist.Path)
	}
}

func TestReportSummary(t *testing.T) {
	result := &engine.Result{
		Matches: []engine.Match{
			{Language: "Python", Dependencies: []string{"flask", "requests"}},
			{Language: "C++", Dependencies: nil},
		},
	}

	got := reportSummary(result)

	wantLines := []string{
		"[Python] detected libraries:",
		"  - flask",
		"  - requests",
		"[C++] detected libraries:",
		"  (none)",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("summary missing line %q:\n%s", line, got)
		}
	}
}

func TestErrorResult(t *testing.T) {
	res := errorResult("boom")
	if !res.IsError {
		t.Error("expected IsError to be set")
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(res.Content))
	}
}
