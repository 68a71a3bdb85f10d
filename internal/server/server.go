package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/operatorhq/operator/internal/config"
	"github.com/operatorhq/operator/internal/engine"
	"github.com/operatorhq/operator/internal/langlist"
)

// Server wraps the MCP server and connects it to the Dockerfile engine.
type Server struct {
	mcp   *mcp.Server
	eng   *engine.Engine
	cfg   *config.Config
	langs *langlist.List
}

// New creates a new MCP server wired to the given engine.
func New(eng *engine.Engine, cfg *config.Config) (*Server, error) {
	s := &Server{
		eng:   eng,
		cfg:   cfg,
		langs: langlist.New(cfg.Langlist.Path),
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "operator",
		Version: "0.1.0",
	}, nil)

	s.mcp = mcpServer
	s.registerResources()
	s.registerTools()

	return s, nil
}

// Run starts the MCP server on the stdio transport.
func (s *Server) Run(ctx context.Context) error {
	log.Println("[server] starting MCP server on stdio transport")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// registerResources adds MCP resources for generated artifacts.
func (s *Server) registerResources() {
	// Resource: the most recently generated Dockerfile
	s.mcp.AddResource(&mcp.Resource{
		URI:         "operator://dockerfile/last",
		Name:        "Last Dockerfile",
		Description: "The Dockerfile text produced by the most recent generate_dockerfile call",
		MIMEType:    "text/plain",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		last := s.eng.Last()
		if last == nil {
			return nil, fmt.Errorf("no Dockerfile generated yet (run generate_dockerfile first)")
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{URI: req.Params.URI, Text: last.Dockerfile, MIMEType: "text/plain"},
			},
		}, nil
	})
}

// generateDockerfileArgs are the arguments for the generate_dockerfile tool.
type generateDockerfileArgs struct {
	Path  string `json:"path" jsonschema:"required,Path to the project directory to inspect"`
	Write bool   `json:"write,omitempty" jsonschema:"Write the generated Dockerfile into the project directory (default false: return text only)"`
}

// addLanguageArgs are the arguments for the add_language tool.
type addLanguageArgs struct {
	Name string `json:"name" jsonschema:"required,Display name of the language to register"`
}

// registerTools adds MCP tools for Dockerfile generation and the language
// name registry.
func (s *Server) registerTools() {
	// Tool: generate_dockerfile
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "generate_dockerfile",
		Description: "Inspect a project directory, detect its language(s), harvest referenced dependencies, and generate a Dockerfile. Multiple detected languages produce one stage per language.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args generateDockerfileArgs) (*mcp.CallToolResult, any, error) {
		if args.Path == "" {
			return errorResult("path is required"), nil, nil
		}
		info, err := os.Stat(args.Path)
		if err != nil || !info.IsDir() {
			return errorResult(fmt.Sprintf("not a directory: %s", args.Path)), nil, nil
		}

		result, err := s.eng.Resolve(ctx, args.Path)
		if errors.Is(err, engine.ErrNoLanguageDetected) {
			return errorResult("no supported language detected (unsupported project)"), nil, nil
		}
		if err != nil {
			return errorResult(fmt.Sprintf("generation failed: %v", err)), nil, nil
		}

		var sb strings.Builder
		sb.WriteString(reportSummary(result))

		if args.Write {
			outPath, err := s.eng.WriteDockerfile(args.Path, result.Dockerfile)
			if err != nil {
				return errorResult(fmt.Sprintf("failed to write Dockerfile: %v", err)), nil, nil
			}
			sb.WriteString(fmt.Sprintf("\nWrote %s\n", outPath))
		}

		sb.WriteString("\n```dockerfile\n")
		sb.WriteString(result.Dockerfile)
		sb.WriteString("```\n")

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: sb.String()},
			},
		}, nil, nil
	})

	// Tool: list_languages
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_languages",
		Description: "List the registered language display names.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args struct{}) (*mcp.CallToolResult, any, error) {
		if err := s.langs.Init(); err != nil {
			return errorResult(fmt.Sprintf("failed to initialize language list: %v", err)), nil, nil
		}
		names, err := s.langs.Names()
		if err != nil {
			return errorResult(fmt.Sprintf("failed to read language list: %v", err)), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: strings.Join(names, "\n")},
			},
		}, nil, nil
	})

	// Tool: add_language
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "add_language",
		Description: "Append a language display name to the registry. Registration is informational only: detection stays hard-coded per handler.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args addLanguageArgs) (*mcp.CallToolResult, any, error) {
		if err := s.langs.Init(); err != nil {
			return errorResult(fmt.Sprintf("failed to initialize language list: %v", err)), nil, nil
		}
		if err := s.langs.Add(args.Name); err != nil {
			return errorResult(fmt.Sprintf("failed to add language: %v", err)), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Added language: %s", strings.TrimSpace(args.Name))},
			},
		}, nil, nil
	})
}

// reportSummary renders the per-language dependency report for a result.
func reportSummary(result *engine.Result) string {
	var sb strings.Builder
	for _, m := range result.Matches {
		sb.WriteString(fmt.Sprintf("[%s] detected libraries:\n", m.Language))
		if len(m.Dependencies) == 0 {
			sb.WriteString("  (none)\n")
			continue
		}
		for _, dep := range m.Dependencies {
			sb.WriteString("  - " + dep + "\n")
		}
	}
	return sb.String()
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}
