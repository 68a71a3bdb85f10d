package handlers

import (
	"context"
	"strings"

	"github.com/operatorhq/operator/internal/probe"
)

// Rust detects Rust projects via Cargo.toml or any .rs file.
type Rust struct{}

func (Rust) Name() string { return "Rust" }

func (Rust) Detect(dir string) bool {
	return probe.FileExists(dir, "Cargo.toml") || probe.HasFileWithExt(dir, ".rs")
}

// ExtractDependencies returns nothing: crate dependencies live in
// Cargo.toml, which cargo resolves on its own.
func (Rust) ExtractDependencies(ctx context.Context, dir string) []string {
	return nil
}

func (Rust) GenerateDockerfile(dir string, deps []string) string {
	var b strings.Builder
	b.WriteString("FROM rust:latest\n")
	b.WriteString("WORKDIR /app\n")
	b.WriteString("COPY . /app\n")
	if probe.FileExists(dir, "Cargo.toml") {
		b.WriteString("RUN cargo build --release\n")
	} else {
		b.WriteString("# add a Cargo.toml to manage dependencies\n")
	}
	// The binary name is unknown without parsing the manifest.
	b.WriteString("CMD [\"./target/release/<your_binary>\"]\n")
	return b.String()
}
