package handlers

import (
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNodeDetect(t *testing.T) {
	tests := []struct {
		name string
		file string
		want bool
	}{
		{"package.json", "package.json", true},
		{"js file", "src/index.js", true},
		{"ts file", "src/index.ts", true},
		{"unrelated", "readme.md", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, tt.file), "")
			if got := (Node{}).Detect(dir); got != tt.want {
				t.Errorf("Detect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNodeExtractDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.js"), strings.Join([]string{
		`const express = require('express')`,
		`const local = require('./config')`, // relative: not a package
		`import React from "react"`,
		`import { thing } from "./lib/thing"`, // relative: not a package
		`console.log('hi')`,
	}, "\n"))
	writeFile(t, filepath.Join(dir, "app.ts"), `import axios from "axios"`+"\n")

	got := (Node{}).ExtractDependencies(context.Background(), dir)
	want := []string{"axios", "express", "react"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractDependencies = %v, want %v", got, want)
	}
}

func TestNodeExtract_MinifiedSingleLineBundle(t *testing.T) {
	dir := t.TempDir()
	// A one-line bundle far beyond bufio's default 64KiB token size must
	// still be scanned, not silently dropped.
	pad := strings.Repeat("x", 200*1024)
	writeFile(t, filepath.Join(dir, "bundle.js"), `var p="`+pad+`";const e=require('express')`+"\n")

	got := (Node{}).ExtractDependencies(context.Background(), dir)
	if !reflect.DeepEqual(got, []string{"express"}) {
		t.Errorf("ExtractDependencies = %v, want [express]", got)
	}
}

func TestNodeExtract_RequireBeforeImportPerLine(t *testing.T) {
	dir := t.TempDir()
	// Both patterns could match; only the first (require) is taken.
	writeFile(t, filepath.Join(dir, "mix.js"), `import x from "left"; require('right')`+"\n")

	got := (Node{}).ExtractDependencies(context.Background(), dir)
	if !reflect.DeepEqual(got, []string{"right"}) {
		t.Errorf("ExtractDependencies = %v, want [right]", got)
	}
}

func TestNodeGenerateDockerfile(t *testing.T) {
	t.Run("manifest install", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "package.json"), "{}\n")

		got := (Node{}).GenerateDockerfile(dir, []string{"express"})
		if !strings.HasPrefix(got, "FROM node:14\n") {
			t.Errorf("expected node:14 base image, got:\n%s", got)
		}
		if !strings.Contains(got, "RUN npm install\n") {
			t.Errorf("expected manifest install step, got:\n%s", got)
		}
		if strings.Contains(got, "npm install express") {
			t.Errorf("manifest path must not itemize dependencies, got:\n%s", got)
		}
		if !strings.HasSuffix(got, "CMD [\"npm\", \"start\"]\n") {
			t.Errorf("expected npm start command, got:\n%s", got)
		}
	})

	t.Run("itemized install", func(t *testing.T) {
		dir := t.TempDir()
		got := (Node{}).GenerateDockerfile(dir, []string{"express", "lodash"})
		if !strings.Contains(got, "RUN npm install express lodash\n") {
			t.Errorf("expected itemized install step, got:\n%s", got)
		}
	})
}
