package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/operatorhq/operator/internal/langlist"
)

const banner = `
                          _
  ___  _ __  ___ _ _ __ _| |_ ___ _ _
 / _ \| '_ \/ -_) '_/ _' |  _/ _ \ '_|
 \___/| .__/\___|_| \__,_|\__\___/_|
      |_|
  MIT License
  0.1.0
`

const (
	opGenerate    = "Generate a Dockerfile"
	opAddLanguage = "Add a new language"
)

// runInteractive shows the startup banner and the two-entry operation menu.
func runInteractive(ctx context.Context) error {
	fmt.Print(banner)

	cfg := loadConfig()
	langs := langlist.New(cfg.Langlist.Path)
	if err := langs.Init(); err != nil {
		return err
	}

	var op string
	if err := survey.AskOne(&survey.Select{
		Message: "Select an operation:",
		Options: []string{opGenerate, opAddLanguage},
	}, &op); err != nil {
		return err
	}

	switch op {
	case opGenerate:
		var dir string
		prompt := &survey.Input{Message: "Project directory path:"}
		if err := survey.AskOne(prompt, &dir, survey.WithValidator(directoryValidator)); err != nil {
			return err
		}
		return runGenerate(ctx, dir)
	case opAddLanguage:
		var name string
		prompt := &survey.Input{Message: "New language name:"}
		if err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
		if err := langs.Add(name); err != nil {
			return err
		}
		fmt.Printf("Added language: %s\n", name)
	}
	return nil
}

// directoryValidator re-prompts until the answer names an existing directory.
func directoryValidator(val interface{}) error {
	s, ok := val.(string)
	if !ok || s == "" {
		return fmt.Errorf("a directory path is required")
	}
	info, err := os.Stat(s)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("not a valid directory: %s", s)
	}
	return nil
}
