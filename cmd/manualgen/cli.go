package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds shared services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build BuildCmd `cmd:"" default:"1" help:"Generate the manual website"`
}

// BuildCmd is the "build" command. It is the default command, so running
// manualgen with no arguments generates the site for the default directory.
type BuildCmd struct {
	Dir         string `short:"d" default:"docs/manual" help:"Directory containing manual Markdown files"`
	Overview    string `default:"README.md" help:"Overview file merged into the page without a sidebar entry"`
	Title       string `default:"User Manual" help:"Site title shown in the page header"`
	Style       string `default:"github" help:"Chroma style for code highlighting"`
	NoHighlight bool   `help:"Render code blocks without syntax highlighting"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`
}
