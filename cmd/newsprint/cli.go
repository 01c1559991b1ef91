package main

import (
	"context"
	"io"

	"github.com/fwojciec/newsprint"
	"github.com/fwojciec/newsprint/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Config    *newsprint.Config
	Processor *pipeline.Processor
	Batch     *pipeline.Batch
	Formatter newsprint.Formatter
	Converter newsprint.Converter

	Snapshots newsprint.SnapshotService

	// Cache is optional.
	Cache newsprint.SnapshotCache
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config     string  `short:"C" type:"path" env:"NEWSPRINT_CONFIG" help:"YAML configuration file"`
	Verbose    bool    `short:"v" help:"Log pipeline activity to stderr"`
	Browser    bool    `short:"b" help:"Render pages in headless Chrome"`
	Reducer    string  `enum:"readability,trafilatura" default:"readability" help:"Boilerplate reducer (readability, trafilatura)"`
	Summarizer string  `enum:"extractive,gemini" default:"extractive" help:"Summarizer (extractive, gemini)"`
	Rate       float64 `default:"1" help:"Requests per second per domain"`

	Build    BuildCmd    `cmd:"" help:"Build articles and print them"`
	Snapshot SnapshotCmd `cmd:"" help:"Build an article and store its snapshot"`
	Show     ShowCmd     `cmd:"" help:"Show the latest stored snapshot of an article"`
	Valid    ValidCmd    `cmd:"" help:"Report whether an article body is a genuine article"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	URLs           []string `arg:"" name:"url" help:"Article URLs"`
	Format         string   `short:"f" enum:"json,markdown" default:"json" help:"Output format (json, markdown)"`
	Out            string   `short:"o" type:"path" help:"Write markdown files under this directory"`
	Concurrency    int      `short:"c" default:"4" help:"Concurrent article limit"`
	Title          string   `help:"Force the article title"`
	HTML           string   `type:"existingfile" help:"Parse this HTML file instead of downloading"`
	IgnoreReadMore bool     `help:"Do not follow read-more links"`
}

// SnapshotCmd is the "snapshot" subcommand.
type SnapshotCmd struct {
	URL string `arg:"" help:"Article URL"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	URL string `arg:"" optional:"" help:"Article URL"`
	ID  string `help:"Show the snapshot with this ID instead"`
}

// ValidCmd is the "valid" subcommand.
type ValidCmd struct {
	URL string `arg:"" help:"Article URL"`
}
