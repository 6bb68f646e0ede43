package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/campaign"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Runs    adgen.RunService
	Builder *campaign.Builder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service calls to stderr"`

	Generate GenerateCmd `cmd:"" help:"Generate Google Ads assets for a website"`
	Parse    ParseCmd    `cmd:"" help:"Parse a saved model response into ad assets"`
	History  HistoryCmd  `cmd:"" help:"List previous generation runs"`
	Show     ShowCmd     `cmd:"" help:"Show the ad assets of a previous run"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a generation run"`
	Batch    BatchCmd    `cmd:"" help:"Generate ad assets for every URL in a file"`
	Serve    ServeCmd    `cmd:"" help:"Serve the HTTP API"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	URL          string   `arg:"" help:"Website URL"`
	Services     []string `short:"s" name:"service" help:"Product or service to focus on (repeatable)"`
	ServicesFile string   `name:"services-file" help:"File listing services to focus on, one per line"`
	WebsiteOnly  bool     `short:"w" name:"website-only" help:"Use only the website's content instead of web search"`
	Render       bool     `help:"Render pages with headless Chrome"`
	JSON         bool     `help:"Print the run and parsed assets as JSON"`
	Out          string   `short:"o" type:"path" help:"Directory to write a report to"`
	HTML         bool     `help:"Write the report as HTML instead of Markdown"`
	ShowBrief    bool     `name:"show-brief" help:"Print the marketing brief before the assets"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File string `arg:"" optional:"" default:"-" help:"File with the model response (- for stdin)"`
	JSON bool   `help:"Print the parsed document as JSON"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL   string `help:"Only show runs for this URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of runs to show"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID        string `arg:"" help:"Run ID"`
	Raw       bool   `help:"Print the raw model response"`
	JSON      bool   `help:"Print the run and parsed assets as JSON"`
	ShowBrief bool   `name:"show-brief" help:"Print the marketing brief before the assets"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File        string `arg:"" help:"File listing website URLs, one per line (- for stdin)"`
	WebsiteOnly bool   `short:"w" name:"website-only" help:"Use only the website's content instead of web search"`
	Render      bool   `help:"Render pages with headless Chrome"`
	Concurrency int    `short:"c" default:"2" help:"Concurrent generation limit"`
	Out         string `short:"o" type:"path" help:"Directory to write reports to"`
	HTML        bool   `help:"Write reports as HTML instead of Markdown"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr   string `default:":8080" help:"Address to listen on"`
	Token  string `env:"ADGEN_API_TOKEN" help:"Bearer token required on /api routes"`
	Render bool   `help:"Render pages with headless Chrome for website-only runs"`
}
