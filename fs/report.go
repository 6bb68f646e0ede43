// Package fs writes run reports as Markdown or HTML files.
package fs

import (
	"bytes"
	"context"
	"html"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/adgen"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML header of a Markdown report.
type Frontmatter struct {
	URL         string    `yaml:"url"`
	Services    []string  `yaml:"services"`
	WebsiteOnly bool      `yaml:"website_only"`
	Model       string    `yaml:"model"`
	Created     time.Time `yaml:"created"`
}

// ReportName returns the report's base name without extension: the host
// without a leading "www." followed by the run ID.
// Example: https://www.acme.com/services, id 1f2e → acme.com-1f2e
func ReportName(run *adgen.Run) (string, error) {
	u, err := url.Parse(run.URL)
	if err != nil {
		return "", adgen.Errorf(adgen.EINVALID, "invalid run URL: %v", err)
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host == "" {
		return "", adgen.Errorf(adgen.EINVALID, "run URL has no host")
	}
	if run.ID == "" {
		return "", adgen.Errorf(adgen.EINVALID, "run ID required")
	}
	return host + "-" + run.ID, nil
}

// FormatReport formats a run as Markdown with YAML frontmatter, followed by
// the marketing brief and the rendered ad assets.
func FormatReport(run *adgen.Run) (string, error) {
	services := run.Services
	if services == nil {
		services = []string{}
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(Frontmatter{
		URL:         run.URL,
		Services:    services,
		WebsiteOnly: run.WebsiteOnly,
		Model:       run.Model,
		Created:     run.CreatedAt.UTC().Truncate(time.Second),
	}); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	b.WriteString("---\n\n")
	b.WriteString(reportBody(run))
	return b.String(), nil
}

// FormatHTMLReport renders a run's brief and ad assets as a standalone HTML
// page.
func FormatHTMLReport(run *adgen.Run) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := md.Convert([]byte(reportBody(run)), &body); err != nil {
		return "", err
	}

	title := html.EscapeString("Ad assets for " + run.URL)
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + title + "</title>\n</head>\n<body>\n")
	b.WriteString("<h1>" + title + "</h1>\n")
	b.Write(body.Bytes())
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

func reportBody(run *adgen.Run) string {
	var b strings.Builder
	if run.Brief != "" {
		b.WriteString(adgen.FormatBrief(run.Brief))
		b.WriteString("\n\n")
	}
	b.WriteString(adgen.FormatDocument(run.Document()))
	b.WriteString("\n")
	return b.String()
}

// Ensure ReportWriter implements adgen.ReportWriter at compile time.
var _ adgen.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes run reports to a directory.
type ReportWriter struct {
	baseDir string
	html    bool
}

// ReportOption configures a ReportWriter.
type ReportOption func(*ReportWriter)

// WithHTML makes the writer produce .html pages instead of Markdown.
func WithHTML() ReportOption {
	return func(w *ReportWriter) {
		w.html = true
	}
}

// NewReportWriter creates a new ReportWriter that writes to the given base directory.
func NewReportWriter(baseDir string, opts ...ReportOption) *ReportWriter {
	w := &ReportWriter{baseDir: baseDir}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteRun writes the run's report and returns the path of the file.
func (w *ReportWriter) WriteRun(ctx context.Context, run *adgen.Run) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := run.Validate(); err != nil {
		return "", err
	}

	name, err := ReportName(run)
	if err != nil {
		return "", err
	}

	var content, ext string
	if w.html {
		content, err = FormatHTMLReport(run)
		ext = ".html"
	} else {
		content, err = FormatReport(run)
		ext = ".md"
	}
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, name+ext)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}
