package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/fs"
)

// runView is the JSON form of a run: the stored fields plus the parsed
// document.
type runView struct {
	*adgen.Run
	Document *adgen.Document `json:"document"`
}

// printRun writes the run's ad assets to stdout as Markdown or JSON.
func printRun(deps *Dependencies, run *adgen.Run, asJSON, showBrief bool) error {
	if asJSON {
		return printJSON(deps.Stdout, runView{Run: run, Document: run.Document()})
	}
	if showBrief && run.Brief != "" {
		fmt.Fprintln(deps.Stdout, adgen.FormatBrief(run.Brief))
		fmt.Fprintln(deps.Stdout)
	}
	fmt.Fprintln(deps.Stdout, adgen.FormatDocument(run.Document()))
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readInput reads a whole file, or stdin when path is "-".
func readInput(deps *Dependencies, path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", adgen.Errorf(adgen.ENOTFOUND, "file %q not found", path)
		}
		return "", err
	}
	return string(b), nil
}

// fail prints the error's message to stderr and returns the error.
func fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", adgen.ErrorMessage(err))
	return err
}

func reportOptions(html bool) []fs.ReportOption {
	if html {
		return []fs.ReportOption{fs.WithHTML()}
	}
	return nil
}
