// Package format contains code to control the look of hostfacts output.
package format

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"
	"github.com/mattn/go-isatty"

	"github.com/jeffrom/hostfacts/facts"
)

var (
	ErrUnknownFormat = errors.New("format: unknown format")
	ErrNoTemplate    = errors.New("format: template format requires a template")
)

const (
	bold  = "\x1b[1m"
	reset = "\x1b[0m"
)

type Opts struct {
	// Format is one of text, json, yaml, or template.
	Format string
	// Template is the text/template body used by the template format.
	Template string
	Color    bool
}

// Write renders fs to w.
func Write(w io.Writer, fs facts.Facts, opts Opts) error {
	switch opts.Format {
	case "", "text":
		return writeText(w, fs, opts.Color)
	case "json":
		return writeJSON(w, fs)
	case "yaml":
		return writeYAML(w, fs)
	case "template":
		return writeTemplate(w, fs, opts.Template)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
}

func writeText(w io.Writer, fs facts.Facts, color bool) error {
	tw := NewTabWriter(w)
	for _, f := range fs {
		name := f.Name + ":"
		if color {
			name = bold + name + reset
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, f.Value)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, fs facts.Facts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fs)
}

func writeYAML(w io.Writer, fs facts.Facts) error {
	b, err := yaml.Marshal(fs)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// UseColor reports whether output to f should be colored. NO_COLOR in the
// environment always disables it.
func UseColor(f *os.File, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
