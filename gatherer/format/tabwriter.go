package format

import (
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jeffrom/hostfacts/facts"
)

func NewTabWriter(w io.Writer) *tabwriter.Writer {
	var flags uint // | tabwriter.Debug
	padding := 3
	return tabwriter.NewWriter(w, 4, 4, padding, ' ', flags)
}

func WriteTabHeader(w io.Writer, cols ...string) {
	for i, col := range cols {
		if i > 0 {
			io.WriteString(w, "\t")
		}
		io.WriteString(w, strings.ToUpper(col))
	}
	io.WriteString(w, "\n")
}

func WriteTabRow(w io.Writer, cols ...string) {
	for i, col := range cols {
		if i > 0 {
			io.WriteString(w, "\t")
		}
		io.WriteString(w, col)
	}
	io.WriteString(w, "\t\n")
}

func Bool(v bool) string {
	if v {
		return "[ X ]"
	}
	return "[  ]"
}

// Outcomes writes a table summarizing each provider run.
func Outcomes(w io.Writer, outs []facts.Outcome) error {
	tw := NewTabWriter(w)
	WriteTabHeader(tw, "provider", "ok", "facts", "duration", "error")
	for _, out := range outs {
		errMsg := ""
		if out.Err != nil {
			errMsg = out.Err.Error()
		}
		WriteTabRow(tw,
			out.Provider,
			Bool(out.OK),
			strconv.Itoa(out.Facts),
			out.Duration.Round(time.Millisecond).String(),
			errMsg,
		)
	}
	return tw.Flush()
}
