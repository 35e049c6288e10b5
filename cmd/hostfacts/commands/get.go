package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeffrom/hostfacts/facts"
	"github.com/jeffrom/hostfacts/gatherer/format"
	"github.com/jeffrom/hostfacts/stdio"
)

var ErrFactNotFound = errors.New("fact not found")

func newGetCmd(opts *globalOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get NAME...",
		Short: "print the values of named facts",
		Long: `Print the values of named facts. With the text format and a single name,
each value is printed on its own line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, g, cfg, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			o := stdio.FromContext(ctx)

			var res facts.Facts
			var missing []string
			for _, name := range args {
				vals, ok := g.Get(ctx, name)
				if !ok {
					missing = append(missing, name)
					continue
				}
				for _, v := range vals {
					res = res.Append(name, v)
				}
			}

			if len(args) == 1 && (cfg.Format == "" || cfg.Format == "text") {
				err = writeValues(o.Stdout(), res)
			} else {
				err = format.Write(o.Stdout(), res, opts.formatOpts(cfg, o))
			}
			if err != nil {
				return err
			}

			if len(missing) > 0 {
				return fmt.Errorf("%w: %s", ErrFactNotFound, strings.Join(missing, ", "))
			}
			return nil
		},
	}
	return cmd
}

func writeValues(w io.Writer, fs facts.Facts) error {
	for _, f := range fs {
		if _, err := fmt.Fprintln(w, f.Value); err != nil {
			return err
		}
	}
	return nil
}
