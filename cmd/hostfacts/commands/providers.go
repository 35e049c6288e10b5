package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeffrom/hostfacts/gatherer"
	"github.com/jeffrom/hostfacts/gatherer/format"
	"github.com/jeffrom/hostfacts/stdio"
)

type providersOpts struct {
	all bool
	run bool
}

func newProvidersCmd(gopts *globalOpts) *cobra.Command {
	opts := providersOpts{}
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "list fact providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, g, _, err := gopts.setup(cmd)
			if err != nil {
				return err
			}
			w := stdio.FromContext(ctx).Stdout()

			if opts.run {
				return format.Outcomes(w, g.Outcomes(ctx))
			}

			if opts.all {
				selected := make(map[string]bool)
				for _, name := range g.ProviderNames() {
					selected[name] = true
				}
				tw := format.NewTabWriter(w)
				format.WriteTabHeader(tw, "provider", "selected")
				for _, name := range gatherer.Available() {
					format.WriteTabRow(tw, name, format.Bool(selected[name]))
				}
				return tw.Flush()
			}

			for _, name := range g.ProviderNames() {
				fmt.Fprintln(w, name)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.all, "all", "a", false, "list every known provider and whether it is selected")
	flags.BoolVar(&opts.run, "run", false, "query the selected providers and summarize how each did")

	return cmd
}
