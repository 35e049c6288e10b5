// Package commands contains the available hostfacts cli commands.
package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeffrom/hostfacts/config"
	"github.com/jeffrom/hostfacts/gatherer"
	"github.com/jeffrom/hostfacts/gatherer/format"
	"github.com/jeffrom/hostfacts/stdio"
)

// ExecArgs runs the hostfacts command line. Output goes to the StdIO on ctx,
// or the process's standard streams when there is none.
func ExecArgs(ctx context.Context, args []string) error {
	opts := &globalOpts{}
	rootCmd := &cobra.Command{
		Use:           "hostfacts",
		Short:         "report facts about this host",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, g, cfg, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			o := stdio.FromContext(ctx)
			return format.Write(o.Stdout(), g.Facts(ctx), opts.formatOpts(cfg, o))
		},
	}
	opts.addFlags(rootCmd)

	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newProvidersCmd(opts))

	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

type globalOpts struct {
	configPaths []string
	workers     int
	providers   []string
	exclude     []string
	format      string
	template    string
	hostRoot    string
	externalIP  bool
	noColor     bool
	quiet       bool
	verbose     bool
}

func (opts *globalOpts) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringArrayVarP(&opts.configPaths, "config", "c", nil, "read configuration from `path` (default /etc/hostfacts/config.yaml and the user config dir)")
	flags.IntVar(&opts.workers, "workers", 0, "number of providers to query at once (default number of cpus)")
	flags.StringArrayVarP(&opts.providers, "provider", "p", nil, "only run providers matching `glob`")
	flags.StringArrayVarP(&opts.exclude, "exclude", "x", nil, "skip providers matching `glob`")
	flags.StringVarP(&opts.format, "format", "o", "", "output format: text, json, yaml, or template")
	flags.StringVar(&opts.template, "template", "", "text/template body for the template format")
	flags.StringVar(&opts.hostRoot, "host-root", "", "read host files relative to `dir`")
	flags.BoolVar(&opts.externalIP, "external-ip", false, "look up the host's external ip address")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress warnings")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print debug output")
}

// setup loads configuration, applies flags that were set on top of it, and
// returns a context carrying the command's StdIO.
func (opts *globalOpts) setup(cmd *cobra.Command) (context.Context, *gatherer.Gatherer, config.Config, error) {
	ctx := cmd.Context()
	o := *stdio.Get(ctx)
	o.Quiet = o.Quiet || opts.quiet
	o.Verbose = o.Verbose || opts.verbose
	ctx = stdio.SetContext(ctx, &o)

	cfg, err := opts.config(cmd)
	if err != nil {
		return ctx, nil, cfg, err
	}
	o.Debugf("config: %+v", cfg)

	g, err := gatherer.New(cfg)
	if err != nil {
		return ctx, nil, cfg, err
	}
	o.Debugf("providers: %q", g.ProviderNames())
	return ctx, g, cfg, nil
}

func (opts *globalOpts) config(cmd *cobra.Command) (config.Config, error) {
	paths, optional := opts.configPaths, false
	if len(paths) == 0 {
		paths, optional = config.DefaultPaths(), true
	}
	cfg, err := config.Load(paths, optional)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("provider") {
		cfg.Providers = opts.providers
	}
	if flags.Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, opts.exclude...)
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("template") {
		cfg.Template = opts.template
		if !flags.Changed("format") {
			cfg.Format = "template"
		}
	}
	if flags.Changed("host-root") {
		cfg.HostRoot = opts.hostRoot
	}
	if flags.Changed("external-ip") {
		cfg.ExternalIP.Enabled = opts.externalIP
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}
	return cfg, nil
}

func (opts *globalOpts) formatOpts(cfg config.Config, o *stdio.StdIO) format.Opts {
	color := false
	if f, ok := o.Stdout().(*os.File); ok {
		color = format.UseColor(f, cfg.NoColor)
	}
	return format.Opts{
		Format:   cfg.Format,
		Template: cfg.Template,
		Color:    color,
	}
}
