/*
Command adsl runs the trees of module adsl against problems in the input
format of online judges. Input is read from stdin, answers are written to
stdout, one per line.

	adsl [--trace LEVEL] [--config FILE] [--dump FORMAT] <problem>

Problems are

	segtree   point add, range sum [l, r)          (static segment tree)
	fenwick   point add, range sum [l, r)          (Fenwick tree)
	dual      range add [s, t], point get, 1-based (AOJ DSL_2_E, dual segment tree)
	lazy      range assign [s, t], range min       (AOJ DSL_2_F, lazy segment tree)

With --dump, the final state of the tree is rendered to stderr, in one of the
formats console, dot, html or yaml. Tracing may be configured with a YAML file:

	tracing:
	  adapter: go
	  destination: Stderr
	tracelevel:
	  root: Error
	  adsl: Debug

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/adsl"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "adsl: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	traceLevel string
	configFile string
	dumpFormat string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "adsl",
		Short:         "Run segment trees against judge style problems",
		Long:          `Reads a problem instance from stdin, processes its queries with one of the trees of module adsl and writes the answers to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.dumpFormat != "" {
				if _, ok := renderers[opts.dumpFormat]; !ok {
					return fmt.Errorf("%w: %q", adsl.ErrUnknownFormat, opts.dumpFormat)
				}
			}
			conf, err := loadSettings(opts.configFile)
			if err != nil {
				return err
			}
			if opts.traceLevel != "" {
				conf.Set("tracelevel.adsl", opts.traceLevel)
			}
			return setupTracing(conf)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.traceLevel, "trace", "", "trace level (Debug, Info, Error)")
	flags.StringVar(&opts.configFile, "config", "", "YAML file with tracing configuration")
	flags.StringVar(&opts.dumpFormat, "dump", "", "render the final tree to stderr (console, dot, html, yaml)")
	for _, p := range problems {
		root.AddCommand(newProblemCmd(p, opts))
	}
	return root
}

func newProblemCmd(p problem, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   p.name,
		Short: p.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(p, cmd, opts.dumpFormat)
		},
	}
}
