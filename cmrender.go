// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// This CLI utility renders a CommonMark source file into an output
// tree, then writes the tree as HTML or dumps its structure.
//
// Usage:
//   cmrender [command]
//
// Available Commands:
//   help        Help about any command
//   html        Write a CommonMark source file as HTML
//   tree        Dump the output tree of a CommonMark source file
//
// Flags:
//   -h, --help   help for cmrender
//
// Use "cmrender [command] --help" for more information about a command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"akhil.cc/cmrender/ast"
	"akhil.cc/cmrender/config"
	"akhil.cc/cmrender/gen/html"
	"akhil.cc/cmrender/parser"
	"akhil.cc/cmrender/render"
	"github.com/charmbracelet/log"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func prefix(msg string, err error) error {
	return errors.New(msg + err.Error())
}

// flags holds the options shared by every command.
type flags struct {
	output     string
	configFile string
	sourcePos  bool
	escapeHTML bool
	skipHTML   bool
	unwrap     bool
	softBreak  string
	allow      []string
	disallow   []string
	verbose    bool
}

func (f *flags) register(fs *pflag.FlagSet) {
	// pflag includes the argument type when it unquotes its usage.
	// To prevent this behavior we prefix the usage with backquotes ``.
	fs.StringVarP(&f.output, "output", "o", "", "``name of the output file")
	fs.StringVarP(&f.configFile, "config", "c", "", "``YAML file of render options")
	fs.BoolVar(&f.sourcePos, "sourcepos", false, "add data-sourcepos attributes to block elements")
	fs.BoolVar(&f.escapeHTML, "escape-html", false, "write raw HTML as escaped text")
	fs.BoolVar(&f.skipHTML, "skip-html", false, "drop raw HTML")
	fs.BoolVar(&f.unwrap, "unwrap", false, "keep the children of disallowed nodes")
	fs.StringVar(&f.softBreak, "softbreak", "", "``output for soft line breaks (\"br\" for a <br> element)")
	fs.StringSliceVar(&f.allow, "allow", nil, "``comma separated node types to render")
	fs.StringSliceVar(&f.disallow, "disallow", nil, "``comma separated node types to drop")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log dropped nodes to standard error")
}

// options merges the config file, if any, with flags set on the command line.
func (f *flags) options(fs *pflag.FlagSet, logger *log.Logger) (render.Options, error) {
	var opts render.Options
	if f.configFile != "" {
		var err error
		if opts, err = config.LoadFile(f.configFile); err != nil {
			return opts, err
		}
		logger.Debug("loaded config", "path", f.configFile)
	}
	if fs.Changed("sourcepos") {
		opts.SourcePos = f.sourcePos
	}
	if fs.Changed("escape-html") {
		opts.EscapeHTML = f.escapeHTML
	}
	if fs.Changed("skip-html") {
		opts.SkipHTML = f.skipHTML
	}
	if fs.Changed("unwrap") {
		opts.UnwrapDisallowed = f.unwrap
	}
	if fs.Changed("softbreak") {
		opts.SoftBreak = f.softBreak
	}
	if fs.Changed("allow") && fs.Changed("disallow") {
		return opts, &render.ConfigError{
			Option: "allow",
			Reason: "only one of --allow and --disallow should be given",
		}
	}
	if fs.Changed("allow") {
		ts, err := nodeTypes(f.allow)
		if err != nil {
			return opts, err
		}
		opts.AllowedTypes, opts.DisallowedTypes = ts, nil
	}
	if fs.Changed("disallow") {
		ts, err := nodeTypes(f.disallow)
		if err != nil {
			return opts, err
		}
		opts.AllowedTypes, opts.DisallowedTypes = nil, ts
	}
	opts.Logger = logger
	return opts, nil
}

func nodeTypes(names []string) ([]ast.NodeType, error) {
	ts := make([]ast.NodeType, 0, len(names))
	for _, name := range names {
		t, ok := ast.ParseType(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown node type %q", name)
		}
		ts = append(ts, t)
	}
	return ts, nil
}

func newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "cmrender",
	})
}

// run renders the input named by args, or standard input, and hands the
// output to write.
func (f *flags) run(cmd *cobra.Command, args []string, write func(out io.Writer, nodes []render.Output) error) error {
	logger := newLogger(f.verbose)
	opts, err := f.options(cmd.Flags(), logger)
	if err != nil {
		return err
	}
	engine, err := render.New(opts)
	if err != nil {
		return err
	}

	src := os.Stdin
	if len(args) != 0 {
		src, err = os.Open(args[0])
		if err != nil {
			return err
		}
	}
	defer src.Close()
	doc, err := parser.Parse(src)
	if err != nil {
		return err
	}
	nodes, err := engine.Render(doc)
	if err != nil {
		return err
	}
	logger.Debug("rendered document", "nodes", len(nodes))

	out := os.Stdout
	if len(f.output) != 0 {
		out, err = os.Create(f.output)
		if err != nil {
			return err
		}
	}
	defer out.Close()
	return write(out, nodes)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "cmrender",
		Short: "render CommonMark source files into output trees",
		Long: `This CLI utility renders a CommonMark source file into an output
tree, then writes the tree as HTML or dumps its structure.`,
	}

	var htmlFlags flags
	var timeout time.Duration
	prefixHTML := "(HTML) "
	htmlCmd := &cobra.Command{
		Use:   "html [input] [-o output]",
		Short: "Write a CommonMark source file as HTML",
		Long: `This command renders a CommonMark source file and writes the
resulting output tree as HTML. Text is escaped; raw HTML is kept
unless --escape-html or --skip-html is given.

If no input file is specified, input is read from
standard input. Similarly, if no output argument is
specified, output is written to standard output.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := htmlFlags.run(cmd, args, func(out io.Writer, nodes []render.Output) error {
				ctx := context.Background()
				if timeout > -1 {
					var cancel context.CancelFunc
					ctx, cancel = context.WithTimeout(ctx, timeout)
					defer cancel()
				}
				g := html.GenContext(ctx, nodes)
				g.Stdout = out
				return g.Run()
			})
			if err != nil {
				return prefix(prefixHTML, err)
			}
			return nil
		},
	}
	htmlCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err != nil {
			return prefix(prefixHTML, err)
		}
		return nil
	})
	htmlFlags.register(htmlCmd.Flags())
	htmlCmd.Flags().DurationVarP(&timeout, "timeout", "t", -1, "``timeout used to halt writing long documents")
	// Set string version of default value to be zero-value to prevent it from being printed by FlagUsages.
	htmlCmd.Flags().Lookup("timeout").DefValue = "0"

	var treeFlags flags
	prefixTree := "(tree) "
	treeCmd := &cobra.Command{
		Use:   "tree [input] [-o output]",
		Short: "Dump the output tree of a CommonMark source file",
		Long: `This command renders a CommonMark source file and dumps the
resulting output tree, one Go literal per top-level node.

Input and output default to standard input and standard output.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := treeFlags.run(cmd, args, func(out io.Writer, nodes []render.Output) error {
				dump := litter.Options{
					StripPackageNames: true,
					HidePrivateFields: true,
				}
				_, err := io.WriteString(out, dump.Sdump(nodes)+"\n")
				return err
			})
			if err != nil {
				return prefix(prefixTree, err)
			}
			return nil
		},
	}
	treeCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err != nil {
			return prefix(prefixTree, err)
		}
		return nil
	})
	treeFlags.register(treeCmd.Flags())

	rootCmd.AddCommand(htmlCmd, treeCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
