// SPDX-License-Identifier: MIT

// Command lvlindex loads parent→children mapping files and answers children
// and descendant queries against them.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/KimMachineGun/automemlimit/memlimit"
	"github.com/alecthomas/kong"

	"github.com/katalvlaran/lvlindex/hierarchy"
	"github.com/katalvlaran/lvlindex/loader"
	"github.com/katalvlaran/lvlindex/traverse"
)

// cli contains our command-line flags.
type cli struct {
	Stats       stats       `cmd:"" help:"Print node and edge counts."`
	Children    children    `cmd:"" help:"Print the direct children of a label."`
	Descendants descendants `cmd:"" help:"Walk every descendant of one or more labels."`
}

// output is where query results go; bound into every Run.
type output struct {
	w io.Writer
}

// source is the set of mapping files a command reads.
type source struct {
	Files []string `arg:"" help:"Mapping files (.json, .yaml, .yml). Shards are merged in order."`
	Dedup bool     `env:"LVLINDEX_DEDUP" help:"Drop repeated parent/child relations."`
}

// index loads and builds the hierarchy.
func (s *source) index(ctx context.Context) (*hierarchy.Index[string], error) {
	start := time.Now()
	m, err := loader.LoadFiles(ctx, s.Files...)
	if err != nil {
		return nil, err
	}

	opts := []hierarchy.Option{
		hierarchy.WithCapacity(len(m)),
		hierarchy.WithLogger(slog.Default()),
	}
	if s.Dedup {
		opts = append(opts, hierarchy.WithDedupEdges())
	}
	idx, err := m.Index(opts...)
	if err != nil {
		return nil, fmt.Errorf("building index: %w", err)
	}
	slog.Debug("index ready", "files", len(s.Files), "duration", time.Since(start))
	return idx, nil
}

type stats struct {
	source
	logconfig
}

func (c *stats) Run(out *output) error {
	_ = c.logconfig.Run()
	idx, err := c.index(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintf(out.w, "nodes: %d\nedges: %d\n", idx.CountNodes(), idx.CountEdges())
	return nil
}

type children struct {
	source
	logconfig

	Label string `required:"" short:"l" help:"Label to list children of."`
}

func (c *children) Run(out *output) error {
	_ = c.logconfig.Run()
	idx, err := c.index(context.Background())
	if err != nil {
		return err
	}
	kids, ok := idx.ChildrenOf(c.Label)
	if !ok {
		fmt.Fprintf(out.w, "unknown node %q\n", c.Label)
		return nil
	}
	for _, k := range kids {
		fmt.Fprintln(out.w, k)
	}
	return nil
}

type descendants struct {
	source
	logconfig

	Root     []string `required:"" short:"r" sep:"none" help:"Root label; repeat for a multi-source walk."`
	MaxDepth int      `default:"0" help:"Stop below this depth (0 = unlimited)."`
	Count    bool     `xor:"mode" help:"Only print the number of descendants."`
	Levels   bool     `xor:"mode" help:"Only print the number of levels below the roots."`
}

func (c *descendants) Run(out *output) error {
	_ = c.logconfig.Run()
	if c.MaxDepth < 0 {
		return fmt.Errorf("--max-depth must not be negative, got %d", c.MaxDepth)
	}
	idx, err := c.index(context.Background())
	if err != nil {
		return err
	}
	for _, r := range c.Root {
		if !idx.Contains(r) {
			slog.Warn("ignoring unknown root", "root", r)
		}
	}

	walk := idx.Walk(c.Root, traverse.WithMaxDepth(c.MaxDepth))
	switch {
	case c.Count:
		fmt.Fprintln(out.w, walk.Count())
	case c.Levels:
		fmt.Fprintln(out.w, walk.Levels())
	default:
		for depth, label := range walk.Seq() {
			fmt.Fprintf(out.w, "%d\t%s\n", depth, label)
		}
	}
	return nil
}

// run parses args and executes the selected command, writing results to w.
func run(args []string, w io.Writer) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("lvlindex"),
		kong.Description("Query a parent→children taxonomy."),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return kctx.Run(&output{w: w})
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func init() {
	// Large taxonomies are memory-bound; leave headroom below the cgroup limit.
	_, err := memlimit.SetGoMemLimitWithOpts(
		memlimit.WithRatio(0.9),
		memlimit.WithLogger(slog.Default()),
		memlimit.WithProvider(
			memlimit.ApplyFallback(
				memlimit.FromCgroup,
				memlimit.FromSystem,
			),
		),
	)
	if err != nil {
		slog.Warn("unable to set memory limit", "err", err)
	}
}
