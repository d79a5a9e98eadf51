package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/treecast/broadcast"
	"github.com/katalvlaran/treecast/builder"
	"github.com/katalvlaran/treecast/edgelist"
	"github.com/katalvlaran/treecast/render"
	"github.com/katalvlaran/treecast/tree"
)

// demoEdges is the 22-vertex demonstration tree.
var demoEdges = [][2]int{
	{1, 4}, {1, 3}, {2, 7}, {2, 12}, {3, 8}, {5, 17}, {6, 19}, {5, 13},
	{6, 20}, {7, 10}, {7, 13}, {8, 12}, {8, 18}, {9, 22}, {11, 16},
	{11, 14}, {14, 21}, {15, 18}, {15, 22}, {18, 20}, {21, 22},
}

var cmdDemo = &cli.Command{
	Name:  "demo",
	Usage: "print the broadcast time of the demonstration tree from roots 16 and 18",
	Action: func(cctx *cli.Context) error {
		t := tree.New(16)
		for _, e := range demoEdges {
			if err := t.AddEdge(e[0], e[1]); err != nil {
				return err
			}
		}

		for _, root := range []int{16, 18} {
			t.SetRoot(root)
			mbt, err := broadcast.MBT(t, broadcast.WithContext(cctx.Context))
			if err != nil {
				return err
			}
			slog.Debug("demo evaluated", "root", root, "time", mbt)
			fmt.Fprintln(cctx.App.Writer, mbt)
		}
		return nil
	},
}

var cmdEval = &cli.Command{
	Name:      "eval",
	Usage:     "evaluate the broadcast time of an edge-list file",
	ArgsUsage: "<file|->",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "root",
			Usage:   "broadcast origin (overrides the file's root directive)",
			EnvVars: []string{"TREECAST_ROOT"},
		},
		&cli.BoolFlag{
			Name:  "validate",
			Usage: "reject input that is not a tree",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "reject self-loops and repeated edges while reading",
		},
		&cli.BoolFlag{
			Name:  "recursive",
			Usage: "use the recursive traversal",
		},
		&cli.BoolFlag{
			Name:  "schedule",
			Usage: "print an optimal call schedule",
		},
		&cli.BoolFlag{
			Name:  "tree",
			Usage: "print the evaluated tree",
		},
	},
	Action: runEval,
}

func runEval(cctx *cli.Context) error {
	if cctx.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one input file (or '-' for stdin)")
	}
	path := cctx.Args().First()

	var topts []tree.Option
	if cctx.Bool("strict") {
		topts = append(topts, tree.WithStrictEdges())
	}
	t, err := edgelist.ReadFile(path, "", topts...)
	if err != nil {
		return err
	}
	if cctx.IsSet("root") {
		t.SetRoot(cctx.String("root"))
	}
	if t.Root() == "" {
		return fmt.Errorf("%s: no root: pass --root or add a 'root:' line", path)
	}
	slog.Debug("loaded tree", "path", path, "root", t.Root(), "vertices", t.VertexCount(), "edges", t.EdgeCount())

	bopts := []broadcast.Option{broadcast.WithContext(cctx.Context)}
	if cctx.Bool("validate") {
		bopts = append(bopts, broadcast.WithValidation())
	}
	if cctx.Bool("recursive") {
		bopts = append(bopts, broadcast.WithRecursive())
	}

	start := time.Now()
	res, err := broadcast.Evaluate(t.Freeze(), bopts...)
	if err != nil {
		return err
	}
	slog.Info("evaluated", "path", path, "root", res.Root, "time", res.Time, "took", time.Since(start))

	w := cctx.App.Writer
	fmt.Fprintln(w, res.Time)
	if cctx.Bool("schedule") {
		for _, c := range res.Schedule() {
			fmt.Fprintf(w, "step %d: %s -> %s\n", c.Step, c.From, c.To)
		}
	}
	if cctx.Bool("tree") {
		fmt.Fprint(w, render.Tree(res))
	}
	return nil
}

var cmdMerge = &cli.Command{
	Name:      "merge",
	Usage:     "apply the merge rule to child values",
	ArgsUsage: "<value>...",
	Action: func(cctx *cli.Context) error {
		values := make([]int, 0, cctx.Args().Len())
		for _, s := range cctx.Args().Slice() {
			v, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", s, err)
			}
			values = append(values, v)
		}
		fmt.Fprintln(cctx.App.Writer, broadcast.MergeChildren(values))
		return nil
	},
}

var errUnknownShape = errors.New("unknown shape")

var cmdGen = &cli.Command{
	Name:      "gen",
	Usage:     "write a generated tree as an edge list",
	ArgsUsage: "<star|path|kary|random>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "n",
			Usage: "number of vertices",
			Value: 10,
		},
		&cli.IntFlag{
			Name:  "k",
			Usage: "branching factor for kary",
			Value: 2,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed for random",
			Value: 1,
		},
		&cli.StringFlag{
			Name:  "ids",
			Usage: "vertex naming: number, letter, excel, or any other string as a prefix",
			Value: "number",
		},
		&cli.StringFlag{
			Name:  "root",
			Usage: "root vertex (defaults to the first generated vertex)",
		},
	},
	Action: func(cctx *cli.Context) error {
		n, k := cctx.Int("n"), cctx.Int("k")

		var ctor builder.Constructor
		switch shape := cctx.Args().First(); shape {
		case "star":
			ctor = builder.Star(n)
		case "path":
			ctor = builder.Path(n)
		case "kary":
			ctor = builder.KAry(n, k)
		case "random":
			ctor = builder.RandomTree(n)
		default:
			return fmt.Errorf("%w: %q", errUnknownShape, shape)
		}

		bopts := []builder.BuilderOption{builder.WithSeed(cctx.Int64("seed"))}
		switch ids := cctx.String("ids"); ids {
		case "number":
			bopts = append(bopts, builder.WithDefaultIDs())
		case "letter":
			if n > 26 {
				return fmt.Errorf("letter ids support at most 26 vertices, got n=%d", n)
			}
			bopts = append(bopts, builder.WithSymbolIDs())
		case "excel":
			bopts = append(bopts, builder.WithExcelColumnIDs())
		default:
			bopts = append(bopts, builder.WithSymbNumb(ids))
		}
		if cctx.IsSet("root") {
			bopts = append(bopts, builder.WithRoot(cctx.String("root")))
		}

		t, err := builder.BuildTree(bopts, ctor)
		if err != nil {
			return err
		}
		slog.Debug("generated tree", "shape", cctx.Args().First(), "vertices", t.VertexCount())

		return edgelist.Write(cctx.App.Writer, t)
	},
}
