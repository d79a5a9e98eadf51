package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return newApp(os.Stdout, os.Stderr).Run(args)
}

// newApp wires the command tree. Results go to out, logs to errOut.
func newApp(out, errOut io.Writer) *cli.App {
	app := &cli.App{
		Name:      "treecast",
		Usage:     "minimum broadcast time on trees",
		Version:   versioninfo.Short(),
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity (debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"TREECAST_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log output format (text, json)",
				Value:   "text",
				EnvVars: []string{"TREECAST_LOG_FORMAT"},
			},
		},
		Before: func(cctx *cli.Context) error {
			logger, err := setupSlog(cctx.String("log-level"), cctx.String("log-format"), cctx.App.ErrWriter)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdDemo,
		cmdEval,
		cmdMerge,
		cmdGen,
	}

	return app
}
