package main

import (
	"context"
	"os"
	"runtime"

	"github.com/urfave/cli"

	"github.com/premake/premake-testbin/config"
	"github.com/premake/premake-testbin/fetcher"
	"github.com/premake/premake-testbin/log"
	"github.com/premake/premake-testbin/platform"
	"github.com/premake/premake-testbin/printer"
	"github.com/premake/premake-testbin/releases"
	"github.com/premake/premake-testbin/testrunner"
)

func main() {
	var verbose bool
	var configPath string
	var noCheckSuite bool

	app := cli.NewApp()
	app.Name = "premake-testbin"
	app.Usage = "Stage released premake executables and run the test suite with each"
	app.Version = "0.0.1"

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose",
			Usage:       "Full debug log",
			Destination: &verbose,
		}, cli.StringFlag{
			Name:        "config, c",
			Usage:       "YAML file overriding the upstream project, denylist and paths",
			Destination: &configPath,
		},
	}
	app.Before = func(c *cli.Context) error {
		log.SetVerbose(verbose)
		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:  "fetch",
			Usage: "Download every release for this OS and stage its executable in the bin directory",
			Action: func(c *cli.Context) error {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				return fetch(context.Background(), cfg)
			},
		},
		{
			Name:  "test",
			Usage: "Run the test suite with every staged executable, stopping at the first failure",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:        "no-check-suite",
					Usage:       "Do not parse the test suite before running it",
					Destination: &noCheckSuite,
				},
			},
			Action: func(c *cli.Context) error {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				return runTests(context.Background(), cfg, !noCheckSuite)
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.L.Fatal(err)
	}
}

func fetch(ctx context.Context, cfg config.Config) error {
	p, err := platform.ForOS(runtime.GOOS)
	if err != nil {
		return err
	}

	f := &fetcher.Fetcher{
		Releases: &releases.Lister{Client: releases.CreateClient(ctx, cfg.Token)},
		Token:    cfg.Token,
		Repo:     cfg.Upstream,
		Denylist: cfg.Denylist,
		Platform: p,
		BinDir:   cfg.BinDir,
		Binary:   cfg.Binary,
	}
	staged, err := f.Run(ctx)
	printer.Staged(os.Stdout, staged)
	return err
}

func runTests(ctx context.Context, cfg config.Config, checkSuite bool) error {
	if checkSuite {
		if err := testrunner.CheckSuite(cfg.SuiteFile); err != nil {
			return err
		}
	}

	executables, err := testrunner.Discover(cfg.BinDir, cfg.Pattern)
	if err != nil {
		return err
	}
	if len(executables) == 0 {
		log.G(ctx).Warnf("No executables matching %s in %s", cfg.Pattern, cfg.BinDir)
		return nil
	}

	r := &testrunner.Runner{Executor: testrunner.ProcessExecutor{}, SuiteFile: cfg.SuiteFile}
	results, err := r.Run(ctx, executables)
	printer.Results(os.Stdout, results)
	return exitStatus(err)
}

// exitStatus turns a failing test executable into exit status -1, which the
// platform reports as 255 on Unix.
func exitStatus(err error) error {
	if failed, ok := err.(*testrunner.FailedError); ok {
		return cli.NewExitError(failed.Error(), -1)
	}
	return err
}
