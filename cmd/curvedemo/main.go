package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sgostarter/i/l"
)

var (
	seedArg    = flag.String("seed", "", "seed for random curves, overrides the file")
	storeArg   = flag.String("store", "", "directory to save the curves to, overrides the file")
	verboseArg = flag.Bool("v", false, "log curve construction failures")
)

func main() {
	flag.CommandLine.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [options] <demo.yaml>\n", filepath.Base(os.Args[0]))
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.CommandLine.Usage()
		os.Exit(1)
	}

	var logger l.Wrapper = l.NewNopLoggerWrapper()
	if *verboseArg {
		logger = l.NewConsoleLoggerWrapper()
	}

	cfg, err := loadDemo(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *seedArg != "" {
		cfg.Seed = *seedArg
	}

	if *storeArg != "" {
		cfg.Store = *storeArg
	}

	if err = run(cfg, os.Stdout, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
