// SPDX-License-Identifier: MIT

// Command matrixcalc runs one matrix job (add, subtract, multiply or divide)
// read from a YAML or TOML document and prints the result in the same format.
//
//	matrixcalc -job job.yaml
//	cat job.toml | matrixcalc -job - -format toml
//
// Settings come from MATRIXCALC_* environment variables (see package config);
// flags override them. Failures are reported on stderr with exit status 1.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/matrixcalc/config"
	"github.com/katalvlaran/matrixcalc/engine"
	"github.com/katalvlaran/matrixcalc/jobfile"
	"github.com/katalvlaran/matrixcalc/logging"
	"github.com/katalvlaran/matrixcalc/tracing"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without process globals; it returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("matrixcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	jobPath := fs.String("job", "", "job document path, or - for stdin")
	format := fs.String("format", cfg.Format, "document format when the extension does not tell (yaml or toml)")
	trace := fs.Bool("trace", cfg.Trace, "log operands, inverse and result at debug level")
	if err = fs.Parse(args); err != nil {
		return 2
	}
	if *jobPath == "" {
		fmt.Fprintln(stderr, "error: -job is required")
		fs.Usage()
		return 2
	}

	fallback, err := jobfile.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	// Stage records are debug entries; -trace must lift whichever profile is active.
	logCfg := cfg.Logging()
	if *trace {
		logCfg.Level = "debug"
	}
	logger, err := logging.NewTo(logCfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	opts := cfg.EngineOptions()
	if *trace {
		opts = append(opts, engine.WithTracer(tracing.New(logger)))
	}
	eng := engine.New(opts...)

	job, f, err := loadJob(*jobPath, fallback, stdin)
	if err != nil {
		logger.Error("load job", zap.String("path", *jobPath), zap.Error(err))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	res, err := job.Run(eng)
	if err != nil {
		logger.Info("job failed", zap.String("op", job.Op), zap.Error(err))
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	out, err := jobfile.Encode(res, f)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if _, err = stdout.Write(out); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

// loadJob reads the job from path, or from stdin when path is "-".
func loadJob(path string, fallback jobfile.Format, stdin io.Reader) (*jobfile.Job, jobfile.Format, error) {
	if path != "-" {
		return jobfile.ReadFile(path, fallback)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read stdin: %w", err)
	}
	job, err := jobfile.Decode(data, fallback)
	if err != nil {
		return nil, "", err
	}

	return job, fallback, nil
}
