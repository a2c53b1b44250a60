package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bradhe/phone-number-parser/pkg/config"
	"github.com/bradhe/phone-number-parser/pkg/form"
	"github.com/bradhe/phone-number-parser/pkg/logs"
	"github.com/bradhe/phone-number-parser/pkg/phone"
	"github.com/bradhe/phone-number-parser/pkg/render"
	"github.com/bradhe/phone-number-parser/pkg/server"
)

var logger = logs.WithPackage("main")

const resetCommand = ":reset"

// parseAll renders every number and reports whether all of them parsed.
func parseAll(formatter phone.Formatter, numbers []string, format render.Format, stdout, stderr io.Writer) bool {
	ok := true

	for i, number := range numbers {
		rec, err := formatter.Decompose(number)

		if err != nil {
			render.Error(stderr, number, err)
			ok = false
			continue
		}

		if i > 0 && format == render.FormatText {
			fmt.Fprintln(stdout)
		}

		if err := render.Write(stdout, rec, format); err != nil {
			logger.WithError(err).Error("failed to write record")
			return false
		}
	}

	return ok
}

// interactive feeds stdin through a form one line at a time.
func interactive(formatter phone.Formatter, format render.Format, stdin io.Reader, stdout, stderr io.Writer) {
	f := form.New(formatter)
	scanner := bufio.NewScanner(stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == resetCommand {
			f.Reset()
			continue
		}

		f.SetInput(line)

		if !f.CanParse() {
			continue
		}

		if err := f.Parse(); err != nil {
			render.Error(stderr, line, err)
			continue
		}

		if err := render.Write(stdout, f.Record(), format); err != nil {
			logger.WithError(err).Error("failed to write record")
			return
		}
	}

	if err := scanner.Err(); err != nil {
		logger.WithError(err).Error("failed to read input")
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)

	if err == flag.ErrHelp {
		return 0
	} else if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if err := logs.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	// Validate has already vetted this.
	format, _ := render.ParseFormat(cfg.Format)
	formatter := phone.NewFormatter(cfg.Region)

	if cfg.ShouldServe() {
		if err := server.NewServer(formatter, cfg.Development, cfg.AssetBasedir).ListenAndServe(cfg.Addr); err != nil {
			logger.WithError(err).Error("server stopped")
			return 1
		}

		return 0
	}

	if cfg.Interactive {
		interactive(formatter, format, stdin, stdout, stderr)
		return 0
	}

	if !parseAll(formatter, cfg.Numbers, format, stdout, stderr) {
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
