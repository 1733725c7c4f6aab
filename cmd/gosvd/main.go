// Command gosvd is a CLI tool for inspecting and canonicalizing CMSIS-SVD
// device descriptions.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/golangsvd/gosvd"
)

// Exit codes.
const (
	exitOK    = 0 // success
	exitError = 1 // user error or parse failure
)

const usage = `gosvd - SVD parser and inspection tool

Usage:
  gosvd <command> [options] <file.svd>

Commands:
  dump    Parse, resolve derivedFrom, and dump the model
  encode  Parse and re-emit the document in canonical form
  lint    Parse only, report the first error
  version Show version

Common options:
  -v            Enable debug logging
  -vv           Enable trace logging (implies -v)
  -h, --help    Show help

Examples:
  gosvd dump STM32F103.svd
  gosvd encode -vv ATSAMD21G18A.svd
  gosvd lint vendor.svd
`

const version = "0.3.0"

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	var verbose int
	var cmd string
	var files []string
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "-h" || arg == "--help":
			flag.Usage()
			return exitOK
		case arg == "-v":
			if verbose < 1 {
				verbose = 1
			}
		case arg == "-vv":
			verbose = 2
		case cmd == "":
			cmd = arg
		default:
			files = append(files, arg)
		}
	}

	if cmd == "version" {
		fmt.Println("gosvd", version)
		return exitOK
	}
	if cmd == "" || len(files) != 1 {
		flag.Usage()
		return exitError
	}

	var opts []gosvd.Option
	if verbose > 0 {
		level := slog.LevelDebug
		if verbose > 1 {
			level = gosvd.LevelTrace
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		opts = append(opts, gosvd.WithLogger(logger))
	}

	data, err := os.ReadFile(files[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "gosvd:", err)
		return exitError
	}

	switch cmd {
	case "dump":
		dev, err := gosvd.Parse(data, opts...)
		if err != nil {
			fmt.Fprintln(os.Stderr, "gosvd:", err)
			return exitError
		}
		spew.Fdump(os.Stdout, dev)
	case "encode":
		dev, err := gosvd.Parse(data, opts...)
		if err != nil {
			fmt.Fprintln(os.Stderr, "gosvd:", err)
			return exitError
		}
		out, err := gosvd.Encode(dev)
		if err != nil {
			fmt.Fprintln(os.Stderr, "gosvd:", err)
			return exitError
		}
		os.Stdout.Write(out)
	case "lint":
		opts = append(opts, gosvd.WithoutDeriveResolution())
		if _, err := gosvd.Parse(data, opts...); err != nil {
			fmt.Fprintln(os.Stderr, "gosvd:", err)
			return exitError
		}
		fmt.Println("ok")
	default:
		fmt.Fprintf(os.Stderr, "gosvd: unknown command %q\n", cmd)
		flag.Usage()
		return exitError
	}
	return exitOK
}
