package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm/hxalpine"
	"github.com/pthm/hxalpine/lib/jsvalue"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "data":
		if err := runData(args, os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("hxalpine version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hxalpine - Alpine.js attributes for Go

Usage:
  hxalpine <command> [arguments]

Commands:
  data [file]           Convert a JSON, YAML or msgpack document to x-data
  version               Print version
  help                  Show this help

Options for data:
  --format <name>       Input format: json, yaml or msgpack (default: from
                        the file extension, json for stdin)
  --attr                Print a rendered x-data attribute instead of the
                        bare expression

YAML values tagged !raw are inserted as JavaScript expressions.

Examples:
  hxalpine data state.yaml                Print the object literal
  hxalpine data --attr state.json         Print x-data="..."
  cat state.mp | hxalpine data --format msgpack`)
}

var errUsage = errors.New("usage: hxalpine data [--format json|yaml|msgpack] [--attr] [file]")

func runData(args []string, stdin io.Reader, stdout io.Writer) error {
	var format string
	var attr bool
	var files []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--attr":
			attr = true
		case arg == "--format":
			if i+1 >= len(args) {
				return errUsage
			}
			i++
			format = args[i]
		case strings.HasPrefix(arg, "--format="):
			format = strings.TrimPrefix(arg, "--format=")
		case strings.HasPrefix(arg, "-") && arg != "-":
			return fmt.Errorf("unknown option: %s", arg)
		default:
			files = append(files, arg)
		}
	}
	if len(files) > 1 {
		return errUsage
	}

	var data []byte
	var err error
	if len(files) == 0 || files[0] == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(files[0])
		if format == "" {
			format = filepath.Ext(files[0])
		}
	}
	if err != nil {
		return err
	}
	if format == "" {
		format = string(jsvalue.FormatJSON)
	}

	f, err := jsvalue.ParseFormat(strings.ToLower(format))
	if err != nil {
		return err
	}
	v, err := jsvalue.Decode(f, data)
	if err != nil {
		return err
	}

	if attr {
		if err := hxalpine.RenderAttrs(context.Background(), stdout, hxalpine.X.DataOf(v)); err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout)
		return err
	}
	_, err = fmt.Fprintln(stdout, jsvalue.Encode(v))
	return err
}
