// Command flatxmldump parses an XML file with flatxml and prints its
// records either in the diagnostic one-line-per-record format (Dump)
// or re-serialized as indented XML text (Render).
//
// Usage:
//
//	flatxmldump [-render] [-max-depth N] file.xml
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"

	"github.com/fencepost-dev/flatxml"
)

func main() {
	args := os.Args[1:]

	var render bool
	var maxDepth int
	var path string

	for len(args) > 0 {
		arg := args[0]
		args = args[1:]
		switch arg {
		case "-render":
			render = true
		case "-max-depth":
			if len(args) == 0 {
				fmt.Fprintln(os.Stderr, "flatxmldump: -max-depth requires a value")
				os.Exit(1)
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "flatxmldump: invalid -max-depth %q: %v\n", args[0], err)
				os.Exit(1)
			}
			maxDepth = n
			args = args[1:]
		default:
			path = arg
		}
	}

	if path == "" {
		fmt.Fprintln(os.Stderr, "flatxmldump: missing input file")
		os.Exit(1)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flatxmldump: %v\n", err)
		os.Exit(1)
	}

	var opts []flatxml.Option
	if maxDepth > 0 {
		opts = append(opts, flatxml.WithMaxDepth(maxDepth))
	}

	var buf flatxml.Buffer
	state, offset := flatxml.ParseInto(data, &buf, opts...)
	if state != flatxml.Ok {
		color.New(color.FgRed).Fprintf(os.Stderr, "flatxmldump: %s at offset %d\n", state, offset)
		os.Exit(1)
	}

	if render {
		if err := flatxml.Render(os.Stdout, buf.Nodes); err != nil {
			fmt.Fprintf(os.Stderr, "flatxmldump: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := flatxml.Dump(os.Stdout, buf.Nodes); err != nil {
		fmt.Fprintf(os.Stderr, "flatxmldump: %v\n", err)
		os.Exit(1)
	}
}
