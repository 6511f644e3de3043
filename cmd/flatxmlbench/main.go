// Command flatxmlbench compares the raw token-boundary throughput of
// internal/legacyscan against a full flatxml.Parse pass over the same
// input, reporting both alongside basic machine info.
//
// Usage:
//
//	flatxmlbench [-debug] file.xml
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"

	"github.com/fencepost-dev/flatxml"
	"github.com/fencepost-dev/flatxml/internal/legacyscan"
)

func scanAll(data []byte) (int, error) {
	s := legacyscan.NewScanner(data)
	count := 0
	for {
		_, _, err := s.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		count++
	}
}

func main() {
	args := os.Args[1:]

	var debug bool
	var path string
	for _, arg := range args {
		if arg == "-debug" {
			debug = true
			continue
		}
		path = arg
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "flatxmlbench: missing input file")
		os.Exit(1)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flatxmlbench: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("cpu: %s (%d logical cores)\n", cpuid.CPU.BrandName, cpuid.CPU.LogicalCores)
	fmt.Printf("free memory: %d MB\n", memory.FreeMemory()/(1024*1024))
	fmt.Printf("input: %s (%d bytes)\n", path, len(data))

	scanStart := time.Now()
	tokens, err := scanAll(data)
	scanElapsed := time.Since(scanStart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flatxmlbench: legacyscan: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("legacyscan: %d tokens in %s (%.1f MB/s)\n", tokens, scanElapsed, mbPerSec(len(data), scanElapsed))

	var buf flatxml.Buffer
	parseStart := time.Now()
	state, offset := flatxml.ParseInto(data, &buf)
	parseElapsed := time.Since(parseStart)
	if state != flatxml.Ok {
		fmt.Fprintf(os.Stderr, "flatxmlbench: parse failed: %s at offset %d\n", state, offset)
		os.Exit(1)
	}
	fmt.Printf("flatxml.Parse: %d records in %s (%.1f MB/s)\n", len(buf.Nodes), parseElapsed, mbPerSec(len(data), parseElapsed))

	if debug && len(buf.Nodes) > 0 {
		spew.Dump(buf.Nodes[0])
	}
}

func mbPerSec(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / (1024 * 1024) / d.Seconds()
}
