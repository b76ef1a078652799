// Package main provides the CLI for exercising the go-scene scheduler.
//
// Usage:
//
//	scene run [options]      Run demo pages for a while and report
//	scene bench [options]    Measure tick throughput on a large tree
//	scene config             Print the default config as TOML
//	scene help               Show help
//
// Examples:
//
//	scene run -pages 4 -bases 3 -duration 10s
//	scene run -config scene.toml -inspect 127.0.0.1:7070
//	scene bench -nodes 5000 -ticks 600
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `scene - invalidation-driven frame scheduler demo

Usage:
  scene <command> [options]

Commands:
  run         Run demo pages concurrently and print a summary
  bench       Measure tick throughput on a large tree
  config      Print the default config as TOML
  version     Print version information
  help        Show this help message

Run options:
  -config     TOML config file, reloaded when it changes
  -pages      Number of independent systems (default 2)
  -bases      Bases mounted on each page (default 2)
  -duration   How long to run (default 3s)
  -inspect    Serve live stats on this address, e.g. 127.0.0.1:7070
  -v          Log scheduler diagnostics to stderr

Bench options:
  -nodes      Leaf sprites in the tree (default 2000)
  -ticks      Ticks to run (default 300)
  -churn      Leaves invalidated per tick (default 50)

Set SCENE_DEBUG=/path/to/file to write the debug log.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		if err := runRun(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "bench":
		if err := runBench(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "config":
		if err := runConfig(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("scene version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
