// Package main is the entry point for the semsync demo CLI.
//
// Usage:
//
//	semsync <command> [flags]
//
// Commands:
//
//	buffer     - Producer/consumer run against one bounded buffer
//	rendezvous - Two goroutines meeting in lockstep
//	bench      - Shared-counter benchmark across locking strategies
package main

import (
	"fmt"
	"os"

	"github.com/krishvs/semsync/cmd/semsync/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
