// Command msv drives a MultiStateView from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/multistate/cmd/msv/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
