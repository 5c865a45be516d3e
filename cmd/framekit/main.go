// Command framekit builds widget documents into drawables and exports them.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/framekit/cmd/framekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
