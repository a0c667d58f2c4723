package main

import (
	"fmt"
	"os"

	"github.com/olivier-w/orbfield/internal/cli"
	"github.com/olivier-w/orbfield/internal/window"
)

func main() {
	if err := cli.NewRootCmd(window.Run).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
