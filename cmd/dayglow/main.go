package main

import (
	"context"
	"fmt"
	"os"

	"github.com/terraincognita07/dayglow/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCmd(os.Stdout).ExecuteContext(context.Background())
}
