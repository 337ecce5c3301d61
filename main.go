package main

import (
	"fmt"
	"os"

	"github.com/ccpsceo/classgen/internal/branding"
	"github.com/ccpsceo/classgen/internal/cli"
	"github.com/ccpsceo/classgen/internal/config"
)

func main() {
	id, err := branding.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Runtime Error: %v\n", err)
		os.Exit(1)
	}
	conv, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Runtime Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(cli.Execute(id, conv, os.Args))
}
