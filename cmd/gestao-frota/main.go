package main

import (
	"os"

	"github.com/Goulart21/gestao-frota/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
