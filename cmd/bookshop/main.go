package main

import (
	"os"

	"github.com/khoward/bookshop/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
