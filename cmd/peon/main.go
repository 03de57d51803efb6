package main

import (
	"os"

	"github.com/tonyyont/peon-ping/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
