package main

import (
	"os"

	"github.com/user/welllog_analyzer_go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
