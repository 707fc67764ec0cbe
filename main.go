package main

import (
	"os"

	"github.com/gvko/minigrep/cmd"
	"github.com/gvko/minigrep/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Close()
	if err != nil {
		os.Exit(1)
	}
}
