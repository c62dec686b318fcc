package main

import (
	"os"

	"github.com/harwatch/hardiff/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
