package main

import (
	"os"

	"go.xrstf.de/taiga_gantt/pkg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
