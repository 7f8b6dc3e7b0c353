package main

import (
	"os"

	"github.com/vietts/insicuri/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
