package main

import (
	"os"

	"github.com/apatel/gradpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
