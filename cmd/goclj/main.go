package main

import (
	"os"

	"github.com/g3ntleman/go-clj/cmd/goclj/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
