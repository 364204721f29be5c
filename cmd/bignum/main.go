package main

import (
	"os"

	"github.com/calebcase/bignum/cmd/bignum/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
