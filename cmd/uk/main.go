package main

import (
	"os"

	"github.com/pengelbrecht/utilkit/cmd/uk/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
