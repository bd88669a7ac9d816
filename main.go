package main

import (
	"os"

	"github.com/thenoetrevino/leadboard/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
