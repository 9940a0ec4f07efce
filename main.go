package main

import (
	"os"

	"github.com/thenoetrevino/taskflow/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
