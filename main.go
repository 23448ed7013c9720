package main

import (
	"os"

	"pl0dash/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args))
}
