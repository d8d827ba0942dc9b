package main

import (
	"os"

	"observe/internal/cli"
)

func main() { os.Exit(cli.Main()) }
