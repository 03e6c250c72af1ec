package main

import (
	"os"

	"github.com/basil-lang/basil/internal/cmd/basills"
)

func main() {
	os.Exit(basills.Run(os.Args[1:]))
}
