// cmd/faidx/main.go
package main

import (
	"os"

	"faidx/internal/app"
	"faidx/internal/cli"
)

func main() {
	os.Exit(app.Run(cli.Faidx, os.Args[1:], os.Stdout, os.Stderr))
}
