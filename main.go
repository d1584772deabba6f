package main

import (
	"github.com/driveaudit/driveaudit/internal/cli"
)

func main() {
	cli.Execute()
}
