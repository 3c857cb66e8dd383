package main

import (
	"embed"

	"github.com/tellerbank/teller/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
