// Command registrarctl manages registrar catalogs: it validates and
// summarizes catalog files, provisions and fills the PostgreSQL catalog
// tables and tails the registry event queue.
package main

import (
	"os"
)

// Build information injected via ldflags at build time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
