// Command rodrierr serves a local search page with type-ahead suggestions and
// a persistent search history, and offers the same search box in the
// terminal.
package main

import (
	"os"

	"rodrierr/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
