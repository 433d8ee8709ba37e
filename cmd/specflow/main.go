// Command specflow is the entrypoint for the spec-driven task execution
// engine's CLI.
package main

import (
	"os"

	"github.com/specflow-dev/specflow/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
