// Status check CLI entrypoint - delegates to cli.NewQueryCommand.
package main

import (
	"fmt"
	"os"

	"github.com/craftping/mc-status-go/internal/cli"
)

func main() {
	cmd := cli.NewQueryCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
