// MC Status API server entrypoint - delegates to cli.NewServerCommand.
//
//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g cmd/api/main.go -o internal/api/docs --parseDependency --parseInternal
package main

import (
	"fmt"
	"os"

	_ "github.com/craftping/mc-status-go/internal/api/docs" // swagger docs
	"github.com/craftping/mc-status-go/internal/cli"
)

// @title MC-Status-GO API
// @version 1.0.0
// @description Minecraft server status checks for Java and Bedrock editions
// @description Submit checks synchronously or as polled tasks; responses carry latency, player counts, version, and sanitized MOTD
//
// @contact.name MC-Status-GO
//
// @license.name MIT
//
// @host localhost:5000
// @BasePath /
// @schemes http https
//
// @tag.name Status
// @tag.description Server status check operations
// @tag.name Tasks
// @tag.description Task management and status retrieval
// @tag.name System
// @tag.description System health and metrics
func main() {
	cmd := cli.NewServerCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
