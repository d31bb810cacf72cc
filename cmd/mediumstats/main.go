package main

import (
	"context"

	"mediumstats/cmd/mediumstats/commands"
	"mediumstats/lib/telemetry"
)

func main() {
	ctx := context.Background()

	tel, err := telemetry.SetupFromEnv(ctx, "mediumstats")
	if err == nil {
		defer tel.Shutdown(ctx)
	}

	commands.ExecuteContext(ctx)
}
