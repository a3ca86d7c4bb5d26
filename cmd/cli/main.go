package main

import (
	"context"
	"log"
	"os"

	"github.com/CarlosParra69/Citas-sub001/internal/buildinfo"
	"github.com/CarlosParra69/Citas-sub001/internal/client/cli"
	"github.com/CarlosParra69/Citas-sub001/internal/client/config"
	"github.com/CarlosParra69/Citas-sub001/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
