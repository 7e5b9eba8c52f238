package main

import (
	"context"
	"log"

	"github.com/avolkovs/menuboard/internal/cli"
	"github.com/avolkovs/menuboard/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
