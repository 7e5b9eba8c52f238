package main

import (
	"context"
	"log"

	"github.com/avolkovs/menuboard/internal/config"
	"github.com/avolkovs/menuboard/internal/httpapi"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := httpapi.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
