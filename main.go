package main

import (
	"context"
	"log"
	"net/http"

	"viralpack/api/router"
	"viralpack/auth"
	"viralpack/config"
	"viralpack/db"
	"viralpack/eventbus"
	"viralpack/internal/logger"
)

func main() {
	config.InitApp()
	logger.Init(config.GetConfig().Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	tokens, err := auth.NewBetaTokenManagerFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	bus, err := eventbus.NewFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	r := router.New(config.GetConfig(), bus, tokens)

	if err := r.Run(":8080"); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
