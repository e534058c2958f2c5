package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hurricanemark/SchoolApp.mongo.API/api/route"
	"github.com/hurricanemark/SchoolApp.mongo.API/bootstrap"
	"github.com/rs/zerolog/log"
)

func main() {
	app := bootstrap.App()
	defer app.CloseDBConnection()

	env := app.Env
	db := app.Mongo.Database(env.DBName)
	timeout := time.Duration(env.ContextTimeout) * time.Second

	if env.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	route.Setup(env, timeout, db, engine)

	log.Info().Str("address", env.ServerAddress).Msg("starting http server")
	if err := engine.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
