package main

import "github.com/polyglot-microservices-org/todo-service/internal/app"

func main() {
	logger := app.NewDefaultLogger()

	cfg := app.MustReadEnv(logger)
	logger = app.MustInitApplicationLogger(logger, cfg)

	client := app.MustConnectMongo(logger, cfg.Mongo)
	defer app.DisconnectMongo(logger, client)

	app.MustListenAndServeHTTP(logger, cfg, client.Database(cfg.Mongo.Database))
}
