package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/polyglot-microservices-org/todo-service/internal/config"
	"github.com/polyglot-microservices-org/todo-service/internal/delivery/http/v1"
	"github.com/polyglot-microservices-org/todo-service/internal/services"
)

// NewRouter assembles the engine MustListenAndServeHTTP serves:
// the middleware chain plus every route the service exposes.
func NewRouter(logger zerolog.Logger, db *mongo.Database) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	registerRoutes(logger, router, db)

	return router
}

func MustListenAndServeHTTP(logger zerolog.Logger, cfg *config.Config, db *mongo.Database) {
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP
	router := NewRouter(logger, db)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		logger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout.
	quit := make(chan os.Signal, 1)
	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	logger.Info().Msg("shut down http server")
}

func registerRoutes(logger zerolog.Logger, router gin.IRouter, db *mongo.Database) {
	todoService := services.NewTodoService(logger, db)
	v1Handler := v1.New(logger, todoService)

	router.Use(v1Handler.HandleRequestIDMiddleware)

	router.POST("/todos", v1Handler.HandleCreateTodo)
	router.GET("/todos", v1Handler.HandleGetTodos)
	router.GET("/todos/:id", v1Handler.HandleGetTodo)
	router.PUT("/todos/:id", v1Handler.HandleUpdateTodo)
	router.DELETE("/todos/:id", v1Handler.HandleDeleteTodo)

	router.GET("/healthz", v1Handler.HandleHealthz)
}
