package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/polyglot-microservices-org/todo-service/internal/config"
)

// MustConnectMongo establishes and verifies the document store
// connection, retrying up to cfg.ConnectAttempts times with
// cfg.RetryDelay between attempts. The store is usually still
// warming up when the service starts alongside it.
//
// It panics when every attempt fails.
func MustConnectMongo(logger zerolog.Logger, cfg config.MongoConfig) *mongo.Client {
	attempts := cfg.ConnectAttempts
	if attempts < 1 {
		logger.Warn().
			Int("configured_attempts", cfg.ConnectAttempts).
			Msg("connect attempts below 1, using 1")
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		client, err := connectMongo(cfg)
		if err == nil {
			logger.Info().
				Str("database", cfg.Database).
				Int("attempt", attempt).
				Msg("connected to mongodb")
			return client
		}

		lastErr = err
		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", attempts).
			Msg("document store not ready yet")

		if attempt < attempts {
			time.Sleep(cfg.RetryDelay)
		}
	}

	err := fmt.Errorf("failed to connect to mongodb after %d attempts: %w",
		attempts, lastErr)
	logger.Error().
		Err(err).
		Msg("failed to connect to mongodb")
	panic(err)
}

func connectMongo(cfg config.MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return client, nil
}

func DisconnectMongo(logger zerolog.Logger, client *mongo.Client) {
	err := client.Disconnect(context.Background())
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to disconnect from mongodb")
		return
	}
	logger.Info().Msg("disconnected from mongodb")
}
