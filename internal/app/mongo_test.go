package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/polyglot-microservices-org/todo-service/internal/config"
)

func TestMustConnectMongoAlwaysAttemptsOnce(t *testing.T) {
	// Nothing listens on port 1, so every attempt fails fast.
	cases := []struct {
		name     string
		attempts int
	}{
		{"zero attempts", 0},
		{"negative attempts", -3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.MongoConfig{
				URI:             "mongodb://127.0.0.1:1/",
				Database:        "todo_db",
				ConnectAttempts: tc.attempts,
				RetryDelay:      time.Millisecond,
				ConnectTimeout:  50 * time.Millisecond,
				PingTimeout:     50 * time.Millisecond,
			}

			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("want panic when the store is unreachable")
				}
				err, ok := r.(error)
				if !ok {
					t.Fatalf("recovered value: got %T, want error", r)
				}
				if !strings.Contains(err.Error(), "after 1 attempts") {
					t.Errorf("panic message: got %q, want a single clamped attempt", err)
				}
				if errors.Unwrap(err) == nil {
					t.Error("panic error: want a wrapped connection error")
				}
			}()

			MustConnectMongo(zerolog.Nop(), cfg)
		})
	}
}
