package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

type Config struct {
	Env   string `env:"ENV" env-default:"local"`
	HTTP  HTTPConfig
	Mongo MongoConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"5001"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// MongoConfig carries the document store connection string and
// database name together with the startup retry policy.
type MongoConfig struct {
	URI             string        `env:"MONGO_URI" env-default:"mongodb://todo-db:27017/"`
	Database        string        `env:"DB_NAME" env-default:"todo_db"`
	ConnectAttempts int           `env:"MONGO_CONNECT_ATTEMPTS" env-default:"10"`
	RetryDelay      time.Duration `env:"MONGO_RETRY_DELAY" env-default:"5s"`
	ConnectTimeout  time.Duration `env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout     time.Duration `env:"MONGO_PING_TIMEOUT" env-default:"10s"`
}
