package policypg

import "time"

type Config struct {
	ConnectionString  string        `env:"POLICY_PG_CONN_URL,required"`                  // ConnectionString is the PostgreSQL connection URL.
	MaxOpenConns      int32         `env:"POLICY_PG_MAX_OPEN_CONNS" envDefault:"10"`     // MaxOpenConns is the maximum number of open connections in the pool.
	MaxIdleConns      int32         `env:"POLICY_PG_MAX_IDLE_CONNS" envDefault:"5"`      // MaxIdleConns is the minimum number of idle connections kept in the pool.
	HealthCheckPeriod time.Duration `env:"POLICY_PG_HEALTHCHECK_PERIOD" envDefault:"1m"` // HealthCheckPeriod is the period between pool health checks.
	RetryAttempts     int           `env:"POLICY_PG_RETRY_ATTEMPTS" envDefault:"3"`      // RetryAttempts is the number of connection attempts before giving up.
	RetryInterval     time.Duration `env:"POLICY_PG_RETRY_INTERVAL" envDefault:"5s"`     // RetryInterval is the base wait between connection attempts.
}
