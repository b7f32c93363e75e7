package policyredis

import "time"

type Config struct {
	ConnectionURL  string        `env:"POLICY_REDIS_URL" envDefault:"redis://localhost:6379/0"` // ConnectionURL is the Redis URL, e.g. "redis://:password@localhost:6379/0".
	Key            string        `env:"POLICY_REDIS_KEY" envDefault:"rolegate:policy"`          // Key is the Redis key holding the serialized role table.
	RetryAttempts  int           `env:"POLICY_REDIS_RETRY_ATTEMPTS" envDefault:"3"`             // RetryAttempts is the number of connection attempts before giving up.
	RetryInterval  time.Duration `env:"POLICY_REDIS_RETRY_INTERVAL" envDefault:"5s"`            // RetryInterval is the wait between connection attempts.
	ConnectTimeout time.Duration `env:"POLICY_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`          // ConnectTimeout bounds the whole connection phase.
}
