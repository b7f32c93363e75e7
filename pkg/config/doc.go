// Package config loads configuration structs from environment variables.
//
// It is a thin layer over github.com/caarlos0/env with a one-time .env
// bootstrap via github.com/joho/godotenv. Every configurable package in this
// module exposes an env-tagged Config struct; this package is how binaries
// populate them.
package config
