// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tags) behind a small generic API:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// The default .env file in the working directory is read once per process
// when present. WithEnvFiles reads additional files; missing files are
// skipped. Values already present in the environment always win over values
// from files. WithPrefix scopes every tag under a common prefix, so the same
// struct can be loaded for several instances.
package config
