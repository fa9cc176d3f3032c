package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/momentum/internal/flagx"
)

const defaultEnvFile = ".env"

// parseEnv overlays cfg with MOMENTUM_* environment variables. Variables from
// a dotenv file are loaded first without overriding the real environment:
// the file named by -env-file must exist, ./.env is used when present.
// Unset variables leave fields untouched. Panics on malformed values.
func parseEnv(cfg *Config) {
	loadEnvFile(flagx.EnvFileFlags())

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}

func loadEnvFile(path string) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
		return
	}

	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}
