package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/dmitrijs2005/diary/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// parseEnv loads the dotenv file named by -env (".env" when absent, in which
// case a missing file is fine) and then overlays every variable declared in
// the Config struct tags. Variables already present in the process
// environment win over the file.
func parseEnv(config *Config) {
	envFile := flagx.EnvFile(os.Args[1:])
	explicit := envFile != ""
	if !explicit {
		envFile = defaultEnvFile
	}

	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
