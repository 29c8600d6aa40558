package utils

import (
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const DEV_ENV_FILENAME = ".env.development"
const PROD_ENV_FILENAME = ".env.production"

// InitEnvironmentVariables loads the .env file for the current environment.
// A missing file is not an error: the pricer is a standalone CLI and every
// option has a flag default.
func InitEnvironmentVariables(goEnv string) {
	envFile := DEV_ENV_FILENAME
	if goEnv == "production" {
		envFile = PROD_ENV_FILENAME
	}

	if err := godotenv.Load(envFile); err != nil {
		log.Debugf("no %s file loaded: %v", envFile, err)
	}
}
