package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// envFileVar names the variable that points at an alternative env file.
const envFileVar = "CALCULATOR_ENV_FILE"

// loadEnvFile reads calculator settings from an env file before config
// parsing. The default .env is optional; a file named through
// CALCULATOR_ENV_FILE must exist. Variables already set in the process win.
func loadEnvFile() error {
	path, explicit := os.LookupEnv(envFileVar)
	if !explicit || path == "" {
		path, explicit = ".env", false
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}
