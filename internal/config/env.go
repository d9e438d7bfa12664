// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultDotEnvPath is loaded when DOTENV_PATH is not set.
const defaultDotEnvPath = ".env"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// lookupDotEnvPath returns DOTENV_PATH when set, the default path otherwise.
func lookupDotEnvPath() string {
	if path, ok := os.LookupEnv("DOTENV_PATH"); ok && path != "" {
		return path
	}
	return defaultDotEnvPath
}

// loadDotEnv exports the variables of the .env file at path into the process
// environment. Variables that are already set are not overwritten.
//
// A missing file at the default location is not an error; a missing file at
// an explicitly configured location is.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) && path == defaultDotEnvPath {
		return nil
	}

	return fmt.Errorf("error loading .env file %q: %w", path, err)
}
