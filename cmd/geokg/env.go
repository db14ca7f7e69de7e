// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables providing flag defaults. A .env file in the working
// directory is read first when present.
const (
	envProfile    = "GEOKG_ENV"
	envLogfile    = "GEOKG_LOG_FILE"
	envLogMaxSize = "GEOKG_LOG_MAX_SIZE"
	envLogMaxAge  = "GEOKG_LOG_MAX_AGE"
)

func loadDotEnv() {
	// A missing .env is the common case.
	_ = godotenv.Load()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
