// Package main provides the entry point for the rdfa CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	internal "github.com/ZanzyTHEbar/rdfind-analyzer/rdfa"
	"github.com/ZanzyTHEbar/rdfind-analyzer/rdfa/cli"

	"github.com/joho/godotenv"
)

func main() {
	logger := internal.GetLogger()

	// .env values never override variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Err(err).Msg("failed to load .env file")
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
