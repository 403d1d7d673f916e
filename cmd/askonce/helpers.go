package main

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// promptFromArgs joins positional arguments into the prompt, falling back to
// the default question when none are given.
func promptFromArgs(args []string) string {
	if len(args) == 0 {
		return defaultPrompt
	}
	return strings.Join(args, " ")
}
