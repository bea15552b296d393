package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/deptgov-org/deptgov-cli/internal/cli"
)

func main() {
	// A project .env may hold DEPTGOV_PRIVATE_KEY and friends. Missing
	// files are fine; the environment wins over file values.
	_ = godotenv.Load()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
