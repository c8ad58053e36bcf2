package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/spend-tracker/cmd/add"
	"fjacquet/spend-tracker/cmd/batch"
	"fjacquet/spend-tracker/cmd/budget"
	"fjacquet/spend-tracker/cmd/categories"
	"fjacquet/spend-tracker/cmd/list"
	"fjacquet/spend-tracker/cmd/parse"
	"fjacquet/spend-tracker/cmd/root"
	"fjacquet/spend-tracker/cmd/trends"
	"fjacquet/spend-tracker/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the startup logger before the configuration is read
	root.Log = earlyLogger()

	// 3. Initialize root command flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(trends.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// earlyLogger builds the logger used until the configuration is loaded
func earlyLogger() logging.Logger {
	level := strings.ToLower(os.Getenv("SPEND_LOG_LEVEL"))
	if _, err := logrus.ParseLevel(level); err != nil {
		level = "info"
	}
	return logging.NewLogrusAdapter(level, os.Getenv("SPEND_LOG_FORMAT"))
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
