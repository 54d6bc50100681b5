package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bookchat/seeker/internal/config"
)

var version = "dev"

// rootCmd starts the interactive BookChat client.
var rootCmd = &cobra.Command{
	Use:   "seeker",
	Short: "BookChat terminal client for seekers",
	Long: `An interactive terminal client for BookChat.

Sign in, chat with your providers, review appointments and ask to
reschedule them straight from the conversation view.

Set BOOKCHAT_API_URL to point at the booking backend (defaults to
http://localhost:8000, where the bundled dev API listens).`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Printf("warning: failed to load .env file: %v", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		app := newApp(cfg, os.Stdin, os.Stdout)
		return app.run(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
