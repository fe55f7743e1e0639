package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/tbourn/go-medtrack-backend/internal/sysutil"
)

func main() {
	sysutil.ConfigureLogging("warn", true, os.Stderr)

	err := rootCmd.Execute()
	// PersistentPostRunE is skipped when a command fails.
	_ = closeStore(nil, nil)
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
