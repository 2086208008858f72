package cliconfig

import (
	"github.com/rs/zerolog"

	"github.com/bft-labs/wireletter/pkg/log"
)

// Logger returns a console logger at the named level; unknown levels fall back to info.
func Logger(level string) *log.ZerologLogger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return log.NewConsoleLogger(lvl)
}
